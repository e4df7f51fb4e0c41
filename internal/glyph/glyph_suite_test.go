package glyph

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/asciibrot/internal/escape"
)

func TestGlyphSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Glyph Suite")
}

// countingWriter exposes only Write, so io.WriteString cannot bypass the count.
type countingWriter struct {
	buf    bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.buf.Write(p)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

var _ = Describe("Render", func() {
	var g *escape.Grid

	BeforeEach(func() {
		// Every cell lands in a different bucket.
		g = escape.NewGrid(escape.Resolution{Width: 3, Height: 3})
		copy(g.Cells, []uint{
			0, 3, 6,
			11, 31, 101,
			201, 401, 701,
		})
	})

	It("keeps row and column order", func() {
		Expect(DefaultRamp.Lines(g)).To(Equal([]string{
			" .•",
			"*+x",
			"$#%",
		}))
	})

	It("writes each row once with a trailing newline", func() {
		w := &countingWriter{}
		Expect(Render(w, g)).To(Succeed())
		Expect(w.writes).To(Equal(3))
		Expect(w.buf.String()).To(Equal(" .•\n*+x\n$#%\n"))
	})

	It("returns sink errors", func() {
		Expect(Render(failingWriter{}, g)).To(MatchError("sink closed"))
	})

	It("matches String", func() {
		var buf bytes.Buffer
		Expect(Render(&buf, g)).To(Succeed())
		Expect(buf.String()).To(Equal(DefaultRamp.String(g)))
	})
})

var _ = Describe("Classic frame", func() {
	var out string

	BeforeEach(func() {
		vp := escape.Viewport{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
		grid := escape.Compute(vp, escape.Resolution{Width: 10, Height: 5}, 50)
		var buf bytes.Buffer
		Expect(Render(&buf, grid)).To(Succeed())
		out = buf.String()
	})

	It("has exactly height lines of width glyphs", func() {
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		Expect(lines).To(HaveLen(5))
		for _, l := range lines {
			Expect(utf8.RuneCountInString(l)).To(Equal(10))
		}
	})

	It("draws set members with the cap bucket and fast escapers blank", func() {
		lines := strings.Split(out, "\n")
		row := []rune(lines[2])
		Expect(row[5]).To(Equal('+'))
		Expect(row[6]).To(Equal('+'))
		Expect([]rune(lines[0])[9]).To(Equal(' '))
	})

	It("is byte-identical across runs", func() {
		vp := escape.Viewport{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
		grid := escape.Compute(vp, escape.Resolution{Width: 10, Height: 5}, 50)
		Expect(DefaultRamp.String(grid)).To(Equal(out))
	})
})
