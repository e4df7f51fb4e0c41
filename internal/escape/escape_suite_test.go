package escape

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEscapeSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Escape Suite")
}

var _ = Describe("Count", func() {
	It("never lets the origin escape", func() {
		for _, n := range []uint{1, 2, 10, 1000} {
			Expect(Count(0, 0, n)).To(Equal(n))
		}
	})

	It("checks the radius before updating z", func() {
		// z is still 0 at iteration 0, so even |c| > 2 needs one update.
		Expect(Count(2, 2, 10)).To(Equal(uint(1)))
		Expect(Count(3, 0, 10)).To(Equal(uint(1)))
	})

	It("treats |z| == 2 as bounded", func() {
		Expect(Count(-2, 0, 200)).To(Equal(uint(200)))
	})

	It("is deterministic", func() {
		a := Count(-0.7435, 0.1314, 2000)
		b := Count(-0.7435, 0.1314, 2000)
		Expect(a).To(Equal(b))
	})
})

var _ = Describe("Compute", func() {
	var (
		vp  Viewport
		res Resolution
	)

	BeforeEach(func() {
		vp = Viewport{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
		res = Resolution{Width: 24, Height: 12}
	})

	It("fills every cell within the cap", func() {
		g := Compute(vp, res, 75)
		Expect(g.Cells).To(HaveLen(24 * 12))
		for _, v := range g.Cells {
			Expect(v).To(BeNumerically("<=", 75))
		}
	})

	It("returns identical grids for identical input", func() {
		Expect(Compute(vp, res, 75).Cells).To(Equal(Compute(vp, res, 75).Cells))
	})

	It("matches the parallel computation", func() {
		Expect(ComputeParallel(vp, res, 75, 4).Cells).To(Equal(Compute(vp, res, 75).Cells))
	})
})
