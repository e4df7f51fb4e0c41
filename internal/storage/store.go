package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/asciibrot/internal/config"
	"github.com/san-kum/asciibrot/internal/escape"
)

const (
	metadataFile = "metadata.json"
	gridFile     = "grid.csv"
	frameFile    = "frame.txt"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Config    config.Config      `json:"config"`
	Elapsed   time.Duration      `json:"elapsed_ns"`
	Stats     map[string]float64 `json:"stats,omitempty"`
}

// writeFile is replaced in tests to simulate a failing disk.
var writeFile = os.WriteFile

// Save archives one rendered frame and returns its run id. metadata.json
// is written last, and a failed save leaves no run directory behind.
func (s *Store) Save(cfg *config.Config, grid *escape.Grid, frame string, elapsed time.Duration, stats map[string]float64) (runID string, err error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	now := time.Now()
	runID, runDir, err := s.newRunDir(now)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
			runID = ""
		}
	}()

	if err := writeGrid(filepath.Join(runDir, gridFile), grid); err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(runDir, frameFile), []byte(frame), 0644); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: now,
		Config:    *cfg,
		Elapsed:   elapsed,
		Stats:     stats,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(runDir, metadataFile), data, 0644); err != nil {
		return "", err
	}

	return runID, nil
}

// newRunDir creates a fresh run directory, bumping the id on collision.
func (s *Store) newRunDir(now time.Time) (string, string, error) {
	ns := now.UnixNano()
	for {
		runID := fmt.Sprintf("frame_%d", ns)
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
		ns++
	}
}

func writeGrid(path string, grid *escape.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	record := make([]string, grid.Width)
	for row := 0; row < grid.Height; row++ {
		for col, v := range grid.Row(row) {
			record[col] = strconv.FormatUint(uint64(v), 10)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// List returns saved runs oldest first. A missing data directory holds no runs.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadGrid(runID string) (*escape.Grid, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, gridFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("run %s: empty grid", runID)
	}

	grid := escape.NewGrid(escape.Resolution{Width: len(records[0]), Height: len(records)})
	for row, record := range records {
		for col, field := range record {
			v, err := strconv.ParseUint(field, 10, 0)
			if err != nil {
				return nil, fmt.Errorf("run %s: row %d col %d: %w", runID, row, col, err)
			}
			grid.Set(row, col, uint(v))
		}
	}

	return grid, nil
}

func (s *Store) LoadFrame(runID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, frameFile))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
