package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/asciibrot/internal/escape"
)

const (
	DefaultMaxIters = 1000
	DefaultWidth    = 80
	DefaultHeight   = 24
	DefaultWorkers  = 1
)

type Config struct {
	MaxIters uint           `yaml:"max_iters" json:"max_iters"`
	Viewport ViewportConfig `yaml:"viewport" json:"viewport"`
	Width    int            `yaml:"width" json:"width"`
	Height   int            `yaml:"height" json:"height"`
	Workers  int            `yaml:"workers" json:"workers"`
}

type ViewportConfig struct {
	XMin float64 `yaml:"x_min" json:"x_min"`
	XMax float64 `yaml:"x_max" json:"x_max"`
	YMin float64 `yaml:"y_min" json:"y_min"`
	YMax float64 `yaml:"y_max" json:"y_max"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxIters: DefaultMaxIters,
		Viewport: FullSet,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Workers:  DefaultWorkers,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base; keys absent from the file
// keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first broken precondition of the escape engine.
func (c *Config) Validate() error {
	if c.MaxIters == 0 {
		return fmt.Errorf("%w: max_iters must be positive", ErrInvalidIterations)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, c.Width, c.Height)
	}
	v := c.Viewport
	for _, b := range []float64{v.XMin, v.XMax, v.YMin, v.YMax} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: bounds must be finite", ErrInvalidViewport)
		}
	}
	if v.XMin >= v.XMax {
		return fmt.Errorf("%w: x_min %g is not below x_max %g", ErrInvalidViewport, v.XMin, v.XMax)
	}
	if v.YMin >= v.YMax {
		return fmt.Errorf("%w: y_min %g is not below y_max %g", ErrInvalidViewport, v.YMin, v.YMax)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

func (c *Config) GetViewport() escape.Viewport {
	return escape.Viewport{
		XMin: c.Viewport.XMin,
		XMax: c.Viewport.XMax,
		YMin: c.Viewport.YMin,
		YMax: c.Viewport.YMax,
	}
}

func (c *Config) GetResolution() escape.Resolution {
	return escape.Resolution{Width: c.Width, Height: c.Height}
}
