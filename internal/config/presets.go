package config

import (
	"fmt"
	"sort"
)

// FullSet frames the whole set.
var FullSet = ViewportConfig{XMin: -2.0, XMax: 1.0, YMin: -1.5, YMax: 1.5}

// Regions are classic landmarks of the Mandelbrot set.
var Regions = map[string]ViewportConfig{
	"full": FullSet,
	// dense filaments and repeating curls
	"seahorse_valley": {XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15},
	// large bulb with trunk-like tendrils
	"elephant_valley":      {XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02},
	"spiral_minibrot":      {XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325},
	"triple_spiral":        {XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980},
	"valley_of_the_dragon": {XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850},
	"minibrot_mini_spiral": {XMin: -1.7390, XMax: -1.7375, YMin: -0.0235, YMax: -0.0220},
}

// regionIters gives deep zooms enough iterations to show structure.
var regionIters = map[string]uint{
	"full":                 DefaultMaxIters,
	"seahorse_valley":      1000,
	"elephant_valley":      1000,
	"spiral_minibrot":      2000,
	"triple_spiral":        2000,
	"valley_of_the_dragon": 1500,
	"minibrot_mini_spiral": 2500,
}

// GetPreset returns a default-sized config framing the named region.
func GetPreset(name string) (*Config, error) {
	vp, ok := Regions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	cfg.Viewport = vp
	cfg.MaxIters = regionIters[name]
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Regions))
	for name := range Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
