// Package config reads the optional YAML configuration: dataset paths, the
// reference location, and the starting paint mode.
package config

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"
)

// Paint modes.
const (
	ModeChoropleth = "choropleth"
	ModeGhost      = "ghost"
)

type Reference struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

type Config struct {
	Tracts    string    `yaml:"tracts"`
	Resources string    `yaml:"resources"`
	Stops     string    `yaml:"stops"`
	Reference Reference `yaml:"reference"`
	Mode      string    `yaml:"mode"`
}

// Default is the zero-file configuration: no dataset paths (placeholder
// data), downtown Boston reference, choropleth paint.
func Default() Config {
	return Config{
		Reference: Reference{Lat: 42.3601, Lng: -71.0589},
		Mode:      ModeChoropleth,
	}
}

// Load reads a YAML config file, filling omitted fields from Default. An
// empty path or a missing file yields Default outright.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Mode != ModeChoropleth && cfg.Mode != ModeGhost {
		return cfg, fmt.Errorf("config: unknown mode %q", cfg.Mode)
	}
	if cfg.Reference.Lat == 0 && cfg.Reference.Lng == 0 {
		cfg.Reference = Default().Reference
	}
	return cfg, nil
}

// ReferencePoint returns the reference location in lng,lat order.
func (c Config) ReferencePoint() orb.Point {
	return orb.Point{c.Reference.Lng, c.Reference.Lat}
}
