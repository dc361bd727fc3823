// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values applied to empty fields.
const (
	DefaultSamples = 15
	DefaultSize    = 512
	DefaultQuality = 85
	DefaultFormat  = "webp"
	DefaultView    = "globe"
)

// Config represents the root configuration file structure.
type Config struct {
	Sphere       Sphere  `yaml:"sphere" json:"sphere"`
	Start        Point   `yaml:"start" json:"start"`
	End          Point   `yaml:"end" json:"end"`
	ShortestPath []Point `yaml:"shortest_path,omitempty" json:"shortest_path,omitempty"`
	Render       Render  `yaml:"render" json:"render"`
	Attribution  string  `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Samples      int     `yaml:"samples,omitempty" json:"samples"`

	// ShortestPathSource is a GeoJSON file path or http(s) URL holding the
	// reference path as a LineString. Mutually exclusive with ShortestPath.
	ShortestPathSource string `yaml:"shortest_path_source,omitempty" json:"shortest_path_source,omitempty"`
}

// Sphere describes the sphere the tutorial is drawn on.
type Sphere struct {
	Radius float64 `yaml:"radius" json:"radius"`
	Width  float64 `yaml:"width,omitempty" json:"width"` // line width, display only
}

// Point is a longitude/latitude pair in degrees.
type Point struct {
	Longitude float64 `yaml:"longitude" json:"longitude"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
}

// Render holds image output settings.
type Render struct {
	Focus   *Point  `yaml:"focus,omitempty" json:"focus,omitempty"`
	Format  string  `yaml:"format,omitempty" json:"format"`
	View    string  `yaml:"view,omitempty" json:"view"`
	Size    int     `yaml:"size,omitempty" json:"size"`
	Quality float32 `yaml:"quality,omitempty" json:"quality"`
}

// Load reads and parses the YAML configuration file from the specified path.
// ${VAR} and ${VAR:-default} are expanded from the environment before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(expandEnvVars(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Samples == 0 {
		c.Samples = DefaultSamples
	}
	if c.Render.Size <= 0 {
		c.Render.Size = DefaultSize
	}
	if c.Render.Quality <= 0 {
		c.Render.Quality = DefaultQuality
	}
	if c.Render.Format == "" {
		c.Render.Format = DefaultFormat
	}
	if c.Render.View == "" {
		c.Render.View = DefaultView
	}
	c.Render.Format = strings.ToLower(c.Render.Format)
	c.Render.View = strings.ToLower(c.Render.View)
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Sphere.Radius <= 0 {
		return fmt.Errorf("sphere.radius must be positive, got %v", c.Sphere.Radius)
	}
	if c.Sphere.Width < 0 {
		return fmt.Errorf("sphere.width must not be negative, got %v", c.Sphere.Width)
	}
	if c.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", c.Samples)
	}
	if err := c.Start.validate("start"); err != nil {
		return err
	}
	if err := c.End.validate("end"); err != nil {
		return err
	}
	for i, p := range c.ShortestPath {
		if err := p.validate(fmt.Sprintf("shortest_path[%d]", i)); err != nil {
			return err
		}
	}
	if len(c.ShortestPath) > 0 && c.ShortestPathSource != "" {
		return fmt.Errorf("shortest_path and shortest_path_source are mutually exclusive")
	}
	if len(c.ShortestPath) == 1 {
		return fmt.Errorf("shortest_path needs at least 2 points, got 1")
	}
	if c.Render.Focus != nil {
		if err := c.Render.Focus.validate("render.focus"); err != nil {
			return err
		}
	}

	switch c.Render.Format {
	case "png", "webp":
	default:
		return fmt.Errorf("render.format must be \"png\" or \"webp\", got %q", c.Render.Format)
	}
	switch c.Render.View {
	case "globe", "plane":
	default:
		return fmt.Errorf("render.view must be \"globe\" or \"plane\", got %q", c.Render.View)
	}
	if c.Render.Size < 64 || c.Render.Size > 4096 {
		return fmt.Errorf("render.size must be between 64 and 4096, got %d", c.Render.Size)
	}
	if c.Render.Quality > 100 {
		return fmt.Errorf("render.quality must be at most 100, got %v", c.Render.Quality)
	}

	return nil
}

func (p Point) validate(field string) error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%s.latitude must be between -90 and 90, got %v", field, p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%s.longitude must be between -180 and 180, got %v", field, p.Longitude)
	}
	return nil
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
