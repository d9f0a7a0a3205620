// Package config loads chart settings from YAML and folds in command-line
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-starchart/internal/apperr"
	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/catalog"
	"github.com/litescript/ls-starchart/internal/chart"
	"github.com/litescript/ls-starchart/internal/logging"
)

// Margin is the plot margin in pixels. In YAML it is either a single number
// applied to every side or a mapping with top, bottom, left and right.
type Margin struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// UnmarshalYAML accepts a scalar or a mapping.
func (m *Margin) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var px int
		if err := value.Decode(&px); err != nil {
			return fmt.Errorf("margin: %w", err)
		}
		*m = Margin{Top: px, Bottom: px, Left: px, Right: px}
		return nil
	}
	type plain Margin
	p := plain(*m)
	if err := value.Decode(&p); err != nil {
		return fmt.Errorf("margin: %w", err)
	}
	*m = Margin(p)
	return nil
}

// Catalogs are optional data file paths. Empty paths select built-in data.
type Catalogs struct {
	Stars          string `yaml:"stars"`          // HYG CSV, optionally gzipped
	Objects        string `yaml:"objects"`        // OpenNGC CSV
	Constellations string `yaml:"constellations"` // line figures
}

// Config is everything the command line can set, as read from a chart file.
type Config struct {
	RA               string   `yaml:"ra"`  // H:M:S or decimal degrees
	Dec              string   `yaml:"dec"` // D:M:S or decimal degrees
	Projection       string   `yaml:"projection"`
	FOVDeg           float64  `yaml:"fov"`
	PositionAngleDeg float64  `yaml:"position_angle"`
	Width            int      `yaml:"width"`
	Height           int      `yaml:"height"`
	Margin           Margin   `yaml:"margin"`
	StepRADeg        int      `yaml:"step_ra_deg"`
	StepDecDeg       int      `yaml:"step_dec_deg"`
	LimitStarMag     float64  `yaml:"limit_star_mag"`
	LimitObjectMag   float64  `yaml:"limit_object_mag"`
	ObjectScale      float64  `yaml:"object_scale"`
	Catalogs         Catalogs `yaml:"catalogs"`
	CSS              string   `yaml:"css"`
	LogLevel         string   `yaml:"log_level"`
	Parallel         bool     `yaml:"parallel"` // render layers concurrently
}

// Default returns the command-line defaults. The center is left unset.
func Default() *Config {
	return &Config{
		Projection:     astro.Gnomonic.String(),
		FOVDeg:         40,
		Width:          600,
		Height:         800,
		Margin:         Margin{Top: 40, Bottom: 40, Left: 40, Right: 40},
		StepRADeg:      15,
		StepDecDeg:     10,
		LimitStarMag:   6.5,
		LimitObjectMag: 10,
		ObjectScale:    1.25,
		LogLevel:       "info",
	}
}

// Load reads a YAML chart file over the defaults and validates the result.
// An empty path returns the defaults. Relative catalog and CSS paths are
// taken relative to the file's directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.New("config.load", apperr.KindNotFound, path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperr.New("config.load", apperr.KindInvalidConfig, path,
			fmt.Errorf("%w: %v", apperr.ErrInvalidConfig, err))
	}
	cfg.resolvePaths(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		var oe *apperr.OpError
		if errors.As(err, &oe) {
			oe.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Catalogs.Stars, &c.Catalogs.Objects, &c.Catalogs.Constellations, &c.CSS} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

func invalid(format string, args ...any) error {
	return apperr.New("config.validate", apperr.KindInvalidConfig, "",
		fmt.Errorf("%w: "+format, append([]any{apperr.ErrInvalidConfig}, args...)...))
}

// Validate checks ranges. It does not require a center; ToChart does.
func (c *Config) Validate() error {
	proj, err := astro.ParseProjection(c.Projection)
	if err != nil {
		return invalid("%v", err)
	}
	switch {
	case c.FOVDeg <= 0 || c.FOVDeg > chart.MaxFOVDeg:
		return invalid("fov must be in (0, %g] for %v, got %g", chart.MaxFOVDeg, proj, c.FOVDeg)
	case c.Width <= 0 || c.Height <= 0:
		return invalid("size must be positive, got %dx%d", c.Width, c.Height)
	case c.Margin.Top < 0 || c.Margin.Bottom < 0 || c.Margin.Left < 0 || c.Margin.Right < 0:
		return invalid("margins must not be negative")
	case c.Margin.Left+c.Margin.Right >= c.Width || c.Margin.Top+c.Margin.Bottom >= c.Height:
		return invalid("margins leave no room to plot in %dx%d", c.Width, c.Height)
	case c.StepRADeg < 1 || c.StepDecDeg < 1:
		return invalid("grid steps must be at least 1, got ra=%d dec=%d", c.StepRADeg, c.StepDecDeg)
	case c.ObjectScale <= 0:
		return invalid("object_scale must be positive, got %g", c.ObjectScale)
	}
	return nil
}

// Center parses the configured RA and Dec.
func (c *Config) Center() (astro.EquatorialPoint, error) {
	if strings.TrimSpace(c.RA) == "" || strings.TrimSpace(c.Dec) == "" {
		return astro.EquatorialPoint{}, invalid("center ra and dec are required")
	}
	ra, err := astro.ParseRA(c.RA)
	if err != nil {
		return astro.EquatorialPoint{}, invalid("%v", err)
	}
	dec, err := astro.ParseDec(c.Dec)
	if err != nil {
		return astro.EquatorialPoint{}, invalid("%v", err)
	}
	if dec < -90 || dec > 90 {
		return astro.EquatorialPoint{}, invalid("dec must be within ±90°, got %g", dec)
	}
	return astro.EquatorialPoint{RADeg: ra, DecDeg: dec}, nil
}

// ToChart validates c and converts it into the chart core's configuration.
func (c *Config) ToChart() (chart.Config, error) {
	if err := c.Validate(); err != nil {
		return chart.Config{}, err
	}
	center, err := c.Center()
	if err != nil {
		return chart.Config{}, err
	}
	proj, _ := astro.ParseProjection(c.Projection)

	return chart.Config{
		Center:           center,
		PositionAngleDeg: c.PositionAngleDeg,
		Projection:       proj,
		FOVDeg:           c.FOVDeg,
		Width:            c.Width,
		Height:           c.Height,
		Margin: chart.Margin{
			Top:    c.Margin.Top,
			Bottom: c.Margin.Bottom,
			Left:   c.Margin.Left,
			Right:  c.Margin.Right,
		},
		StepRADeg:      c.StepRADeg,
		StepDecDeg:     c.StepDecDeg,
		LimitStarMag:   c.LimitStarMag,
		LimitObjectMag: c.LimitObjectMag,
		ObjectScale:    c.ObjectScale,
	}, nil
}

// CatalogPaths returns the catalog file paths for catalog.Load.
func (c *Config) CatalogPaths() catalog.Paths {
	return catalog.Paths{
		Stars:          c.Catalogs.Stars,
		Objects:        c.Catalogs.Objects,
		Constellations: c.Catalogs.Constellations,
	}
}

// Level returns the configured log level.
func (c *Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}
