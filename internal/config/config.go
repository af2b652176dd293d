// Package config loads and validates the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-tab2img/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidValue   = errors.New("invalid config value")
)

// Field length limits. Config files can come from untrusted checkouts, so
// free-form fields are bounded.
const (
	MaxStyleLength  = 256  // style name, path, or short inline CSS reference
	MaxTitleLength  = 200  // table caption
	MaxLocaleLength = 10   // "en", "fr"
	MaxDirLength    = 1024 // output directory path
)

// Geometry bounds mirrored from the library so a bad config fails at load
// time rather than at render time.
const (
	MinDimension = 100
	MaxDimension = 10000
	MinZoom      = 0.5
	MaxZoom      = 4.0
)

// Config holds all configuration for table rendering.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current)
}

// RenderConfig defines presentation defaults applied when flags are absent.
type RenderConfig struct {
	Width  int     `yaml:"width"`  // Viewport width in pixels (0 = library default)
	Height int     `yaml:"height"` // Viewport height in pixels (0 = library default)
	Zoom   float64 `yaml:"zoom"`   // Device scale factor (0 = library default)
	Style  string  `yaml:"style"`  // Style name or CSS file path
	Locale string  `yaml:"locale"` // Preset locale ("en", "fr"; empty = no preset)
	Title  string  `yaml:"title"`  // Caption rendered above the table
}

// Load reads and validates a config file.
// Returns ErrConfigNotFound if the path does not exist.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrConfigNotFound)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field lengths and geometry bounds.
func (c *Config) Validate() error {
	if err := checkLen("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := checkLen("render.style", c.Render.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := checkLen("render.title", c.Render.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := checkLen("render.locale", c.Render.Locale, MaxLocaleLength); err != nil {
		return err
	}

	if c.Render.Width != 0 && (c.Render.Width < MinDimension || c.Render.Width > MaxDimension) {
		return fmt.Errorf("%w: render.width %d", ErrInvalidValue, c.Render.Width)
	}
	if c.Render.Height != 0 && (c.Render.Height < MinDimension || c.Render.Height > MaxDimension) {
		return fmt.Errorf("%w: render.height %d", ErrInvalidValue, c.Render.Height)
	}
	if c.Render.Zoom != 0 && (c.Render.Zoom < MinZoom || c.Render.Zoom > MaxZoom) {
		return fmt.Errorf("%w: render.zoom %.2f", ErrInvalidValue, c.Render.Zoom)
	}

	return nil
}

func checkLen(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, field, len(value), max)
	}
	return nil
}
