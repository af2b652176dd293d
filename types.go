package tab2img

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Fixed geometry defaults, applied when Options leaves a field zero.
const (
	DefaultWidth  = 1200
	DefaultHeight = 900
	DefaultZoom   = 2.0
)

// Geometry bounds.
const (
	MinDimension = 100
	MaxDimension = 10000
	MinZoom      = 0.5
	MaxZoom      = 4.0
)

// Default output names used when Options.Name is empty.
const (
	DefaultHTMLName  = "table.html"
	DefaultImageName = "table.png"
	DefaultXLSXName  = "table.xlsx"
)

// footnote is appended verbatim to every output mode.
const footnote = "Note: * p < 0.05, ** p < 0.01, *** p < 0.001."

// Footnote returns the fixed statistical-significance footnote present in
// every rendered artifact.
func Footnote() string {
	return footnote
}

// Options holds per-call presentation options.
// The zero value renders with defaults: dataset column names as labels,
// default geometry, and the default output name for the operation.
type Options struct {
	Name   string   // Output file path (default depends on the operation)
	Width  int      // Viewport width in pixels (default 1200)
	Height int      // Viewport height in pixels (default 900)
	Zoom   float64  // Device scale factor (default 2.0)
	Labels []string // Column display labels (default: dataset column names)
	Title  string   // Optional caption rendered above the table
	Style  string   // Style name, CSS file path, or raw CSS (default "default")
}

// Validate checks that geometry fields are in range. Zero values are valid
// and mean "use the default".
func (o Options) Validate() error {
	if o.Width != 0 && (o.Width < MinDimension || o.Width > MaxDimension) {
		return fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidWidth, o.Width, MinDimension, MaxDimension)
	}
	if o.Height != 0 && (o.Height < MinDimension || o.Height > MaxDimension) {
		return fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidHeight, o.Height, MinDimension, MaxDimension)
	}
	if o.Zoom != 0 && (o.Zoom < MinZoom || o.Zoom > MaxZoom) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)",
			ErrInvalidZoom, o.Zoom, MinZoom, MaxZoom)
	}
	return nil
}

// geometry is the resolved viewport configuration passed to the rasterizer.
type geometry struct {
	Width  int
	Height int
	Zoom   float64
}

// resolveGeometry substitutes fixed defaults for zero fields.
func resolveGeometry(o Options) geometry {
	g := geometry{Width: o.Width, Height: o.Height, Zoom: o.Zoom}
	if g.Width == 0 {
		g.Width = DefaultWidth
	}
	if g.Height == 0 {
		g.Height = DefaultHeight
	}
	if g.Zoom == 0 {
		g.Zoom = DefaultZoom
	}
	return g
}

// resolveName returns the output path, falling back to def when empty.
func resolveName(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

// fallbackPath derives the .html fallback artifact path from the requested
// image output path. "report.png" becomes "report.html".
func fallbackPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + ".html"
}

// resolveLabels returns the header labels for a dataset: the supplied label
// list when present (validated against the column count), otherwise the
// dataset column names in original order.
func resolveLabels(ds *Dataset, labels []string) ([]string, error) {
	if len(labels) == 0 {
		return ds.ColumnNames(), nil
	}
	if len(labels) != ds.NumCols() {
		return nil, fmt.Errorf("%w: %d labels for %d columns",
			ErrLabelCount, len(labels), ds.NumCols())
	}
	return labels, nil
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout       time.Duration
	styleInput    string
	resolvedStyle string
	assetPath     string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// settleDelay is the fixed wait between page load and capture, giving the
// layout time to settle before the screenshot.
const settleDelay = 500 * time.Millisecond

// WithTimeout sets the rasterization timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("tab2img: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithStyle sets the default document style. Accepts a built-in style name
// ("default", "compact"), a CSS file path, or raw CSS content. Per-call
// Options.Style overrides it.
func WithStyle(style string) Option {
	return func(r *Renderer) {
		r.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory of custom assets (styles/*.css,
// templates/*.html) that take precedence over the embedded defaults.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}
