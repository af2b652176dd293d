package tab2img

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"

	"github.com/alnah/go-tab2img/internal/assets"
	"github.com/alnah/go-tab2img/internal/fileutil"
)

// Renderer orchestrates dataset rendering to HTML, image, XLSX, and LaTeX.
// Create with New(), render with the Render* methods, and Close() when done.
type Renderer struct {
	cfg         rendererConfig
	assetLoader assets.AssetLoader
	docTmpl     *template.Template
	raster      rasterizer
}

// ImageResult is the outcome of RenderImage.
//
// On success, Path is the written image file. When the rasterizer is
// unavailable or fails, Path is a preserved .html fallback artifact next to
// the requested output, Fallback is true, and RasterizeErr carries the
// underlying error. The call itself does not fail in that case.
type ImageResult struct {
	Path         string
	Fallback     bool
	RasterizeErr error
}

// New creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle,
// WithAssetPath). Returns error if asset loading or template parsing fails.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:         rendererConfig{timeout: defaultTimeout},
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(r)
	}

	// Handle WithAssetPath: custom assets with embedded fallback
	if r.cfg.assetPath != "" {
		loader, err := assets.NewDirLoader(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		r.assetLoader = loader
	}

	// Resolve the default style input (name, path, or CSS content)
	if err := r.resolveDefaultStyle(); err != nil {
		return nil, err
	}

	// Parse the document shell template
	tmplContent, err := r.assetLoader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading document template: %w", err)
	}
	r.docTmpl, err = template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}

	// Create rasterizer if not injected (e.g., by tests)
	if r.raster == nil {
		r.raster = newRodRasterizer(r.cfg.timeout)
	}

	return r, nil
}

// RenderHTML builds the styled table document and writes it to the output
// file named by opts.Name (default "table.html"). Returns the written path.
func (r *Renderer) RenderHTML(ctx context.Context, ds *Dataset, opts Options) (string, error) {
	if err := r.validate(ds, opts); err != nil {
		return "", err
	}

	doc, err := r.buildDocument(ds, opts)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := resolveName(opts.Name, DefaultHTMLName)
	// #nosec G306 -- HTML output files are intended to be readable
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	return path, nil
}

// RenderImage builds the document into a temporary markup file, rasterizes
// it with headless Chrome at the requested geometry, and writes the image to
// opts.Name (default "table.png"). The temporary file is removed on every
// exit path.
//
// Rasterizer failure does not fail the call: the markup is preserved as an
// .html artifact next to the requested output and the result carries its
// path together with the rasterizer error, so the caller can screenshot it
// manually. Context cancellation and write failures still return errors.
func (r *Renderer) RenderImage(ctx context.Context, ds *Dataset, opts Options) (*ImageResult, error) {
	if err := r.validate(ds, opts); err != nil {
		return nil, err
	}

	doc, err := r.buildDocument(ds, opts)
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(doc, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	name := resolveName(opts.Name, DefaultImageName)

	img, err := r.raster.CaptureFromFile(ctx, tmpPath, resolveGeometry(opts))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return r.preserveFallback(doc, name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G306 -- image output files are intended to be readable
	if err := os.WriteFile(name, img, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteImage, err)
	}

	return &ImageResult{Path: name}, nil
}

// preserveFallback writes the rendered markup to a stable .html path derived
// from the requested image output, surfacing it as a degraded result.
func (r *Renderer) preserveFallback(doc, imagePath string, rasterErr error) (*ImageResult, error) {
	path := fallbackPath(imagePath)
	// #nosec G306 -- HTML output files are intended to be readable
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return nil, fmt.Errorf("%w: preserving fallback after %v: %v", ErrWriteHTML, rasterErr, err)
	}

	return &ImageResult{Path: path, Fallback: true, RasterizeErr: rasterErr}, nil
}

// Close releases resources (headless Chrome browser).
func (r *Renderer) Close() error {
	if r.raster != nil {
		return r.raster.Close()
	}
	return nil
}

// validate checks that required inputs are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Options
// manually. CLI users have their input validated earlier at config load
// time. Both paths converge here.
func (r *Renderer) validate(ds *Dataset, opts Options) error {
	if ds == nil || ds.NumCols() == 0 {
		return ErrEmptyDataset
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if _, err := resolveLabels(ds, opts.Labels); err != nil {
		return err
	}
	return nil
}

// resolveDefaultStyle resolves the renderer-level style input (name, path,
// or CSS content) to CSS content. Called during New() after options are
// applied and the asset loader is configured.
func (r *Renderer) resolveDefaultStyle() error {
	input := r.cfg.styleInput
	if input == "" {
		css, err := r.assetLoader.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return fmt.Errorf("loading default style: %w", err)
		}
		r.cfg.resolvedStyle = css
		return nil
	}

	css, err := r.loadStyleInput(input)
	if err != nil {
		return err
	}
	r.cfg.resolvedStyle = css
	return nil
}

// resolveStyleFor returns the CSS for one render call: per-call Options.Style
// when set, otherwise the renderer default.
func (r *Renderer) resolveStyleFor(opts Options) (string, error) {
	if opts.Style == "" {
		return r.cfg.resolvedStyle, nil
	}
	return r.loadStyleInput(opts.Style)
}

// loadStyleInput interprets a style input as a file path, raw CSS content,
// or a named asset, in that order.
func (r *Renderer) loadStyleInput(input string) (string, error) {
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(content), nil
	}

	if fileutil.IsCSS(input) {
		return input, nil
	}

	css, err := r.assetLoader.LoadStyle(input)
	if err != nil {
		// An invalid asset name means the style cannot exist either.
		if errors.Is(err, assets.ErrStyleNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, input)
		}
		return "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, nil
}
