package tab2img

import "errors"

// Sentinel errors for library operations.
var (
	// Dataset and option validation errors. These propagate to the caller
	// immediately from every render operation.
	ErrEmptyDataset  = errors.New("dataset has no columns")
	ErrColumnLength  = errors.New("columns have unequal lengths")
	ErrEmptyColumn   = errors.New("column name cannot be empty")
	ErrLabelCount    = errors.New("label count does not match column count")
	ErrUnknownLocale = errors.New("unknown locale")
	ErrInvalidWidth  = errors.New("invalid width")
	ErrInvalidHeight = errors.New("invalid height")
	ErrInvalidZoom   = errors.New("invalid zoom")

	// Markup assembly errors.
	ErrDocumentRender = errors.New("document template rendering failed")
	ErrWriteHTML      = errors.New("failed to write HTML file")
	ErrWriteImage     = errors.New("failed to write image file")
	ErrWriteXLSX      = errors.New("failed to write workbook")

	// Rasterizer errors. These are absorbed at the RenderImage boundary:
	// the markup is preserved as a fallback artifact instead of failing.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrScreenshot     = errors.New("screenshot capture failed")

	// Markdown table parsing errors.
	ErrNoTable = errors.New("no table found in markdown")

	// Asset loading errors. ErrStyleNotFound wraps failed lookups of named
	// styles from WithStyle or Options.Style.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// IsRasterizerErr reports whether err belongs to the rasterizer error family,
// the only family absorbed by the RenderImage fallback contract.
func IsRasterizerErr(err error) bool {
	return errors.Is(err, ErrBrowserConnect) ||
		errors.Is(err, ErrPageCreate) ||
		errors.Is(err, ErrPageLoad) ||
		errors.Is(err, ErrScreenshot)
}
