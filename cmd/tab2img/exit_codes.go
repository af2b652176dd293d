package main

import (
	"errors"
	"os"

	tab2img "github.com/alnah/go-tab2img"
	"github.com/alnah/go-tab2img/internal/config"
)

// Exit codes for the tab2img CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4). RenderImage absorbs these into the fallback
	// contract, so they only surface from context-cancelled runs.
	if tab2img.IsRasterizerErr(err) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrWriteTypesetOutput) ||
		errors.Is(err, tab2img.ErrWriteHTML) ||
		errors.Is(err, tab2img.ErrWriteImage) ||
		errors.Is(err, tab2img.ErrWriteXLSX) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrUnsupportedInput) ||
		errors.Is(err, ErrUnsupportedOutput) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrInvalidWorkers) ||
		errors.Is(err, tab2img.ErrEmptyDataset) ||
		errors.Is(err, tab2img.ErrColumnLength) ||
		errors.Is(err, tab2img.ErrLabelCount) ||
		errors.Is(err, tab2img.ErrUnknownLocale) ||
		errors.Is(err, tab2img.ErrInvalidWidth) ||
		errors.Is(err, tab2img.ErrInvalidHeight) ||
		errors.Is(err, tab2img.ErrInvalidZoom) ||
		errors.Is(err, tab2img.ErrStyleNotFound) ||
		errors.Is(err, tab2img.ErrNoTable) {
		return ExitUsage
	}

	return ExitGeneral
}
