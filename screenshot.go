package tab2img

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// rasterizer abstracts HTML-to-image capture to allow different backends.
type rasterizer interface {
	// CaptureFromFile opens a local HTML file and captures it as PNG bytes
	// at the given viewport geometry.
	CaptureFromFile(ctx context.Context, filePath string, g geometry) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ rasterizer = (*rodRasterizer)(nil)

// rodRasterizer implements rasterizer using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRasterizer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRasterizer creates a rodRasterizer with the given timeout.
func newRodRasterizer(timeout time.Duration) *rodRasterizer {
	return &rodRasterizer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRasterizer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	if noSandbox() {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// noSandbox reports whether Chrome should launch without its sandbox:
// explicitly via ROD_NO_SANDBOX=1, or implicitly in CI and containerized
// environments where a pre-installed browser is pointed at via
// ROD_BROWSER_BIN.
func noSandbox() bool {
	return os.Getenv("ROD_NO_SANDBOX") == "1" ||
		os.Getenv("CI") == "true" ||
		os.Getenv("ROD_BROWSER_BIN") != ""
}

// Close releases browser resources.
func (r *rodRasterizer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// CaptureFromFile opens a local HTML file in headless Chrome, applies the
// viewport geometry, waits for load plus a fixed settle delay, and captures
// a PNG screenshot. Returns explicit errors instead of panicking when
// browser operations fail.
func (r *rodRasterizer) CaptureFromFile(ctx context.Context, filePath string, g geometry) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             g.Width,
		Height:            g.Height,
		DeviceScaleFactor: g.Zoom,
		Mobile:            false,
	}); err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Fixed settle delay before capture, interruptible by context
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(settleDelay):
	}

	img, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}

	return img, nil
}
