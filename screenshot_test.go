package tab2img

import (
	"context"
	"testing"
	"time"
)

func TestRodRasterizer_ContextAlreadyCancelled(t *testing.T) {
	r := newRodRasterizer(time.Second)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Cancelled context must short-circuit before any browser launch.
	_, err := r.CaptureFromFile(ctx, "/tmp/nonexistent.html", geometry{Width: 100, Height: 100, Zoom: 1})
	if err != context.Canceled {
		t.Errorf("CaptureFromFile() error = %v, want context.Canceled", err)
	}
	if r.browser != nil {
		t.Error("browser launched despite cancelled context")
	}
}

func TestNoSandbox(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"clean environment", nil, false},
		{"explicit opt-in", map[string]string{"ROD_NO_SANDBOX": "1"}, true},
		{"opt-in wrong value", map[string]string{"ROD_NO_SANDBOX": "yes"}, false},
		{"ci environment", map[string]string{"CI": "true"}, true},
		{"custom browser binary", map[string]string{"ROD_BROWSER_BIN": "/usr/bin/chromium"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"ROD_NO_SANDBOX", "CI", "ROD_BROWSER_BIN"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			if got := noSandbox(); got != tt.want {
				t.Errorf("noSandbox() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRodRasterizer_CloseWithoutBrowser(t *testing.T) {
	r := newRodRasterizer(time.Second)
	if err := r.Close(); err != nil {
		t.Errorf("Close() without browser = %v", err)
	}
	// Idempotent
	if err := r.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
