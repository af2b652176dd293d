package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	loader := NewEmbeddedLoader()

	tests := []struct {
		name    string
		style   string
		wantErr error
		wantSub string
	}{
		{name: "default style", style: "default", wantSub: "thead th"},
		{name: "compact style", style: "compact", wantSub: "font-size: 12px"},
		{name: "missing style", style: "nope", wantErr: ErrStyleNotFound},
		{name: "empty name", style: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", style: "../secret", wantErr: ErrInvalidAssetName},
		{name: "dot in name", style: "default.css", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css, err := loader.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle() error = %v", err)
			}
			if !strings.Contains(css, tt.wantSub) {
				t.Errorf("style %q missing %q", tt.style, tt.wantSub)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	loader := NewEmbeddedLoader()

	tmpl, err := loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "{{.Table}}", "{{.Footnote}}", "{{.Style}}"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("document template missing %q", want)
		}
	}

	if _, err := loader.LoadTemplate("nope"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(missing) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestDirLoader(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o750); err != nil {
		t.Fatal(err)
	}
	custom := "body { background: papayawhip }"
	if err := os.WriteFile(filepath.Join(base, "styles", "custom.css"), []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	loader, err := NewDirLoader(base)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	// Custom asset from disk
	css, err := loader.LoadStyle("custom")
	if err != nil {
		t.Fatalf("LoadStyle(custom) error = %v", err)
	}
	if css != custom {
		t.Errorf("LoadStyle(custom) = %q", css)
	}

	// Fallback to embedded
	css, err = loader.LoadStyle("default")
	if err != nil {
		t.Fatalf("LoadStyle(default) error = %v", err)
	}
	if !strings.Contains(css, "thead th") {
		t.Error("embedded fallback not used")
	}

	// Template fallback
	tmpl, err := loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if !strings.Contains(tmpl, "{{.Table}}") {
		t.Error("embedded template fallback not used")
	}
}

func TestNewDirLoader_Invalid(t *testing.T) {
	if _, err := NewDirLoader(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewDirLoader(missing) error = %v, want ErrInvalidBasePath", err)
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewDirLoader(file); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewDirLoader(file) error = %v, want ErrInvalidBasePath", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "default", false},
		{"hyphenated", "my-style", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot", "a.css", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
