package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		extension string
	}{
		{"html content", "<html></html>", "html"},
		{"empty content", "", "html"},
		{"unicode content", "éàü 漢字", "html"},
		{"other extension", "x,y\n1,2", "csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, cleanup, err := WriteTempFile(tt.content, tt.extension)
			if err != nil {
				t.Fatalf("WriteTempFile() error = %v", err)
			}
			defer cleanup()

			if !strings.HasSuffix(path, "."+tt.extension) {
				t.Errorf("path %q missing extension %q", path, tt.extension)
			}

			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading temp file: %v", err)
			}
			if string(content) != tt.content {
				t.Errorf("content = %q, want %q", content, tt.content)
			}
		})
	}
}

func TestWriteTempFile_CleanupRemovesFile(t *testing.T) {
	path, cleanup, err := WriteTempFile("content", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	cleanup()

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("file %q still exists after cleanup", path)
	}

	// Cleanup is idempotent
	cleanup()
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"empty", "", ErrExtensionEmpty},
		{"slash", "a/b", ErrExtensionPathTraversal},
		{"backslash", `a\b`, ErrExtensionPathTraversal},
		{"null byte", "a\x00b", ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cleanup, err := WriteTempFile("content", tt.extension)
			if cleanup != nil {
				cleanup()
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("WriteTempFile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"missing file", filepath.Join(dir, "missing.txt"), false},
		{"directory", dir, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"default", false},
		{"./custom.css", true},
		{"../shared/style.css", true},
		{"/absolute/path.css", true},
		{`C:\windows\path.css`, true},
		{"my-style", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsFilePath(tt.in); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsCSS(t *testing.T) {
	if !IsCSS("body { color: red }") {
		t.Error("IsCSS(declaration block) = false")
	}
	if IsCSS("compact") {
		t.Error("IsCSS(style name) = true")
	}
}
