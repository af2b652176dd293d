package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	tab2img "github.com/alnah/go-tab2img"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	return run(context.Background(), append([]string{"tab2img"}, args...), testLogger())
}

func TestRun_HTML(t *testing.T) {
	input := writeFile(t, "data.csv", "id,value\n1,0.03\n2,0.12\n")
	output := filepath.Join(t.TempDir(), "table.html")

	if err := runCLI(t, input, output, "--title", "Results"); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	doc, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	for _, want := range []string{"<table>", "Results", tab2img.Footnote()} {
		if !strings.Contains(string(doc), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRun_LaTeX(t *testing.T) {
	input := writeFile(t, "data.csv", "variable,estimate\nage,0.42\n")
	output := filepath.Join(t.TempDir(), "table.tex")

	if err := runCLI(t, input, output); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	doc, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	for _, want := range []string{`\begin{longtable}`, `\endfirsthead`, "age & 0.42"} {
		if !strings.Contains(string(doc), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRun_XLSX(t *testing.T) {
	input := writeFile(t, "data.csv", "id,value\n1,a\n")
	output := filepath.Join(t.TempDir(), "table.xlsx")

	if err := runCLI(t, input, output); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRun_Version(t *testing.T) {
	if err := runCLI(t, "--version"); err != nil {
		t.Errorf("run(--version) error = %v", err)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	input := writeFile(t, "data.csv", "id\n1\n")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no arguments", nil, ErrNoInput},
		{"missing output", []string{input}, ErrNoOutput},
		{"unsupported output", []string{input, "out.pdf"}, ErrUnsupportedOutput},
		{"missing input", []string{filepath.Join(t.TempDir(), "nope.csv"), "out.html"}, ErrReadInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMergeOptions_FlagsWinOverConfig(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "render:\n  width: 1400\n  zoom: 1.5\n  title: From config\n")

	flags := &cliFlags{config: cfgPath, width: 800, title: ""}
	opts, _, err := mergeOptions(flags, "out.png")
	if err != nil {
		t.Fatalf("mergeOptions() error = %v", err)
	}

	if opts.Width != 800 {
		t.Errorf("Width = %d, want flag value 800", opts.Width)
	}
	if opts.Zoom != 1.5 {
		t.Errorf("Zoom = %v, want config value 1.5", opts.Zoom)
	}
	if opts.Title != "From config" {
		t.Errorf("Title = %q, want config value", opts.Title)
	}
}

func TestMergeOptions_DefaultDir(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "output:\n  defaultDir: /tmp/renders\n")

	flags := &cliFlags{config: cfgPath}

	opts, _, err := mergeOptions(flags, "out.png")
	if err != nil {
		t.Fatalf("mergeOptions() error = %v", err)
	}
	if opts.Name != filepath.Join("/tmp/renders", "out.png") {
		t.Errorf("Name = %q, default dir not applied", opts.Name)
	}

	// Paths with an explicit directory are left alone.
	opts, _, err = mergeOptions(flags, "sub/out.png")
	if err != nil {
		t.Fatalf("mergeOptions() error = %v", err)
	}
	if opts.Name != "sub/out.png" {
		t.Errorf("Name = %q, explicit path rewritten", opts.Name)
	}
}
