package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	tab2img "github.com/alnah/go-tab2img"
	"github.com/alnah/go-tab2img/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoOutput           = errors.New("no output file specified")
	ErrUnsupportedOutput  = errors.New("unsupported output format")
	ErrWriteTypesetOutput = errors.New("failed to write LaTeX output")
)

// run executes one render from parsed arguments.
func run(ctx context.Context, args []string, logger *log.Logger) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Println("tab2img " + Version)
		return nil
	}

	switch {
	case len(positional) == 0:
		return ErrNoInput
	case len(positional) == 1:
		return ErrNoOutput
	}

	// Several inputs, or a directory input, make this a batch run with the
	// last argument as the output directory.
	if len(positional) > 2 || isDir(positional[0]) {
		return runBatch(ctx, flags, positional, logger)
	}
	input, output := positional[0], positional[1]

	opts, rendererOpts, err := mergeOptions(flags, output)
	if err != nil {
		return err
	}

	ds, err := readDataset(input)
	if err != nil {
		return err
	}
	logger.Debug("dataset loaded", "file", input, "columns", ds.NumCols(), "rows", ds.NumRows())

	r, err := tab2img.New(rendererOpts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.Close(); err != nil {
			logger.Warn("closing renderer", "err", err)
		}
	}()

	return render(ctx, r, ds, flags, opts, output, logger)
}

// render dispatches on the output extension.
func render(ctx context.Context, r *tab2img.Renderer, ds *tab2img.Dataset, flags *cliFlags, opts tab2img.Options, output string, logger *log.Logger) error {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".html":
		path, err := r.RenderHTML(ctx, ds, opts)
		if err != nil {
			return err
		}
		logger.Info("wrote HTML", "path", path)
		return nil

	case ".png":
		var res *tab2img.ImageResult
		var err error
		if flags.locale != "" {
			res, err = r.RenderPreset(ctx, ds, output, flags.locale, opts)
		} else {
			res, err = r.RenderImage(ctx, ds, opts)
		}
		if err != nil {
			return err
		}
		if res.Fallback {
			logger.Error("rasterizer unavailable, markup preserved for manual screenshot",
				"err", res.RasterizeErr, "path", res.Path)
			logger.Info("open the preserved HTML in a browser and screenshot it, or install Chrome/Chromium (set ROD_BROWSER_BIN to an existing binary)")
			return nil
		}
		logger.Info("wrote image", "path", res.Path)
		return nil

	case ".xlsx":
		path, err := r.RenderXLSX(ds, opts)
		if err != nil {
			return err
		}
		logger.Info("wrote workbook", "path", path)
		return nil

	case ".tex":
		tt, err := r.Typeset(ds, opts)
		if err != nil {
			return err
		}
		// #nosec G306 -- LaTeX output files are intended to be readable
		if err := os.WriteFile(output, []byte(tt.Source()), 0o644); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteTypesetOutput, err)
		}
		logger.Info("wrote LaTeX", "path", output)
		return nil

	default:
		return fmt.Errorf("%w: %q (expected .html, .png, .xlsx, or .tex)", ErrUnsupportedOutput, output)
	}
}

// isDir reports whether path names an existing directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// mergeOptions builds render options from flags and the optional config
// file. Flags win over config values; library defaults fill the rest.
func mergeOptions(flags *cliFlags, output string) (tab2img.Options, []tab2img.Option, error) {
	opts := tab2img.Options{
		Name:   output,
		Width:  flags.width,
		Height: flags.height,
		Zoom:   flags.zoom,
		Labels: flags.labels,
		Title:  flags.title,
		Style:  flags.style,
	}

	var rendererOpts []tab2img.Option

	if flags.config != "" {
		cfg, err := config.Load(flags.config)
		if err != nil {
			return tab2img.Options{}, nil, err
		}

		if opts.Width == 0 {
			opts.Width = cfg.Render.Width
		}
		if opts.Height == 0 {
			opts.Height = cfg.Render.Height
		}
		if opts.Zoom == 0 {
			opts.Zoom = cfg.Render.Zoom
		}
		if opts.Title == "" {
			opts.Title = cfg.Render.Title
		}
		if opts.Style == "" && cfg.Render.Style != "" {
			rendererOpts = append(rendererOpts, tab2img.WithStyle(cfg.Render.Style))
		}
		if flags.locale == "" {
			flags.locale = cfg.Render.Locale
		}
		if cfg.Output.DefaultDir != "" && opts.Name != "" && !filepath.IsAbs(opts.Name) && filepath.Dir(opts.Name) == "." {
			opts.Name = filepath.Join(cfg.Output.DefaultDir, opts.Name)
		}
	}

	return opts, rendererOpts, nil
}
