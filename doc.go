// Package tab2img renders tabular datasets as styled HTML tables, raster
// images, spreadsheets, and LaTeX longtables.
//
// # Quick Start
//
// Create a renderer, render a dataset, and close when done:
//
//	r, err := tab2img.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	ds, err := tab2img.NewDataset(
//	    tab2img.Column{Name: "id", Values: []any{1, 2}},
//	    tab2img.Column{Name: "value", Values: []any{3.14, 2.71}},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := r.RenderImage(ctx, ds, tab2img.Options{Name: "table.png"})
//
// # Output Modes
//
// The renderer produces four artifact kinds from the same dataset:
//
//  1. RenderHTML - a self-contained HTML document with embedded CSS
//     (dark header row, zebra striping, bordered cells) and a fixed
//     significance footnote.
//  2. RenderImage - the HTML document rasterized to PNG by headless Chrome
//     (go-rod) at the requested width, height, and zoom.
//  3. RenderXLSX - a styled spreadsheet mirroring the HTML look (excelize).
//  4. Typeset - an in-memory LaTeX longtable object with a fixed-width
//     first column and the header repeated across page breaks.
//
// # Degraded Rasterization
//
// RenderImage never fails because of the browser. When Chrome is missing or
// errors, the rendered markup is preserved as an .html fallback artifact
// next to the requested output, and the result carries that path together
// with the rasterizer error. Callers that need a hard failure can inspect
// ImageResult.Fallback.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := tab2img.New(
//	    tab2img.WithTimeout(2 * time.Minute),
//	    tab2img.WithStyle("compact"),
//	)
//
// Per-call options are passed via Options: output name, pixel geometry,
// zoom, column display labels (defaulting to dataset column names), and
// locale for the bilingual header preset (RenderPreset).
//
// # Browser Requirements
//
// Image rendering requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium instance on first run (~/.cache/rod/browser/). For
// containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package tab2img
