package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	config  string
	width   int
	height  int
	zoom    float64
	labels  []string
	locale  string
	style   string
	title   string
	format  string
	workers int
	quiet   bool
	verbose bool
	version bool
}

const usageText = `usage: tab2img <input.csv|input.md> <output.html|png|xlsx|tex> [flags]
       tab2img <input>... <output-dir> [flags]

Renders a tabular dataset as a styled HTML table, a PNG screenshot of it,
a styled spreadsheet, or a LaTeX longtable. Input column names come from
the CSV header row or the markdown table header.

With several inputs, or a directory input, the last argument is an output
directory: every .csv and .md file renders there in the --format of choice,
in parallel across --workers renderers.

Flags:
`

// parseFlags parses command-line arguments.
// Returns the flags, the positional arguments, and any parse error.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("tab2img", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	fs.StringVarP(&flags.config, "config", "c", "", "YAML config file with render defaults")
	fs.IntVar(&flags.width, "width", 0, "viewport width in pixels (default 1200)")
	fs.IntVar(&flags.height, "height", 0, "viewport height in pixels (default 900)")
	fs.Float64Var(&flags.zoom, "zoom", 0, "device scale factor (default 2.0)")
	fs.StringSliceVar(&flags.labels, "labels", nil, "column display labels, comma-separated")
	fs.StringVarP(&flags.locale, "locale", "l", "", "bilingual header preset locale (en, fr)")
	fs.StringVarP(&flags.style, "style", "s", "", "style name, CSS file path, or raw CSS")
	fs.StringVarP(&flags.title, "title", "t", "", "caption rendered above the table")
	fs.StringVarP(&flags.format, "format", "f", "png", "batch output format (html, png, xlsx, tex)")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel renderers for batch runs (0 = auto)")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
