package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tab2img "github.com/alnah/go-tab2img"
)

// Sentinel errors for dataset input.
var (
	ErrNoInput          = errors.New("no input file specified")
	ErrReadInput        = errors.New("failed to read input file")
	ErrUnsupportedInput = errors.New("unsupported input format")
	ErrEmptyInput       = errors.New("input file has no data rows")
)

// readDataset loads a dataset from a CSV or markdown file, selected by
// extension. CSV files must carry a header row; markdown files must contain
// a GFM table.
func readDataset(path string) (*tab2img.Dataset, error) {
	if path == "" {
		return nil, ErrNoInput
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".md", ".markdown":
		return readMarkdown(path)
	default:
		return nil, fmt.Errorf("%w: %q (expected .csv or .md)", ErrUnsupportedInput, path)
	}
}

// readCSV parses a CSV file: first record is the header, the rest are rows.
func readCSV(path string) (*tab2img.Dataset, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", ErrReadInput, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyInput, path)
	}

	return tab2img.FromRecords(records[0], records[1:])
}

// readMarkdown parses the first GFM table in a markdown file.
func readMarkdown(path string) (*tab2img.Dataset, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	return tab2img.ReadMarkdownTable(data)
}
