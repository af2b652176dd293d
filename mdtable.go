package tab2img

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// mdParser parses GFM tables only; no renderer is ever attached.
var mdParser = goldmark.New(goldmark.WithExtensions(extension.Table))

// ReadMarkdownTable parses the first GFM table found in source into a
// Dataset. The header row provides column names; body cells become string
// values. Rows shorter than the header are padded with empty cells.
// Returns ErrNoTable when the source contains no table.
func ReadMarkdownTable(source []byte) (*Dataset, error) {
	doc := mdParser.Parser().Parse(text.NewReader(source))

	var table *east.Table
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*east.Table); ok {
			table = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if table == nil {
		return nil, ErrNoTable
	}

	var header []string
	var records [][]string

	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *east.TableHeader:
			header = rowCells(row, source)
		case *east.TableRow:
			records = append(records, rowCells(row, source))
		}
	}

	if len(header) == 0 {
		return nil, fmt.Errorf("%w: table has no header row", ErrNoTable)
	}

	// Pad or trim body rows to the header width; GFM parsers are lenient
	// about ragged rows and the dataset is not.
	for i, rec := range records {
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		records[i] = rec[:len(header)]
	}

	return FromRecords(header, records)
}

// rowCells extracts the trimmed text of each cell in a table row.
func rowCells(row ast.Node, source []byte) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		cells = append(cells, nodeText(cell, source))
	}
	return cells
}

// nodeText collects the raw text content beneath a node.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
