package tab2img

import (
	"strconv"
	"strings"
)

// Default first-column width in the typeset output. The first column is
// usually the row identifier (variable name) and keeping it fixed stops
// long labels from reflowing the whole table.
const DefaultFirstColWidth = "4cm"

// Font size commands by column count, coarsest scale-to-fit available to a
// longtable (longtable cannot be wrapped in \resizebox).
const (
	scaleNormalCols = 5  // up to 5 columns: \normalsize
	scaleSmallCols  = 8  // up to 8: \small
	scaleFootCols   = 12 // up to 12: \footnotesize, beyond: \scriptsize
)

// TypesetTable is an in-memory LaTeX longtable: fixed-width first column,
// header repeated across page breaks, and the fixed footnote. It is returned
// by Renderer.Typeset for the caller to embed in a larger document; nothing
// is written to disk.
type TypesetTable struct {
	Header        []string
	Rows          [][]string
	Footnote      string
	FirstColWidth string // LaTeX length, e.g. "4cm"
	ScaleToFit    bool   // pick a font size from the column count
}

// Typeset builds the typeset-table object for the dataset. Labels default
// to dataset column names; label-count mismatches fail like every other
// render operation.
func (r *Renderer) Typeset(ds *Dataset, opts Options) (*TypesetTable, error) {
	if err := r.validate(ds, opts); err != nil {
		return nil, err
	}

	labels, err := resolveLabels(ds, opts.Labels)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, ds.NumRows())
	for i := range rows {
		row := make([]string, ds.NumCols())
		for c := 0; c < ds.NumCols(); c++ {
			row[c] = formatCell(ds.Cell(i, c))
		}
		rows[i] = row
	}

	return &TypesetTable{
		Header:        labels,
		Rows:          rows,
		Footnote:      footnote,
		FirstColWidth: DefaultFirstColWidth,
		ScaleToFit:    true,
	}, nil
}

// Source emits the LaTeX longtable. The header block appears twice, once as
// \endfirsthead and once as \endhead so it repeats after page breaks.
func (t *TypesetTable) Source() string {
	var b strings.Builder

	if t.ScaleToFit {
		b.WriteString(t.fontSize())
		b.WriteString("\n")
	}

	b.WriteString(`\begin{longtable}{`)
	b.WriteString(t.columnSpec())
	b.WriteString("}\n")

	header := t.headerRow()
	b.WriteString("\\hline\n")
	b.WriteString(header)
	b.WriteString("\\hline\n\\endfirsthead\n")
	b.WriteString("\\hline\n")
	b.WriteString(header)
	b.WriteString("\\hline\n\\endhead\n")

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = latexEscape(cell)
		}
		b.WriteString(strings.Join(cells, " & "))
		b.WriteString(" \\\\\n")
	}

	b.WriteString("\\hline\n")
	if t.Footnote != "" {
		b.WriteString(`\multicolumn{`)
		b.WriteString(strconv.Itoa(len(t.Header)))
		b.WriteString(`}{l}{\footnotesize `)
		b.WriteString(latexEscape(t.Footnote))
		b.WriteString("} \\\\\n")
	}
	b.WriteString("\\end{longtable}\n")

	if t.ScaleToFit {
		b.WriteString("\\normalsize\n")
	}

	return b.String()
}

// columnSpec builds the longtable column specification: a fixed-width
// paragraph first column followed by left-aligned columns.
func (t *TypesetTable) columnSpec() string {
	if len(t.Header) == 0 {
		return ""
	}
	width := t.FirstColWidth
	if width == "" {
		width = DefaultFirstColWidth
	}
	return "p{" + width + "}" + strings.Repeat("l", len(t.Header)-1)
}

// headerRow emits the bold header line.
func (t *TypesetTable) headerRow() string {
	cells := make([]string, len(t.Header))
	for i, h := range t.Header {
		cells[i] = `\textbf{` + latexEscape(h) + `}`
	}
	return strings.Join(cells, " & ") + " \\\\\n"
}

// fontSize selects a font size command from the column count.
func (t *TypesetTable) fontSize() string {
	switch n := len(t.Header); {
	case n <= scaleNormalCols:
		return `\normalsize`
	case n <= scaleSmallCols:
		return `\small`
	case n <= scaleFootCols:
		return `\footnotesize`
	default:
		return `\scriptsize`
	}
}

// latexEscaper escapes LaTeX special characters in cell content.
// Backslash must be handled via a placeholder since its replacement
// contains characters that would otherwise be re-escaped.
var latexEscaper = strings.NewReplacer(
	"\\", "\x00",
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// latexEscape makes a string safe for use in LaTeX table cells.
func latexEscape(s string) string {
	s = latexEscaper.Replace(s)
	return strings.ReplaceAll(s, "\x00", `\textbackslash{}`)
}
