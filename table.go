package tab2img

import (
	"fmt"
	"html"
	"html/template"
	"strings"
)

// buildTable composes the styled table markup from header labels and dataset
// rows. Cell values are HTML-escaped; numeric cells get the "num" class so
// the stylesheet can right-align them. Styling itself lives entirely in the
// document CSS.
func buildTable(ds *Dataset, labels []string) string {
	var b strings.Builder

	b.WriteString("<table>\n<thead>\n<tr>")
	for _, label := range labels {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(label))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for r := 0; r < ds.NumRows(); r++ {
		b.WriteString("<tr>")
		for c := 0; c < ds.NumCols(); c++ {
			v := ds.Cell(r, c)
			if isNumeric(v) {
				b.WriteString(`<td class="num">`)
			} else {
				b.WriteString("<td>")
			}
			b.WriteString(html.EscapeString(formatCell(v)))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>")
	return b.String()
}

// documentData feeds the document shell template.
type documentData struct {
	Title    string
	Style    template.CSS
	Table    template.HTML
	Footnote string
}

// buildDocument wraps table markup in the document shell: embedded CSS,
// optional caption, and the fixed footnote.
func (r *Renderer) buildDocument(ds *Dataset, opts Options) (string, error) {
	labels, err := resolveLabels(ds, opts.Labels)
	if err != nil {
		return "", err
	}

	css, err := r.resolveStyleFor(opts)
	if err != nil {
		return "", err
	}

	tableHTML := buildTable(ds, labels)

	var b strings.Builder
	// #nosec G203 -- CSS comes from validated assets or caller-owned input,
	// and the table markup is built above with escaped cells.
	data := documentData{
		Title:    opts.Title,
		Style:    template.CSS(css),
		Table:    template.HTML(tableHTML),
		Footnote: footnote,
	}
	if err := r.docTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}

	return b.String(), nil
}
