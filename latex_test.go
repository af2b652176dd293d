package tab2img

import (
	"strings"
	"testing"
)

func TestTypeset(t *testing.T) {
	r := newTestRenderer(t, &mockRasterizer{})
	ds := mustDataset(t,
		Column{Name: "variable", Values: []any{"age", "income"}},
		Column{Name: "estimate", Values: []any{0.42, 1.07}},
	)

	tt, err := r.Typeset(ds, Options{})
	if err != nil {
		t.Fatalf("Typeset() error = %v", err)
	}

	if len(tt.Header) != 2 || tt.Header[0] != "variable" {
		t.Errorf("Header = %v, want dataset column names", tt.Header)
	}
	if len(tt.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(tt.Rows))
	}
	if tt.Rows[0][0] != "age" || tt.Rows[0][1] != "0.42" {
		t.Errorf("Rows[0] = %v", tt.Rows[0])
	}
	if tt.Footnote != Footnote() {
		t.Errorf("Footnote = %q", tt.Footnote)
	}
	if !tt.ScaleToFit {
		t.Error("ScaleToFit = false, want true")
	}
}

func TestTypeset_LabelMismatch(t *testing.T) {
	r := newTestRenderer(t, &mockRasterizer{})
	ds := mustDataset(t, Column{Name: "a", Values: []any{1}})

	if _, err := r.Typeset(ds, Options{Labels: []string{"x", "y"}}); err == nil {
		t.Fatal("Typeset() expected label count error")
	}
}

func TestTypesetTable_Source(t *testing.T) {
	tt := &TypesetTable{
		Header:        []string{"variable", "estimate", "p_value"},
		Rows:          [][]string{{"age", "0.42", "0.03"}},
		Footnote:      Footnote(),
		FirstColWidth: "4cm",
		ScaleToFit:    true,
	}

	src := tt.Source()

	if !strings.Contains(src, `\begin{longtable}{p{4cm}ll}`) {
		t.Errorf("column spec wrong:\n%s", src)
	}
	if !strings.Contains(src, `\endfirsthead`) || !strings.Contains(src, `\endhead`) {
		t.Errorf("repeated header blocks missing:\n%s", src)
	}
	// Header appears twice: once for the first page, once for continuations
	if n := strings.Count(src, `\textbf{variable}`); n != 2 {
		t.Errorf("header emitted %d times, want 2", n)
	}
	if !strings.Contains(src, "age & 0.42 & 0.03 \\\\") {
		t.Errorf("body row missing:\n%s", src)
	}
	if !strings.Contains(src, `\multicolumn{3}{l}{\footnotesize `) {
		t.Errorf("footnote row missing:\n%s", src)
	}
	if !strings.Contains(src, `\end{longtable}`) {
		t.Errorf("end missing:\n%s", src)
	}
}

func TestTypesetTable_FontSize(t *testing.T) {
	tests := []struct {
		cols int
		want string
	}{
		{3, `\normalsize`},
		{5, `\normalsize`},
		{6, `\small`},
		{10, `\footnotesize`},
		{15, `\scriptsize`},
	}

	for _, tc := range tests {
		header := make([]string, tc.cols)
		for i := range header {
			header[i] = "c"
		}
		tt := &TypesetTable{Header: header, ScaleToFit: true}
		if got := tt.fontSize(); got != tc.want {
			t.Errorf("fontSize() with %d cols = %q, want %q", tc.cols, got, tc.want)
		}
	}
}

func TestLatexEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ampersand", "a & b", `a \& b`},
		{"percent", "95%", `95\%`},
		{"underscore", "p_value", `p\_value`},
		{"dollar hash", "$5 #1", `\$5 \#1`},
		{"braces", "{x}", `\{x\}`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"tilde caret", "~x^2", `\textasciitilde{}x\textasciicircum{}2`},
		{"plain", "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := latexEscape(tt.in); got != tt.want {
				t.Errorf("latexEscape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTypesetTable_DefaultFirstColWidth(t *testing.T) {
	tt := &TypesetTable{Header: []string{"a", "b"}}
	if got := tt.columnSpec(); got != "p{4cm}l" {
		t.Errorf("columnSpec() = %q, want p{4cm}l", got)
	}
}
