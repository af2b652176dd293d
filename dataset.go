package tab2img

import (
	"fmt"
	"strconv"
)

// Column is a named, ordered sequence of scalar cell values.
// Values may be strings, integers, or floats; nil renders as an empty cell.
type Column struct {
	Name   string
	Values []any
}

// Dataset is an ordered collection of named columns sharing a row count.
// It is immutable input: the renderer never modifies it.
type Dataset struct {
	cols []Column
}

// NewDataset creates a Dataset from columns, validating that every column
// has a name and that all columns share the same length.
func NewDataset(cols ...Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, ErrEmptyDataset
	}

	rows := len(cols[0].Values)
	for _, c := range cols {
		if c.Name == "" {
			return nil, ErrEmptyColumn
		}
		if len(c.Values) != rows {
			return nil, fmt.Errorf("%w: column %q has %d values, expected %d",
				ErrColumnLength, c.Name, len(c.Values), rows)
		}
	}

	// Defensive copy of the column slice; cell slices are shared since the
	// renderer only reads them.
	copied := make([]Column, len(cols))
	copy(copied, cols)

	return &Dataset{cols: copied}, nil
}

// FromRecords creates a Dataset from a header row and string records, as
// produced by encoding/csv. Every record must have len(header) fields.
func FromRecords(header []string, records [][]string) (*Dataset, error) {
	if len(header) == 0 {
		return nil, ErrEmptyDataset
	}

	cols := make([]Column, len(header))
	for i, name := range header {
		cols[i] = Column{Name: name, Values: make([]any, len(records))}
	}

	for r, rec := range records {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: record %d has %d fields, expected %d",
				ErrColumnLength, r, len(rec), len(header))
		}
		for c, v := range rec {
			cols[c].Values[r] = v
		}
	}

	return NewDataset(cols...)
}

// NumCols returns the number of columns.
func (d *Dataset) NumCols() int {
	return len(d.cols)
}

// NumRows returns the shared row count.
func (d *Dataset) NumRows() int {
	if len(d.cols) == 0 {
		return 0
	}
	return len(d.cols[0].Values)
}

// ColumnNames returns the column names in dataset order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// Cell returns the value at row r, column c.
func (d *Dataset) Cell(r, c int) any {
	return d.cols[c].Values[r]
}

// Row returns the values of row r in column order.
func (d *Dataset) Row(r int) []any {
	row := make([]any, len(d.cols))
	for c := range d.cols {
		row[c] = d.cols[c].Values[r]
	}
	return row
}

// formatCell converts a scalar cell value to its display string.
// Floats use the shortest representation that round-trips.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// isNumeric reports whether a cell value is numeric, either natively or as
// a string that parses as a float. Numeric cells are right-aligned.
func isNumeric(v any) bool {
	switch x := v.(type) {
	case int, int64, float32, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(x, 64)
		return err == nil
	default:
		return false
	}
}
