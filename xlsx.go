package tab2img

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheetName  = "Sheet1"
	firstColWidth     = 24 // characters; the first column carries row labels
	defaultColWidth   = 14
	headerFillColor   = "343A40"
	zebraFillColor    = "F2F2F2"
	borderColor       = "DEE2E6"
	footnoteFontColor = "6C757D"
)

// xlsxStyles holds the style IDs used by the workbook writer.
type xlsxStyles struct {
	header int
	plain  int
	zebra  int
	note   int
}

// RenderXLSX writes the dataset as a styled workbook mirroring the HTML
// look: dark header row with white bold text, zebra striping, bordered
// cells, and the fixed footnote below the table. Returns the written path
// (opts.Name, default "table.xlsx").
func (r *Renderer) RenderXLSX(ds *Dataset, opts Options) (string, error) {
	if err := r.validate(ds, opts); err != nil {
		return "", err
	}

	labels, err := resolveLabels(ds, opts.Labels)
	if err != nil {
		return "", err
	}

	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	styles, err := buildXLSXStyles(file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
	}

	stream, err := file.NewStreamWriter(defaultSheetName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
	}

	if err := stream.SetColWidth(1, 1, firstColWidth); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
	}
	if ds.NumCols() > 1 {
		if err := stream.SetColWidth(2, ds.NumCols(), defaultColWidth); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
		}
	}

	header := make([]interface{}, len(labels))
	for i, label := range labels {
		header[i] = excelize.Cell{StyleID: styles.header, Value: label}
	}
	if err := stream.SetRow("A1", header); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
	}

	for row := 0; row < ds.NumRows(); row++ {
		styleID := styles.plain
		if row%2 == 1 {
			styleID = styles.zebra
		}
		cells := make([]interface{}, ds.NumCols())
		for col := 0; col < ds.NumCols(); col++ {
			cells[col] = excelize.Cell{StyleID: styleID, Value: ds.Cell(row, col)}
		}
		anchor, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
		}
		if err := stream.SetRow(anchor, cells); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
		}
	}

	// Footnote one row below the table
	anchor, err := excelize.CoordinatesToCellName(1, ds.NumRows()+3)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
	}
	noteRow := []interface{}{excelize.Cell{StyleID: styles.note, Value: footnote}}
	if err := stream.SetRow(anchor, noteRow); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
	}

	if err := stream.Flush(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
	}

	path := resolveName(opts.Name, DefaultXLSXName)
	if err := file.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteXLSX, err)
	}

	return path, nil
}

// buildXLSXStyles registers the workbook styles once per file.
func buildXLSXStyles(file *excelize.File) (xlsxStyles, error) {
	borders := []excelize.Border{
		{Type: "left", Color: borderColor, Style: 1},
		{Type: "right", Color: borderColor, Style: 1},
		{Type: "top", Color: borderColor, Style: 1},
		{Type: "bottom", Color: borderColor, Style: 1},
	}

	header, err := file.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Border: borders,
	})
	if err != nil {
		return xlsxStyles{}, err
	}

	plain, err := file.NewStyle(&excelize.Style{Border: borders})
	if err != nil {
		return xlsxStyles{}, err
	}

	zebra, err := file.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{zebraFillColor}, Pattern: 1},
		Border: borders,
	})
	if err != nil {
		return xlsxStyles{}, err
	}

	note, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Size: 9, Color: footnoteFontColor},
	})
	if err != nil {
		return xlsxStyles{}, err
	}

	return xlsxStyles{header: header, plain: plain, zebra: zebra, note: note}, nil
}
