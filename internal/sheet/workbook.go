package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Table is an in-memory view of the first worksheet: a header row plus data
// rows. Rows can be ragged (trailing empty cells are not materialized), so
// cell access goes through Cell.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]string
}

// Cell returns the value at (row, col), or "" when the row is shorter.
func (t *Table) Cell(row, col int) string {
	if col < len(t.Rows[row]) {
		return t.Rows[row][col]
	}
	return ""
}

// Read parses the first worksheet of an .xlsx stream. The first row is the
// header row.
func Read(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el libro no contiene hojas")
	}
	name := sheets[0]

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}

	t := &Table{Sheet: name}
	if len(rows) > 0 {
		t.Headers = rows[0]
		t.Rows = rows[1:]
	}
	return t, nil
}

// Write serializes the table as a single-sheet .xlsx. Short rows are padded
// so every row spans the header width.
func Write(t *Table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := t.Sheet
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	if sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return err
		}
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i := range t.Rows {
		row := make([]any, len(t.Headers))
		for j := range t.Headers {
			row[j] = t.Cell(i, j)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
