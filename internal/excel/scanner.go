package excel

import (
	"fmt"
	"strings"
)

// Workbook is a read-only snapshot of every sheet's cell text
type Workbook struct {
	Path   string
	Sheets []string
	rows   map[string][][]string
}

// ScanWorkbook opens an Excel file and reads the rows of all its sheets
func ScanWorkbook(filePath string) (*Workbook, error) {
	editor, err := OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer editor.Close()

	wb := &Workbook{
		Path:   filePath,
		Sheets: editor.GetSheetNames(),
		rows:   make(map[string][][]string),
	}

	for _, sheetName := range wb.Sheets {
		rows, err := editor.GetAllRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheetName, err)
		}
		wb.rows[sheetName] = rows
	}

	return wb, nil
}

// HasSheet reports whether the workbook contains a sheet
func (w *Workbook) HasSheet(name string) bool {
	_, ok := w.rows[name]
	return ok
}

// Rows returns the rows of a sheet, or nil when it does not exist
func (w *Workbook) Rows(name string) [][]string {
	return w.rows[name]
}

// SheetsWithPrefix lists sheets whose names start with prefix, in workbook order
func (w *Workbook) SheetsWithPrefix(prefix string) []string {
	var names []string
	for _, name := range w.Sheets {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}

// Cell returns the trimmed text at zero-based coordinates of a row grid, or ""
func Cell(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) || col < 0 || col >= len(rows[row]) {
		return ""
	}
	return strings.TrimSpace(rows[row][col])
}
