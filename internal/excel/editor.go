package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Editor wraps an excelize workbook and addresses cells by zero-based row and
// column, the way the report emitters count them.
type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// CreateNewFile creates a new Excel file in memory whose only sheet is named
// firstSheet
func CreateNewFile(firstSheet string) (*Editor, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName(file.GetSheetName(0), firstSheet); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to name first sheet: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: "",
	}, nil
}

// File exposes the underlying workbook
func (e *Editor) File() *excelize.File {
	return e.file
}

// CellName converts zero-based coordinates to an A1 reference
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return name
}

// ColumnName converts a zero-based column index to its letters
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return ""
	}
	return name
}

// SheetRef quotes a sheet name for use in a formula or hyperlink location
func SheetRef(sheet, cell string) string {
	if strings.ContainsAny(sheet, " -'()&,;") {
		sheet = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	return sheet + "!" + cell
}

// Write sets a value and style in a specific cell. A nil value only applies
// the style.
func (e *Editor) Write(sheet string, row, col int, value interface{}, style int) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if value != nil {
		if err := e.file.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	if style == 0 {
		return nil
	}
	return e.file.SetCellStyle(sheet, cell, cell, style)
}

// WriteURL writes an external hyperlink displaying text
func (e *Editor) WriteURL(sheet string, row, col int, url, text string, style int) error {
	return e.writeLink(sheet, row, col, url, "External", text, style)
}

// WriteSheetLink writes a link to cell A1 of another sheet in the workbook
func (e *Editor) WriteSheetLink(sheet string, row, col int, target, text string, style int) error {
	return e.writeLink(sheet, row, col, SheetRef(target, "A1"), "Location", text, style)
}

func (e *Editor) writeLink(sheet string, row, col int, link, linkType, text string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if text == "" {
		text = link
	}
	if err := e.file.SetCellValue(sheet, cell, text); err != nil {
		return err
	}
	if err := e.file.SetCellHyperLink(sheet, cell, link, linkType); err != nil {
		return fmt.Errorf("failed to set hyperlink on %s!%s: %w", sheet, cell, err)
	}
	if style == 0 {
		return nil
	}
	return e.file.SetCellStyle(sheet, cell, cell, style)
}

// GetCellValue returns the value in a specific cell
func (e *Editor) GetCellValue(sheet string, row, col int) (string, error) {
	return e.file.GetCellValue(sheet, CellName(row, col))
}

// GetCellStyle returns the style id of a specific cell
func (e *Editor) GetCellStyle(sheet string, row, col int) (int, error) {
	return e.file.GetCellStyle(sheet, CellName(row, col))
}

// SetCellStyle replaces the style of a specific cell
func (e *Editor) SetCellStyle(sheet string, row, col int, style int) error {
	cell := CellName(row, col)
	return e.file.SetCellStyle(sheet, cell, cell, style)
}

// IsHyperlink reports whether a cell carries a hyperlink
func (e *Editor) IsHyperlink(sheet string, row, col int) bool {
	ok, _, err := e.file.GetCellHyperLink(sheet, CellName(row, col))
	return err == nil && ok
}

// StyleDefinition returns the definition of a registered style
func (e *Editor) StyleDefinition(style int) (*excelize.Style, error) {
	return e.file.GetStyle(style)
}

// NewStyle registers a style and returns its id
func (e *Editor) NewStyle(style *excelize.Style) (int, error) {
	id, err := e.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	return id, nil
}

// SetColumnWidth sets the width of the zero-based columns first..last
func (e *Editor) SetColumnWidth(sheet string, first, last int, width float64) error {
	return e.file.SetColWidth(sheet, ColumnName(first), ColumnName(last), width)
}

// SetRowHeight sets the height of a zero-based row
func (e *Editor) SetRowHeight(sheet string, row int, height float64) error {
	return e.file.SetRowHeight(sheet, row+1, height)
}

// AddTable marks a range as an Excel table. The header cells must already be
// written; excelize uses them as column names. A table always spans at least
// one data row.
func (e *Editor) AddTable(sheet, name string, firstRow, firstCol, lastRow, lastCol int) error {
	if lastRow <= firstRow {
		lastRow = firstRow + 1
	}
	ref := CellName(firstRow, firstCol) + ":" + CellName(lastRow, lastCol)
	showStripes := false
	err := e.file.AddTable(sheet, &excelize.Table{
		Range:          ref,
		Name:           name,
		ShowRowStripes: &showStripes,
	})
	if err != nil {
		return fmt.Errorf("failed to add table %s at %s!%s: %w", name, sheet, ref, err)
	}
	return nil
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// AddSheet creates a new sheet
func (e *Editor) AddSheet(sheetName string) error {
	if _, err := e.file.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", sheetName, err)
	}
	return nil
}

// GetAllRows returns all rows from a sheet
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// Save saves the Excel file to the original filepath
func (e *Editor) Save() error {
	if e.filepath == "" {
		return fmt.Errorf("no filepath specified, use SaveAs instead")
	}
	return e.file.SaveAs(e.filepath)
}

// SaveAs saves the Excel file with a new name
func (e *Editor) SaveAs(filepath string) error {
	e.filepath = filepath
	return e.file.SaveAs(filepath)
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}
