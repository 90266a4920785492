package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellNames(t *testing.T) {
	assert.Equal(t, "A1", CellName(0, 0))
	assert.Equal(t, "E4", CellName(3, 4))
	assert.Equal(t, "AA10", CellName(9, 26))
	assert.Equal(t, "", CellName(-1, 0))
	assert.Equal(t, "C", ColumnName(2))
}

func TestSheetRef(t *testing.T) {
	assert.Equal(t, "Table_1!A1", SheetRef("Table_1", "A1"))
	assert.Equal(t, "'Index of trusts'!A1", SheetRef("Index of trusts", "A1"))
	assert.Equal(t, "'O''Neil'!B2", SheetRef("O'Neil", "B2"))
}

func TestNumberFormat(t *testing.T) {
	assert.Equal(t, "#,##0", NumberFormat(0))
	assert.Equal(t, "#,##0.0", NumberFormat(1))
	assert.Equal(t, "#,##0.000", NumberFormat(3))
}

func TestEditorRoundTrip(t *testing.T) {
	editor, err := CreateNewFile("Cover_sheet")
	require.NoError(t, err)
	require.NoError(t, editor.AddSheet("Table_1"))

	bold, err := editor.NewStyle(FontStyle("Arial", 12, true, Align("left", false)))
	require.NoError(t, err)
	link, err := editor.NewStyle(LinkStyle("Arial", 12))
	require.NoError(t, err)

	require.NoError(t, editor.Write("Table_1", 0, 0, "Year", bold))
	require.NoError(t, editor.Write("Table_1", 0, 1, "UK", bold))
	require.NoError(t, editor.Write("Table_1", 1, 0, 2020, 0))
	require.NoError(t, editor.Write("Table_1", 1, 1, 3.5, 0))
	require.NoError(t, editor.AddTable("Table_1", "Data", 0, 0, 1, 1))
	require.NoError(t, editor.WriteSheetLink("Cover_sheet", 2, 0, "Table_1", "Table_1", link))
	require.NoError(t, editor.WriteURL("Cover_sheet", 3, 0, "https://example.org", "Example", link))
	require.NoError(t, editor.SetColumnWidth("Table_1", 0, 1, 28))
	require.NoError(t, editor.SetRowHeight("Table_1", 0, 90))

	assert.True(t, editor.IsHyperlink("Cover_sheet", 2, 0))
	assert.False(t, editor.IsHyperlink("Table_1", 0, 0))

	path := filepath.Join(t.TempDir(), "roundtrip.xlsx")
	require.NoError(t, editor.SaveAs(path))
	require.NoError(t, editor.Close())

	wb, err := ScanWorkbook(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cover_sheet", "Table_1"}, wb.Sheets)
	assert.Equal(t, []string{"Table_1"}, wb.SheetsWithPrefix("Table"))
	assert.True(t, wb.HasSheet("Cover_sheet"))

	rows := wb.Rows("Table_1")
	assert.Equal(t, "Year", Cell(rows, 0, 0))
	assert.Equal(t, "3.5", Cell(rows, 1, 1))
	assert.Equal(t, "", Cell(rows, 5, 5))
	assert.Equal(t, "Example", Cell(wb.Rows("Cover_sheet"), 3, 0))

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	defer reopened.Close()

	ok, target, err := reopened.File().GetCellHyperLink("Cover_sheet", "A3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Table_1!A1", target)
}
