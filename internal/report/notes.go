package report

import "fmt"

func (a *assembler) writeNotes() error {
	sheet := NotesSheet
	st := a.styles

	if err := a.oneTableSheet(sheet, "Notes"); err != nil {
		return err
	}
	if err := a.editor.SetColumnWidth(sheet, 0, 0, 28); err != nil {
		return err
	}
	if err := a.editor.SetColumnWidth(sheet, 1, 1, 104); err != nil {
		return err
	}

	const headerRow = 2
	a.cells.header(sheet, headerRow, 0, []string{"Number", "Note"}, st.guidanceTable)
	if err := a.editor.SetRowHeight(sheet, headerRow, 16.8); err != nil {
		return err
	}
	if err := a.editor.AddTable(sheet, "Notes", headerRow, 0, headerRow+len(a.tmpl.Notes), 1); err != nil {
		return err
	}
	for i, note := range a.tmpl.Notes {
		row := headerRow + 1 + i
		a.cells.text(sheet, row, 0, fmt.Sprintf("Note %d", i+1), st.basic)
		a.cells.text(sheet, row, 1, note, st.wrap)
	}

	return a.fillEntry(sheet, "", "",
		"This sheet contains additional notes specific to aspects of various tables in this workbook.", nil)
}
