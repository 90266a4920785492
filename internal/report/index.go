package report

import "datasetFmt/internal/template"

func (a *assembler) writeIndex(section template.IndexSection) error {
	sheet := section.TabName
	st := a.styles
	last := len(section.Header) - 1

	if err := a.oneTableSheet(sheet, section.Title); err != nil {
		return err
	}
	if err := a.editor.SetColumnWidth(sheet, 0, last, 50); err != nil {
		return err
	}

	const headerRow = 2
	a.cells.header(sheet, headerRow, 0, section.Header, st.guidanceTable)
	if err := a.editor.SetRowHeight(sheet, headerRow, 16.8); err != nil {
		return err
	}
	if err := a.editor.AddTable(sheet, section.TableName(), headerRow, 0, headerRow+len(section.Rows), last); err != nil {
		return err
	}

	for i, r := range section.Rows {
		for j, v := range r {
			a.cells.text(sheet, headerRow+1+i, j, v, st.wrap)
		}
	}

	return a.fillEntry(sheet, "", "", section.Description, []template.Reference{section.Source})
}
