package report

import (
	"datasetFmt/internal/dataset"
	"datasetFmt/internal/prose"
	"datasetFmt/internal/template"
)

// writeTable emits the worksheet of data table x.
func (a *assembler) writeTable(x int, md template.TableMetadata, table *dataset.Table) error {
	sheet := DataSheetName(x)
	st := a.styles

	if md.HiddenDecimals != nil {
		table = table.Rounded(*md.HiddenDecimals)
	}
	number, err := st.number(md.Displayed())
	if err != nil {
		return err
	}
	nrows, ncols := table.Shape()

	if err := a.oneTableSheet(sheet, "Worksheet: "+md.Name); err != nil {
		return err
	}
	if err := a.editor.SetColumnWidth(sheet, 0, ncols, 28); err != nil {
		return err
	}

	extra := 0
	note := md.MissingDataNote
	if missing := table.MissingColumns(); note == "" && len(missing) > 0 {
		note = prose.MissingDataNote(missing)
	}
	if note != "" {
		a.cells.text(sheet, 2, 0, note, st.basic)
		extra = 1
	}

	headerRow := 2 + extra
	a.cells.header(sheet, headerRow, 0, append([]string{table.IndexName}, table.Columns...), st.tableHeading)
	if err := a.editor.SetRowHeight(sheet, headerRow, 90); err != nil {
		return err
	}

	name := md.MarkupName
	if name == "" {
		name = sheet
	}
	if err := a.editor.AddTable(sheet, template.SanitizeName(name), headerRow, 0, headerRow+nrows, ncols); err != nil {
		return err
	}

	// Rows above the last header row carry column subheadings.
	subheadings := md.Headers() - 1
	for i := 0; i < nrows; i++ {
		row := headerRow + 1 + i
		a.cells.write(sheet, row, 0, table.Index[i], st.index)
		style := number
		if i < subheadings {
			style = st.tableSubheading
		}
		for j := 0; j < ncols; j++ {
			a.cells.write(sheet, row, 1+j, table.Cell(i, j), style)
		}
	}

	return a.fillEntry(sheet, md.Estimate, md.Unit, md.Description, md.Sources)
}
