package report

const emptyCellsNote = "Some cells in the Estimate, Units and Sources columns below have been left empty where there are no estimates or references."

// writeContents lays out the contents sheet: titles, every sub-table header
// and section rows. Entry rows are filled later as each sheet is written.
func (a *assembler) writeContents() error {
	sheet := ContentsSheet
	plan := a.plan
	st := a.styles

	if err := a.editor.AddSheet(sheet); err != nil {
		return err
	}
	widths := []float64{28, 56, 25, 66}
	for col, w := range widths {
		if err := a.editor.SetColumnWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	if err := a.editor.SetColumnWidth(sheet, 4, plan.LastColumn(), 30); err != nil {
		return err
	}

	a.cells.text(sheet, 0, 0, "Table of contents", st.heading1)
	a.cells.text(sheet, 1, 0, plan.CountNote(), st.basic)
	a.cells.text(sheet, 2, 0, emptyCellsNote, st.basic)

	columns := plan.Columns()
	for _, t := range plan.Tables {
		style := st.guidanceTable
		if !t.Leading && plan.Sectioned {
			style = st.guidanceTable2
		}
		a.cells.header(sheet, t.HeaderRow, 0, append([]string{t.Title}, columns...), style)
		if t.Leading {
			if err := a.editor.SetRowHeight(sheet, t.HeaderRow, 16.8); err != nil {
				return err
			}
		}
		if err := a.editor.AddTable(sheet, t.Name, t.HeaderRow, 0, t.LastRow(), plan.LastColumn()); err != nil {
			return err
		}
	}

	for _, s := range plan.Sections {
		a.cells.text(sheet, s.Row, 0, s.Name, st.coverHeading2)
	}
	return nil
}
