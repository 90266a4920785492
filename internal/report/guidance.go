package report

import (
	"fmt"

	"datasetFmt/internal/template"
)

const blankReferencesNote = "Some cells in the 'Sources and references' columns have been left blank because there were no relevant sources."

func (a *assembler) writeGuidance() error {
	sheet := GuidanceSheet
	g := a.tmpl.Guidance
	st := a.styles
	refs := g.References()

	if err := a.oneTableSheet(sheet, "Sources and methodology"); err != nil {
		return err
	}
	if err := a.editor.SetColumnWidth(sheet, 0, 0, 28); err != nil {
		return err
	}
	if err := a.editor.SetColumnWidth(sheet, 1, 1, 120); err != nil {
		return err
	}
	if refs > 0 {
		if err := a.editor.SetColumnWidth(sheet, 2, 1+refs, 34.44); err != nil {
			return err
		}
	}

	headerRow := 2
	if hasBlankReference(g.Rows, refs) {
		a.cells.text(sheet, 2, 0, blankReferencesNote, st.basic)
		headerRow = 3
	}

	header := []string{"Notes", "Guidance"}
	for k := 1; k <= refs; k++ {
		if refs == 1 {
			header = append(header, "Sources and references")
		} else {
			header = append(header, fmt.Sprintf("Sources and references (%d)", k))
		}
	}
	a.cells.header(sheet, headerRow, 0, header, st.guidanceTable)
	if err := a.editor.SetRowHeight(sheet, headerRow, 16.8); err != nil {
		return err
	}
	if err := a.editor.AddTable(sheet, "Guidance", headerRow, 0, headerRow+len(g.Rows), len(header)-1); err != nil {
		return err
	}

	for i, r := range g.Rows {
		row := headerRow + 1 + i
		a.cells.text(sheet, row, 0, r.Note, st.wrap)
		a.cells.text(sheet, row, 1, r.Guidance, st.wrap)
		for k, ref := range r.References {
			if k >= refs {
				break
			}
			a.cells.reference(sheet, row, 2+k, ref, st.wrap, st.link)
		}
	}

	return a.fillEntry(sheet, "", "",
		"This sheet contains notes on dataset structure and methodology, and additional notes.", nil)
}

// hasBlankReference reports whether any row leaves the last reference column
// empty.
func hasBlankReference(rows []template.GuidanceRow, refs int) bool {
	if refs == 0 {
		return false
	}
	for _, r := range rows {
		if len(r.References) < refs || r.References[refs-1].Empty() {
			return true
		}
	}
	return false
}
