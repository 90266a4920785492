package report

// Cover sheet labels that the restyle pass promotes to second-level headings.
var coverHeadings = []string{
	"Publication date",
	"Next release",
	"Contact details",
	"Changes",
	"Changes and notes",
}

func (a *assembler) writeCover() error {
	sheet := CoverSheet
	cover := a.tmpl.Cover
	st := a.styles

	if err := a.editor.SetColumnWidth(sheet, 0, 0, 95.29); err != nil {
		return err
	}

	a.cells.text(sheet, 0, 0, cover.Title, st.heading1)
	a.cells.text(sheet, 1, 0, cover.Summary, st.wrap)
	if cover.URL != "" {
		a.cells.url(sheet, 2, 0, cover.URL, cover.LinkText(), st.link)
	}
	a.cells.text(sheet, 3, 0, "Publication date", st.coverHeading2)
	a.cells.text(sheet, 4, 0, cover.PublicationDate, st.basic)
	a.cells.text(sheet, 5, 0, "Next release", st.coverHeading2)
	a.cells.text(sheet, 6, 0, cover.NextRelease, st.basic)
	a.cells.text(sheet, 7, 0, "Contact details", st.coverHeading2)
	if cover.Email != "" {
		a.cells.url(sheet, 8, 0, "mailto:"+cover.Email, cover.Email, st.link)
	}
	a.cells.text(sheet, 9, 0, "Telephone: "+cover.Telephone, st.basic)

	if len(a.tmpl.Changes) > 0 {
		a.cells.text(sheet, 10, 0, "Changes and notes", st.coverHeading2)
		for i, change := range a.tmpl.Changes {
			a.cells.text(sheet, 11+i, 0, change, st.wrap)
		}
	}
	return nil
}
