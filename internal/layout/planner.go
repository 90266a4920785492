// Package layout plans the row structure of the table of contents sheet before
// any worksheet is written.
package layout

import (
	"fmt"

	"datasetFmt/internal/prose"
)

// FirstHeaderRow is the zero-based row of the first contents sub-table header.
// Rows above it hold the sheet title and two notes.
const FirstHeaderRow = 3

const (
	SingleTableTitle   = "Sheet name"
	GuidanceTableTitle = "Guidance sheets"
)

// Definition summarises one contents definition from the template.
type Definition struct {
	Section    string
	Subsection string
	Tables     int
	Sources    int
}

// Input is everything the planner needs to know about the workbook.
type Input struct {
	Definitions []Definition
	IndexSheets int
	HasNotes    bool
}

// GuidanceSheets counts guidance, index and notes sheets.
func (in Input) GuidanceSheets() int {
	n := 1 + in.IndexSheets
	if in.HasNotes {
		n++
	}
	return n
}

// DataTables counts data tables across all definitions.
func (in Input) DataTables() int {
	n := 0
	for _, d := range in.Definitions {
		n += d.Tables
	}
	return n
}

// HeadingLevel selects the style the header cell of a sub-table is promoted to.
type HeadingLevel int

const (
	Heading2 HeadingLevel = 2
	Heading3 HeadingLevel = 3
)

// SubTable is one Excel table on the contents sheet.
type SubTable struct {
	Name      string
	Title     string
	HeaderRow int
	Rows      int
	Level     HeadingLevel
	// Leading marks the table holding guidance sheets, which keeps the larger
	// header style.
	Leading bool
}

// LastRow is the zero-based row of the last entry in the sub-table.
func (t SubTable) LastRow() int {
	return t.HeaderRow + t.Rows
}

// SectionHeading is a standalone section row on the contents sheet.
type SectionHeading struct {
	Row  int
	Name string
}

// Plan is the contents sheet layout.
type Plan struct {
	SourceColumns int
	Sectioned     bool
	Tables        []SubTable
	Sections      []SectionHeading

	headings map[int]bool
	entries  []int
	lastRow  int
}

// NewPlan computes sub-tables, heading rows and entry rows.
func NewPlan(in Input) (*Plan, error) {
	if len(in.Definitions) == 0 {
		return nil, fmt.Errorf("at least one contents definition is required")
	}

	p := &Plan{
		SourceColumns: 1,
		headings:      make(map[int]bool),
	}
	for _, d := range in.Definitions {
		if d.Subsection == "" {
			return nil, fmt.Errorf("contents definition without a subsection name")
		}
		if d.Tables < 1 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyDefinition, d.Subsection)
		}
		if d.Sources > p.SourceColumns {
			p.SourceColumns = d.Sources
		}
		if d.Section != "" {
			p.Sectioned = true
		}
	}

	guidance := in.GuidanceSheets()

	if len(in.Definitions) == 1 {
		p.addTable(SubTable{
			Name:      "Table_of_contents",
			Title:     SingleTableTitle,
			HeaderRow: FirstHeaderRow,
			Rows:      guidance + in.DataTables(),
			Level:     Heading2,
			Leading:   true,
		})
		p.finish()
		return p, nil
	}

	p.addTable(SubTable{
		Name:      "Table_of_contents_1",
		Title:     GuidanceTableTitle,
		HeaderRow: FirstHeaderRow,
		Rows:      guidance,
		Level:     Heading2,
		Leading:   true,
	})

	row := FirstHeaderRow + guidance + 1
	level := Heading2
	if p.Sectioned {
		level = Heading3
	}

	current := ""
	for i, d := range in.Definitions {
		if d.Section != "" && d.Section != current {
			p.Sections = append(p.Sections, SectionHeading{Row: row, Name: d.Section})
			p.headings[row] = true
			row++
		}
		current = d.Section

		t := SubTable{
			Name:      fmt.Sprintf("Table_of_contents_%d", i+2),
			Title:     d.Subsection,
			HeaderRow: row,
			Rows:      d.Tables,
			Level:     level,
		}
		p.addTable(t)
		row = t.LastRow() + 1
	}

	p.finish()
	return p, nil
}

func (p *Plan) addTable(t SubTable) {
	p.Tables = append(p.Tables, t)
	p.headings[t.HeaderRow] = true
}

func (p *Plan) finish() {
	for _, t := range p.Tables {
		for r := t.HeaderRow + 1; r <= t.LastRow(); r++ {
			p.entries = append(p.entries, r)
		}
		if t.LastRow() > p.lastRow {
			p.lastRow = t.LastRow()
		}
	}
	for _, s := range p.Sections {
		if s.Row > p.lastRow {
			p.lastRow = s.Row
		}
	}
}

// Columns are the header cells following the first column of every sub-table.
func (p *Plan) Columns() []string {
	cols := []string{"Estimate", "Units", "Table description and information"}
	if p.SourceColumns == 1 {
		return append(cols, "Sources")
	}
	for i := 1; i <= p.SourceColumns; i++ {
		cols = append(cols, fmt.Sprintf("Sources (%d)", i))
	}
	return cols
}

// LastColumn is the zero-based index of the rightmost contents column.
func (p *Plan) LastColumn() int {
	return 3 + p.SourceColumns
}

// CountNote is the sentence written under the contents title.
func (p *Plan) CountNote() string {
	return prose.NumberOfTablesNote(len(p.Tables))
}

// IsHeading reports whether a zero-based row holds a section or sub-table header.
func (p *Plan) IsHeading(row int) bool {
	return p.headings[row]
}

// HeadingCount is the number of heading rows, sections included.
func (p *Plan) HeadingCount() int {
	return len(p.headings)
}

// Entries returns the entry rows in ascending order.
func (p *Plan) Entries() []int {
	out := make([]int, len(p.entries))
	copy(out, p.entries)
	return out
}

// LastRow is the zero-based index of the last row used on the contents sheet.
func (p *Plan) LastRow() int {
	return p.lastRow
}

// NewLedger returns a fresh cursor over the entry rows.
func (p *Plan) NewLedger() *Ledger {
	return NewLedger(p.entries)
}
