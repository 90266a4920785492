package report

import (
	"fmt"
	"sort"

	"datasetFmt/internal/layout"
	"datasetFmt/internal/template"
)

// RowKind classifies a planned contents row.
type RowKind string

const (
	SectionRow RowKind = "section"
	HeaderRow  RowKind = "header"
	EntryRow   RowKind = "entry"
)

// PlannedRow is one row of the contents sheet as it will be written.
type PlannedRow struct {
	Row   int
	Kind  RowKind
	Label string
	// Table is the contents sub-table the row belongs to; empty for sections.
	Table string
}

// PreviewContents plans the contents sheet for tmpl without writing a
// workbook. Entry rows are labelled with the sheet that will claim them.
func PreviewContents(tmpl *template.Template) ([]PlannedRow, error) {
	plan, err := layout.NewPlan(PlanInput(tmpl))
	if err != nil {
		return nil, err
	}

	order := emissionOrder(tmpl)
	if len(order) != len(plan.Entries()) {
		return nil, fmt.Errorf("%w: %d sheets for %d rows", ErrUnfilledSlots, len(order), len(plan.Entries()))
	}

	var rows []PlannedRow
	for _, s := range plan.Sections {
		rows = append(rows, PlannedRow{Row: s.Row, Kind: SectionRow, Label: s.Name})
	}
	ledger := plan.NewLedger()
	next := 0
	for _, t := range plan.Tables {
		rows = append(rows, PlannedRow{Row: t.HeaderRow, Kind: HeaderRow, Label: t.Title, Table: t.Name})
		for i := 0; i < t.Rows; i++ {
			row, err := ledger.Next()
			if err != nil {
				return nil, err
			}
			rows = append(rows, PlannedRow{Row: row, Kind: EntryRow, Label: order[next].name, Table: t.Name})
			next++
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Row < rows[j].Row })
	return rows, nil
}
