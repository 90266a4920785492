package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanSingleDefinition(t *testing.T) {
	p, err := NewPlan(Input{
		Definitions: []Definition{{Subsection: "Annual", Tables: 4, Sources: 2}},
		IndexSheets: 1,
		HasNotes:    true,
	})
	require.NoError(t, err)

	require.Len(t, p.Tables, 1)
	assert.Equal(t, "Table_of_contents", p.Tables[0].Name)
	assert.Equal(t, SingleTableTitle, p.Tables[0].Title)
	assert.Equal(t, 3, p.Tables[0].HeaderRow)
	// guidance + index + notes + 4 tables
	assert.Equal(t, 7, p.Tables[0].Rows)

	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10}, p.Entries())
	assert.Equal(t, 10, p.LastRow())
	assert.Equal(t, 2, p.SourceColumns)
	assert.Equal(t, 5, p.LastColumn())
	assert.Equal(t, []string{"Estimate", "Units", "Table description and information", "Sources (1)", "Sources (2)"}, p.Columns())
	assert.Equal(t, "This worksheet contains one table.", p.CountNote())
}

func TestNewPlanWithoutSections(t *testing.T) {
	p, err := NewPlan(Input{
		Definitions: []Definition{
			{Subsection: "Annual", Tables: 2, Sources: 1},
			{Subsection: "Quarterly", Tables: 1},
		},
	})
	require.NoError(t, err)

	assert.False(t, p.Sectioned)
	require.Len(t, p.Tables, 3)

	assert.Equal(t, GuidanceTableTitle, p.Tables[0].Title)
	assert.Equal(t, 3, p.Tables[0].HeaderRow)
	assert.Equal(t, 1, p.Tables[0].Rows)

	assert.Equal(t, "Annual", p.Tables[1].Title)
	assert.Equal(t, "Table_of_contents_2", p.Tables[1].Name)
	assert.Equal(t, 5, p.Tables[1].HeaderRow)
	assert.Equal(t, Heading2, p.Tables[1].Level)

	assert.Equal(t, "Quarterly", p.Tables[2].Title)
	assert.Equal(t, 8, p.Tables[2].HeaderRow)

	assert.Equal(t, []int{4, 6, 7, 9}, p.Entries())
	assert.Equal(t, []string{"Estimate", "Units", "Table description and information", "Sources"}, p.Columns())
	assert.Equal(t, "This worksheet contains three tables, stacked vertically.", p.CountNote())
}

func TestNewPlanWithSections(t *testing.T) {
	p, err := NewPlan(Input{
		Definitions: []Definition{
			{Section: "UK", Subsection: "Annual", Tables: 1},
			{Section: "UK", Subsection: "Quarterly", Tables: 2},
			{Section: "Regions", Subsection: "Annual by region", Tables: 1},
		},
		HasNotes: true,
	})
	require.NoError(t, err)

	assert.True(t, p.Sectioned)
	require.Len(t, p.Sections, 2)
	// guidance table: header 3, rows 4-5
	assert.Equal(t, SectionHeading{Row: 6, Name: "UK"}, p.Sections[0])
	assert.Equal(t, 7, p.Tables[1].HeaderRow)
	assert.Equal(t, Heading3, p.Tables[1].Level)
	assert.Equal(t, 9, p.Tables[2].HeaderRow)
	assert.Equal(t, SectionHeading{Row: 12, Name: "Regions"}, p.Sections[1])
	assert.Equal(t, 13, p.Tables[3].HeaderRow)

	assert.Equal(t, []int{4, 5, 8, 10, 11, 14}, p.Entries())
	assert.Equal(t, 14, p.LastRow())

	for _, row := range []int{3, 6, 7, 9, 12, 13} {
		assert.True(t, p.IsHeading(row), "row %d", row)
	}
	assert.Equal(t, 6, p.HeadingCount())
}

func TestNewPlanSlotCount(t *testing.T) {
	in := Input{
		Definitions: []Definition{
			{Section: "A", Subsection: "a1", Tables: 3},
			{Subsection: "loose", Tables: 2},
			{Section: "B", Subsection: "b1", Tables: 4},
		},
		IndexSheets: 2,
		HasNotes:    true,
	}
	p, err := NewPlan(in)
	require.NoError(t, err)

	assert.Len(t, p.Entries(), in.GuidanceSheets()+in.DataTables())
	for _, row := range p.Entries() {
		assert.False(t, p.IsHeading(row), "entry row %d collides with a heading", row)
	}
	assert.Equal(t, p.LastRow()+1-FirstHeaderRow, p.HeadingCount()+len(p.Entries()))
}

func TestNewPlanRejectsBadInput(t *testing.T) {
	_, err := NewPlan(Input{})
	assert.Error(t, err)

	_, err = NewPlan(Input{Definitions: []Definition{{Section: "UK", Tables: 1}}})
	assert.Error(t, err)

	_, err = NewPlan(Input{Definitions: []Definition{
		{Subsection: "Empty"},
		{Subsection: "Annual", Tables: 1},
	}})
	assert.ErrorIs(t, err, ErrEmptyDefinition)
}

func TestLedger(t *testing.T) {
	p, err := NewPlan(Input{
		Definitions: []Definition{{Subsection: "Annual", Tables: 1}},
	})
	require.NoError(t, err)

	l := p.NewLedger()
	assert.Equal(t, 2, l.Remaining())

	row, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, 4, row)

	row, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, 5, row)

	_, err = l.Next()
	assert.ErrorIs(t, err, ErrLedgerExhausted)
	assert.Equal(t, 2, l.Filled())
	assert.Equal(t, 0, l.Remaining())

	// a second ledger starts from the beginning
	row, err = p.NewLedger().Next()
	require.NoError(t, err)
	assert.Equal(t, 4, row)
}
