package preview

import (
	"testing"

	"datasetFmt/internal/report"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plannedRows() []report.PlannedRow {
	return []report.PlannedRow{
		{Row: 3, Kind: report.HeaderRow, Label: "Guidance sheets", Table: "Table_of_contents_1"},
		{Row: 4, Kind: report.EntryRow, Label: "Guidance", Table: "Table_of_contents_1"},
		{Row: 5, Kind: report.SectionRow, Label: "Solar"},
		{Row: 6, Kind: report.HeaderRow, Label: "Annual", Table: "Table_of_contents_2"},
		{Row: 7, Kind: report.EntryRow, Label: "Table_1", Table: "Table_of_contents_2"},
	}
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
	}
	return m
}

func TestInitialModelCounts(t *testing.T) {
	m := initialModel("Sunspots", plannedRows(), UIConfig{RowsPerPage: 2})

	assert.Equal(t, 2, m.entries)
	assert.Equal(t, 1, m.sections)
	assert.Contains(t, m.View(), "5 rows planned: 2 sheets linked, 1 sections")
	assert.Contains(t, m.View(), "Page 1/3")
}

func TestPaging(t *testing.T) {
	m := initialModel("Sunspots", plannedRows(), UIConfig{RowsPerPage: 2})

	m = press(t, m, "down", "down")
	assert.Equal(t, 1, m.page)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 2, m.currentIndex())

	m = press(t, m, "l")
	assert.Equal(t, 2, m.page)
	assert.Equal(t, 0, m.cursor)

	// Last page holds a single row
	m = press(t, m, "down")
	assert.Equal(t, 2, m.page)
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, "up")
	assert.Equal(t, 1, m.page)
	assert.Equal(t, 1, m.cursor)
}

func TestDetailView(t *testing.T) {
	m := initialModel("Sunspots", plannedRows(), UIConfig{RowsPerPage: 10})

	m = press(t, m, "down", "enter")
	require.Equal(t, stateDetail, m.state)
	view := m.View()
	assert.Contains(t, view, "Row A5")
	assert.Contains(t, view, "Links to: Guidance!A1")
	assert.Contains(t, view, "Excel table: Table_of_contents_1")

	m = press(t, m, "esc")
	assert.Equal(t, stateBrowse, m.state)
}

func TestQuit(t *testing.T) {
	m := initialModel("Sunspots", plannedRows(), UIConfig{})
	assert.Equal(t, 20, m.rowsPerPage)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRunRejectsEmptyPlan(t *testing.T) {
	assert.Error(t, Run("Sunspots", nil, UIConfig{RowsPerPage: 5}))
}
