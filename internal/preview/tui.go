// Package preview browses the planned table of contents of a dataset in the
// terminal before any workbook is written.
package preview

import (
	"fmt"
	"math"
	"strings"

	"datasetFmt/internal/report"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UI States
type state int

const (
	stateBrowse state = iota
	stateDetail
)

// UIConfig represents UI configuration settings
type UIConfig struct {
	RowsPerPage int
}

type model struct {
	title string
	rows  []report.PlannedRow

	state state

	// Paged list navigation
	page        int
	cursor      int
	rowsPerPage int

	width  int
	height int

	// Counts shown in the header
	sections int
	entries  int

	// Styling
	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	headerStyle   lipgloss.Style
	sectionStyle  lipgloss.Style
	helpStyle     lipgloss.Style
	progressStyle lipgloss.Style
}

func initialModel(title string, rows []report.PlannedRow, uiConfig UIConfig) model {
	perPage := uiConfig.RowsPerPage
	if perPage < 1 {
		perPage = 20
	}

	m := model{
		title:       title,
		rows:        rows,
		state:       stateBrowse,
		rowsPerPage: perPage,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Align(lipgloss.Center),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true).
			Padding(0, 1),
		sectionStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Underline(true).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		progressStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
	}
	for _, r := range rows {
		switch r.Kind {
		case report.SectionRow:
			m.sections++
		case report.EntryRow:
			m.entries++
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Keep the configured page size unless the terminal is too short
		if fit := m.height - 8; fit >= 5 && fit < m.rowsPerPage {
			m.rowsPerPage = fit
			m.clampCursor()
		}
	case tea.KeyMsg:
		switch m.state {
		case stateBrowse:
			return m.updateBrowse(msg)
		case stateDetail:
			return m.updateDetail(msg)
		}
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else if m.page > 0 {
			m.page--
			m.cursor = m.rowsPerPage - 1
		}

	case "down", "j":
		if m.cursor < m.maxCursor() {
			m.cursor++
		} else if m.hasNextPage() {
			m.page++
			m.cursor = 0
		}

	case "left", "h":
		if m.page > 0 {
			m.page--
		}

	case "right", "l":
		if m.hasNextPage() {
			m.page++
			m.clampCursor()
		}

	case "enter":
		if m.currentIndex() < len(m.rows) {
			m.state = stateDetail
		}
	}
	return m, nil
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "enter":
		m.state = stateBrowse
	}
	return m, nil
}

// Helper functions
func (m model) currentIndex() int {
	return m.page*m.rowsPerPage + m.cursor
}

func (m model) hasNextPage() bool {
	return (m.page+1)*m.rowsPerPage < len(m.rows)
}

func (m model) maxCursor() int {
	onPage := len(m.rows) - m.page*m.rowsPerPage
	if onPage > m.rowsPerPage {
		return m.rowsPerPage - 1
	}
	return onPage - 1
}

func (m *model) clampCursor() {
	if last := m.maxCursor(); m.cursor > last {
		m.cursor = last
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) View() string {
	switch m.state {
	case stateBrowse:
		return m.viewBrowse()
	case stateDetail:
		return m.viewDetail()
	}
	return ""
}

func (m model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Width(m.width).Render("Table of contents: " + m.title))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("%d rows planned: %d sheets linked, %d sections", len(m.rows), m.entries, m.sections)
	b.WriteString(m.progressStyle.Render(summary))
	b.WriteString("\n\n")

	totalPages := int(math.Ceil(float64(len(m.rows)) / float64(m.rowsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	b.WriteString(m.helpStyle.Render(fmt.Sprintf("Page %d/%d", m.page+1, totalPages)))
	b.WriteString("\n\n")

	start := m.page * m.rowsPerPage
	end := start + m.rowsPerPage
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := start; i < end; i++ {
		r := m.rows[i]
		line := fmt.Sprintf("A%-4d %s", r.Row+1, label(r))

		style := m.normalStyle
		switch r.Kind {
		case report.SectionRow:
			style = m.sectionStyle
		case report.HeaderRow:
			style = m.headerStyle
		}
		if i-start == m.cursor {
			style = m.selectedStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "↑↓: navigate | ←→: prev/next page | Enter: details | q: quit"
	b.WriteString(m.helpStyle.Render(help))

	return b.String()
}

func label(r report.PlannedRow) string {
	switch r.Kind {
	case report.SectionRow:
		return r.Label
	case report.HeaderRow:
		return "[" + r.Label + "]"
	default:
		return "  → " + r.Label
	}
}

func (m model) viewDetail() string {
	var b strings.Builder
	r := m.rows[m.currentIndex()]

	b.WriteString(m.titleStyle.Render(fmt.Sprintf("Row A%d", r.Row+1)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Kind: %s\n", r.Kind))
	b.WriteString(fmt.Sprintf("Text: %s\n", r.Label))
	if r.Table != "" {
		b.WriteString(fmt.Sprintf("Excel table: %s\n", r.Table))
	}
	if r.Kind == report.EntryRow {
		b.WriteString(fmt.Sprintf("Links to: %s!A1\n", r.Label))
	}
	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("Esc: back | q: quit"))

	return b.String()
}

// Run starts the interactive contents browser
func Run(title string, rows []report.PlannedRow, uiConfig UIConfig) error {
	if len(rows) == 0 {
		return fmt.Errorf("no contents rows to preview")
	}

	p := tea.NewProgram(initialModel(title, rows, uiConfig), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %v", err)
	}
	return nil
}
