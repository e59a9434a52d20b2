package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/timesplit/internal/analyzer"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/entry"
	"github.com/xolan/timesplit/internal/tui/ui"
)

// EntriesModel lists the classified entries of the last generated report
type EntriesModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	// UI state
	width   int
	height  int
	cursor  int
	offset  int
	entries []entry.Classified
	total   int
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(styles ui.Styles, keys ui.KeyMap) EntriesModel {
	return EntriesModel{
		styles: styles,
		keys:   keys,
	}
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.updateOffset()
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.updateOffset()
			}
		}

	case ui.AnalysisDoneMsg:
		m.setReport(msg.Report)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

func (m *EntriesModel) setReport(report *analyzer.Report) {
	m.cursor = 0
	m.offset = 0
	if report == nil {
		m.entries = nil
		m.total = 0
		return
	}
	m.entries = report.Entries
	m.total = report.TotalMinutes
}

// visibleRows is how many entries fit below the title lines
func (m EntriesModel) visibleRows() int {
	if m.height <= 4 {
		return max(1, len(m.entries))
	}
	return m.height - 4
}

func (m *EntriesModel) updateOffset() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// View implements tea.Model
func (m EntriesModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Entries"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(m.styles.StatLabel.Width(0).Render("No entries yet. Generate a chart on the Analyze tab."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.styles.StatLabel.Width(0).Render(fmt.Sprintf("%d %s, %s total",
		len(m.entries), cli.Pluralize("entry", len(m.entries)), cli.FormatDuration(m.total))))
	b.WriteString("\n\n")

	end := min(len(m.entries), m.offset+m.visibleRows())
	b.WriteString(RenderEntryList(m.entries[m.offset:end], m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.cursor - m.offset,
		Start:  m.offset,
	}))

	return b.String()
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateOffset()
}
