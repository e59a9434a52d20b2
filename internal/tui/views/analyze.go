package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/timesplit/internal/analyzer"
	"github.com/xolan/timesplit/internal/chart"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/service"
	"github.com/xolan/timesplit/internal/tui/ui"
)

// Placeholder is shown in the empty notes input
const Placeholder = "Paste your time entries here. Format: [X mins] Task description"

const (
	inputHeight = 8
	minBarWidth = 10
)

// AnalyzeModel is the model for the notes input and chart view
type AnalyzeModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	input   textarea.Model
	running bool

	// Last result; report is nil after a failed run
	report *analyzer.Report
	err    error
}

// NewAnalyzeModel creates a new analyze view model with the input focused
func NewAnalyzeModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) AnalyzeModel {
	input := textarea.New()
	input.Placeholder = Placeholder
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetHeight(inputHeight)
	input.Focus()

	return AnalyzeModel{
		services: services,
		styles:   styles,
		keys:     keys,
		input:    input,
	}
}

// Init implements tea.Model
func (m AnalyzeModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m AnalyzeModel) Update(msg tea.Msg) (AnalyzeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Generate):
			m.running = true
			return m, m.generate(m.input.Value())

		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			m.report = nil
			m.err = nil
			return m, nil
		}

		if !m.input.Focused() {
			if key.Matches(msg, m.keys.Edit) || key.Matches(msg, m.keys.Select) {
				return m, m.input.Focus()
			}
			return m, nil
		}

		if key.Matches(msg, m.keys.Back) {
			m.input.Blur()
			return m, nil
		}

	case ui.AnalysisDoneMsg:
		m.running = false
		m.report = msg.Report
		m.err = msg.Err
		if msg.Err != nil {
			m.report = nil
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m AnalyzeModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Time Tracker Analysis"))
	b.WriteString("\n")

	inputStyle := m.styles.Input
	if m.input.Focused() {
		inputStyle = m.styles.InputFocused
	}
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")

	switch {
	case m.running:
		b.WriteString(m.styles.StatLabel.Render("Analyzing..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(analyzer.UserMessage(m.err)))
		b.WriteString("\n")
	case m.report != nil:
		b.WriteString("\n")
		b.WriteString(m.renderResults())
	default:
		b.WriteString(m.styles.StatLabel.Width(0).Render("Press ctrl+g to generate the chart"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m AnalyzeModel) renderResults() string {
	var b strings.Builder

	b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%s across %d %s",
		cli.FormatDuration(m.report.TotalMinutes), m.report.EntryCount, cli.Pluralize("entry", m.report.EntryCount))))
	b.WriteString("\n\n")

	b.WriteString(chart.Bars(chart.Layout(m.report.Summaries), m.barWidth()))
	b.WriteString("\n")

	b.WriteString(m.styles.ViewTitle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(RenderSummaryCards(m.report.Summaries, m.styles, m.width))
	b.WriteString("\n")

	return b.String()
}

// barWidth leaves room for the longest category name and its summary text
func (m AnalyzeModel) barWidth() int {
	return max(minBarWidth, m.width-60)
}

// SetSize sets the view dimensions
func (m *AnalyzeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(max(20, width-6))
}

// Notes returns the current input text
func (m AnalyzeModel) Notes() string {
	return m.input.Value()
}

// SetNotes replaces the input text
func (m *AnalyzeModel) SetNotes(text string) {
	m.input.SetValue(text)
}

// Report returns the last successful result, or nil
func (m AnalyzeModel) Report() *analyzer.Report {
	return m.report
}

// IsInputMode reports whether the notes input is capturing keys
func (m AnalyzeModel) IsInputMode() bool {
	return m.input.Focused()
}

// generate runs the analysis off the UI loop
func (m AnalyzeModel) generate(text string) tea.Cmd {
	return func() tea.Msg {
		report, err := m.services.Analysis.Analyze(text)
		return ui.AnalysisDoneMsg{Report: report, Err: err}
	}
}
