// Package tui provides the Terminal User Interface for timesplit.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/timesplit/internal/service"
	"github.com/xolan/timesplit/internal/tui/ui"
	"github.com/xolan/timesplit/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabAnalyze Tab = iota
	TabEntries
	TabConfig
)

var tabNames = []string{"Analyze", "Entries", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	analyzeView views.AnalyzeModel
	entriesView views.EntriesModel
	configView  views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabAnalyze,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		analyzeView:   views.NewAnalyzeModel(services, styles, keys),
		entriesView:   views.NewEntriesModel(styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.analyzeView.Init(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// modalInput blocks tab switching (theme selector),
		// capturingKeys blocks character shortcuts (notes input)
		modalInput := m.isModalInputMode()
		capturingKeys := m.isCapturingKeys()

		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit) && !capturingKeys:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturingKeys:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturingKeys && !modalInput:
			m.activeTab = TabAnalyze
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturingKeys && !modalInput:
			m.activeTab = TabEntries
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturingKeys && !modalInput:
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.analyzeView.SetSize(m.width, contentHeight)
		m.entriesView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.AnalysisDoneMsg:
		// Results arrive asynchronously, possibly after a tab switch
		m.analyzeView, _ = m.analyzeView.Update(msg)
		m.entriesView, _ = m.entriesView.Update(msg)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.analyzeView, _ = m.analyzeView.Update(themeMsg)
		m.entriesView, _ = m.entriesView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)

	case ui.ThemeSavedMsg:
		m.configView, _ = m.configView.Update(msg)
		return m, nil
	}

	switch m.activeTab {
	case TabAnalyze:
		m.analyzeView, cmd = m.analyzeView.Update(msg)
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabAnalyze:
		b.WriteString(m.analyzeView.View())
	case TabEntries:
		b.WriteString(m.entriesView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	switch m.activeTab {
	case TabAnalyze:
		parts = append(parts, m.renderKeyHelp("ctrl+g", "generate"))
		parts = append(parts, m.renderKeyHelp("ctrl+l", "clear"))
		if m.isCapturingKeys() {
			parts = append(parts, m.renderKeyHelp("esc", "stop editing"))
		} else {
			parts = append(parts, m.renderKeyHelp("i", "edit"))
		}
	case TabEntries:
		parts = append(parts, m.renderKeyHelp("j/k", "move"))
	case TabConfig:
		if m.isModalInputMode() {
			parts = append(parts, m.renderKeyHelp("Enter", "select"))
			parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
		} else {
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}
	}

	parts = append(parts, m.renderKeyHelp("tab", "views"))
	if m.isCapturingKeys() {
		parts = append(parts, m.renderKeyHelp("ctrl+c", "quit"))
	} else {
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isModalInputMode reports whether the active view must keep focus (theme selector)
func (m Model) isModalInputMode() bool {
	return m.activeTab == TabConfig && m.configView.IsInputMode()
}

// isCapturingKeys reports whether the active view is taking typed characters
func (m Model) isCapturingKeys() bool {
	return m.activeTab == TabAnalyze && m.analyzeView.IsInputMode()
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabAnalyze:
		return m.analyzeView.Init()
	case TabEntries:
		return m.entriesView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		return ui.ThemeSavedMsg{
			ThemeName: themeName,
			Err:       m.services.Config.Update(cfg),
		}
	}
}

// renderHelpOverlay renders the keyboard shortcuts box
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("  ctrl+c     Quit (also while typing)\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabAnalyze:
		help.WriteString(m.styles.StatLabel.Render("Analyze:"))
		help.WriteString("\n")
		help.WriteString("  ctrl+g     Generate chart\n")
		help.WriteString("  ctrl+l     Clear notes and chart\n")
		help.WriteString("  i/Enter    Edit notes\n")
		help.WriteString("  Esc        Stop editing\n")
	case TabEntries:
		help.WriteString(m.styles.StatLabel.Render("Entries:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Enter      Select theme\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
