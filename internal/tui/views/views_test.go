package views

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/timesplit/internal/analyzer"
	"github.com/xolan/timesplit/internal/category"
	"github.com/xolan/timesplit/internal/config"
	"github.com/xolan/timesplit/internal/entry"
	"github.com/xolan/timesplit/internal/service"
	"github.com/xolan/timesplit/internal/stats"
	"github.com/xolan/timesplit/internal/tui/ui"
)

const sampleNotes = "[30 mins] Team meeting\n[45 mins] Research competitors"

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	return service.NewServicesWithPath(filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig())
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func analyze(t *testing.T, notes string) *analyzer.Report {
	t.Helper()
	report, err := analyzer.Analyze(notes)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	return report
}

func TestRenderEntryList(t *testing.T) {
	entries := []entry.Classified{
		{Entry: entry.Entry{DurationMinutes: 30, Description: "Team meeting"}, Category: category.MeetingsAndCalls},
		{Entry: entry.Entry{DurationMinutes: 90, Description: "Write docs"}, Category: category.ResearchAndDocumentation},
	}

	out := RenderEntryList(entries, ui.DefaultStyles(), EntryRenderOptions{Width: 100, Cursor: 0})

	for _, expected := range []string{"[1]", "[2]", "30m", "1h 30m", "Team meeting", "Write docs", "Meetings & Calls", "Research & Documentation"} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %q, got:\n%s", expected, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("expected 2 lines, got %d", lines)
	}
}

func TestRenderEntryList_Start(t *testing.T) {
	entries := []entry.Classified{
		{Entry: entry.Entry{DurationMinutes: 5, Description: "Slack message"}, Category: category.CommunicationAndTasks},
	}

	out := RenderEntryList(entries, ui.DefaultStyles(), EntryRenderOptions{Width: 80, Cursor: -1, Start: 9})
	if !strings.Contains(out, "[10]") {
		t.Errorf("expected index offset by Start, got %q", out)
	}
}

func TestRenderEntryList_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", 200)
	entries := []entry.Classified{
		{Entry: entry.Entry{DurationMinutes: 5, Description: long}, Category: category.Other},
	}

	out := RenderEntryList(entries, ui.DefaultStyles(), EntryRenderOptions{Width: 60, Cursor: -1})
	if strings.Contains(out, long) {
		t.Error("expected long description to be truncated")
	}
	if !strings.Contains(out, "…") {
		t.Error("expected ellipsis in truncated description")
	}
}

func TestRenderEntryList_Empty(t *testing.T) {
	if out := RenderEntryList(nil, ui.DefaultStyles(), EntryRenderOptions{Width: 80}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRenderSummaryCards(t *testing.T) {
	summaries := []stats.CategorySummary{
		{Category: category.MeetingsAndCalls, Percent: 40, Hours: 0.5},
		{Category: category.ResearchAndDocumentation, Percent: 60, Hours: 0.8},
	}

	wide := RenderSummaryCards(summaries, ui.DefaultStyles(), 200)
	for _, expected := range []string{"Meetings & Calls", "0.5 hours (40%)", "Research & Documentation", "0.8 hours (60%)"} {
		if !strings.Contains(wide, expected) {
			t.Errorf("expected cards to contain %q, got:\n%s", expected, wide)
		}
	}
	if lipgloss.Height(wide) != 4 {
		t.Errorf("expected cards side by side (4 lines), got %d:\n%s", lipgloss.Height(wide), wide)
	}

	narrow := RenderSummaryCards(summaries, ui.DefaultStyles(), 30)
	if lipgloss.Height(narrow) != 8 {
		t.Errorf("expected cards stacked (8 lines), got %d:\n%s", lipgloss.Height(narrow), narrow)
	}
}

func TestRenderSummaryCards_Empty(t *testing.T) {
	if out := RenderSummaryCards(nil, ui.DefaultStyles(), 80); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 8, "this is…"},
		{"Größenänderung", 5, "Größ…"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.width); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.input, tt.width, got, tt.expected)
		}
	}
}

func TestNewAnalyzeModel(t *testing.T) {
	m := NewAnalyzeModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())

	if !m.IsInputMode() {
		t.Error("expected the notes input to be focused")
	}
	if m.input.Placeholder != Placeholder {
		t.Errorf("unexpected placeholder %q", m.input.Placeholder)
	}
	if m.Report() != nil {
		t.Error("expected no report before generating")
	}
	if m.Init() == nil {
		t.Error("expected Init to start the cursor blink")
	}
}

func TestAnalyzeModel_View_Initial(t *testing.T) {
	m := NewAnalyzeModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Time Tracker Analysis") {
		t.Error("expected title in view")
	}
	if !strings.Contains(view, "ctrl+g") {
		t.Error("expected generate hint in view")
	}
}

func TestAnalyzeModel_Generate(t *testing.T) {
	m := NewAnalyzeModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(120, 40)
	m.SetNotes(sampleNotes)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if cmd == nil {
		t.Fatal("expected a generate command")
	}
	if !strings.Contains(m.View(), "Analyzing...") {
		t.Error("expected running indicator while the analysis is in flight")
	}

	msg, ok := cmd().(ui.AnalysisDoneMsg)
	if !ok {
		t.Fatalf("expected AnalysisDoneMsg, got %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("unexpected error: %v", msg.Err)
	}

	m, _ = m.Update(msg)
	if m.Report() == nil || m.Report().TotalMinutes != 75 {
		t.Fatalf("expected a 75 minute report, got %+v", m.Report())
	}

	view := m.View()
	for _, expected := range []string{
		"1h 15m across 2 entries",
		"Meetings & Calls",
		"Research & Documentation",
		"0.5 hours (40%)",
		"0.8 hours (60%)",
		"Summary",
	} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q", expected)
		}
	}
}

func TestAnalyzeModel_Generate_NoEntries(t *testing.T) {
	m := NewAnalyzeModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(120, 40)

	// A successful run first, so the failure has something to clear
	m, _ = m.Update(ui.AnalysisDoneMsg{Report: analyze(t, sampleNotes)})

	m.SetNotes("no markers here")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	msg := cmd().(ui.AnalysisDoneMsg)
	if !analyzer.IsKind(msg.Err, analyzer.KindNoEntriesFound) {
		t.Fatalf("expected NO_ENTRIES_FOUND, got %v", msg.Err)
	}

	m, _ = m.Update(msg)
	if m.Report() != nil {
		t.Error("expected the previous report to be cleared")
	}

	view := m.View()
	if !strings.Contains(view, "No valid time entries found") {
		t.Errorf("expected error message in view, got:\n%s", view)
	}
	if strings.Contains(view, "0.5 hours (40%)") {
		t.Error("expected chart to be cleared after a failure")
	}
}

func TestAnalyzeModel_ProcessingErrorShowsGenericMessage(t *testing.T) {
	m := NewAnalyzeModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(ui.AnalysisDoneMsg{Err: analyzer.NewProcessing(errors.New("boom"))})

	view := m.View()
	if !strings.Contains(view, "Error processing time data. Please check the format.") {
		t.Errorf("expected processing message, got:\n%s", view)
	}
	if strings.Contains(view, "boom") {
		t.Error("internal cause should not be shown")
	}
}

func TestAnalyzeModel_Clear(t *testing.T) {
	m := NewAnalyzeModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetNotes(sampleNotes)
	m, _ = m.Update(ui.AnalysisDoneMsg{Report: analyze(t, sampleNotes)})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	if m.Notes() != "" {
		t.Errorf("expected notes cleared, got %q", m.Notes())
	}
	if m.Report() != nil {
		t.Error("expected report cleared")
	}
}

func TestAnalyzeModel_Typing(t *testing.T) {
	m := NewAnalyzeModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())

	for _, r := range "[5 mins] q" {
		m, _ = m.Update(keyRune(r))
	}

	if m.Notes() != "[5 mins] q" {
		t.Errorf("expected typed text, got %q", m.Notes())
	}
}

func TestAnalyzeModel_BlurAndRefocus(t *testing.T) {
	m := NewAnalyzeModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsInputMode() {
		t.Fatal("expected esc to blur the input")
	}

	// Keys are ignored while blurred
	m, _ = m.Update(keyRune('x'))
	if m.Notes() != "" {
		t.Errorf("expected no text while blurred, got %q", m.Notes())
	}

	m, _ = m.Update(keyRune('i'))
	if !m.IsInputMode() {
		t.Error("expected i to refocus the input")
	}
}

func TestAnalyzeModel_GenerateWhileBlurred(t *testing.T) {
	m := NewAnalyzeModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetNotes(sampleNotes)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if cmd == nil {
		t.Fatal("expected ctrl+g to generate while blurred")
	}
	if msg := cmd().(ui.AnalysisDoneMsg); msg.Err != nil {
		t.Errorf("unexpected error: %v", msg.Err)
	}
}

func TestAnalyzeModel_ThemeChanged(t *testing.T) {
	m := NewAnalyzeModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetNotes(sampleNotes)

	m, cmd := m.Update(ui.ThemeChangedMsg{ThemeName: "nord", Styles: ui.NewThemeProvider("nord").Styles()})

	if cmd != nil {
		t.Error("expected no command for a theme change")
	}
	if m.Notes() != sampleNotes {
		t.Error("theme change should not touch the notes")
	}
	if !strings.Contains(m.View(), "Time Tracker Analysis") {
		t.Error("expected view to render with the new styles")
	}
}

func TestNewEntriesModel(t *testing.T) {
	m := NewEntriesModel(ui.DefaultStyles(), ui.DefaultKeyMap())

	if m.Init() != nil {
		t.Error("expected no init command")
	}
	if !strings.Contains(m.View(), "No entries yet") {
		t.Error("expected empty state message")
	}
}

func TestEntriesModel_AnalysisDone(t *testing.T) {
	m := NewEntriesModel(ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(100, 30)

	m, _ = m.Update(ui.AnalysisDoneMsg{Report: analyze(t, sampleNotes)})

	view := m.View()
	for _, expected := range []string{"2 entries, 1h 15m total", "[1]", "[2]", "Team meeting", "Research competitors", "45m"} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q, got:\n%s", expected, view)
		}
	}
}

func TestEntriesModel_FailedAnalysisClears(t *testing.T) {
	m := NewEntriesModel(ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(ui.AnalysisDoneMsg{Report: analyze(t, sampleNotes)})

	m, _ = m.Update(ui.AnalysisDoneMsg{Err: analyzer.NewNoEntriesFound()})

	if len(m.entries) != 0 {
		t.Errorf("expected entries cleared, got %d", len(m.entries))
	}
}

func TestEntriesModel_Navigation(t *testing.T) {
	m := NewEntriesModel(ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(ui.AnalysisDoneMsg{Report: analyze(t, sampleNotes)})

	m, _ = m.Update(keyRune('k'))
	if m.cursor != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", m.cursor)
	}

	m, _ = m.Update(keyRune('j'))
	if m.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("expected cursor to stay at last entry, got %d", m.cursor)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}
}

func TestEntriesModel_Scrolling(t *testing.T) {
	var lines []string
	for i := 1; i <= 5; i++ {
		lines = append(lines, fmt.Sprintf("[%d mins] task %d", i, i))
	}

	m := NewEntriesModel(ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(80, 6) // two visible rows
	m, _ = m.Update(ui.AnalysisDoneMsg{Report: analyze(t, strings.Join(lines, "\n"))})

	for range 3 {
		m, _ = m.Update(keyRune('j'))
	}

	if m.cursor != 3 || m.offset != 2 {
		t.Fatalf("expected cursor 3 offset 2, got cursor %d offset %d", m.cursor, m.offset)
	}

	view := m.View()
	if !strings.Contains(view, "task 3") || !strings.Contains(view, "task 4") {
		t.Errorf("expected entries 3 and 4 visible, got:\n%s", view)
	}
	if strings.Contains(view, "task 1") || strings.Contains(view, "task 5") {
		t.Errorf("expected entries 1 and 5 scrolled out, got:\n%s", view)
	}
	if !strings.Contains(view, "[4]") {
		t.Error("expected absolute index numbers while scrolled")
	}
}

func TestNewConfigModel(t *testing.T) {
	services := setupTestServices(t)
	tp := ui.NewThemeProvider("")

	m := NewConfigModel(services, tp, ui.DefaultStyles(), ui.DefaultKeyMap())

	if m.themeName != ui.DefaultTheme {
		t.Errorf("expected theme %q, got %q", ui.DefaultTheme, m.themeName)
	}
	if m.themes[m.themeCursor] != ui.DefaultTheme {
		t.Errorf("expected cursor on current theme, got %q", m.themes[m.themeCursor])
	}
	if m.IsInputMode() {
		t.Error("expected selector closed initially")
	}
}

func loadedConfigModel(t *testing.T, services *service.Services) ConfigModel {
	t.Helper()
	m := NewConfigModel(services, ui.NewThemeProvider(""), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(80, 30)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected Init to load config")
	}
	msg, ok := cmd().(configLoadedMsg)
	if !ok {
		t.Fatalf("expected configLoadedMsg, got %T", cmd())
	}
	m, _ = m.Update(msg)
	return m
}

func TestConfigModel_View(t *testing.T) {
	services := setupTestServices(t)
	m := loadedConfigModel(t, services)

	view := m.View()
	for _, expected := range []string{
		"Configuration",
		services.Config.GetPath(),
		"Using defaults",
		"default_format:", "text",
		"serve_bind:", "127.0.0.1",
		"serve_port:", "8080",
		"watch_debounce:", "1s",
		"log_level:", "info",
		"theme:", "dracula",
	} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q", expected)
		}
	}
}

func TestConfigModel_UnknownThemeShowsDefault(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme = "no-such-theme"
	services := service.NewServicesWithPath(filepath.Join(t.TempDir(), "config.toml"), cfg)

	m := loadedConfigModel(t, services)
	if m.themeName != ui.DefaultTheme {
		t.Errorf("expected %q, got %q", ui.DefaultTheme, m.themeName)
	}
}

func TestConfigModel_ThemeSelector(t *testing.T) {
	m := loadedConfigModel(t, setupTestServices(t))
	start := m.themeCursor

	m, _ = m.Update(keyRune('t'))
	if !m.IsInputMode() {
		t.Fatal("expected t to open the selector")
	}
	if !strings.Contains(m.View(), "Select a theme") {
		t.Error("expected selector in view")
	}

	m, _ = m.Update(keyRune('j'))
	if m.themeCursor != start+1 {
		t.Errorf("expected cursor %d, got %d", start+1, m.themeCursor)
	}
	want := m.themes[m.themeCursor]

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.IsInputMode() {
		t.Error("expected selector closed after select")
	}
	req, ok := cmd().(ui.ThemeChangeRequestMsg)
	if !ok || req.ThemeName != want {
		t.Errorf("expected change request for %q, got %#v", want, cmd())
	}
}

func TestConfigModel_ThemeSelector_Cancel(t *testing.T) {
	m := loadedConfigModel(t, setupTestServices(t))
	start := m.themeCursor

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.IsInputMode() {
		t.Error("expected esc to close the selector")
	}
	if m.themeCursor != start {
		t.Errorf("expected cursor reset to %d, got %d", start, m.themeCursor)
	}
}

func TestConfigModel_ThemeSelector_Scrolls(t *testing.T) {
	m := loadedConfigModel(t, setupTestServices(t))
	m.themeCursor = 0
	m.themeOffset = 0

	m, _ = m.Update(keyRune('t'))
	for range maxVisibleThemes {
		m, _ = m.Update(keyRune('j'))
	}

	if m.themeOffset != 1 {
		t.Errorf("expected offset 1, got %d", m.themeOffset)
	}
	if !strings.Contains(m.View(), "more themes above") {
		t.Error("expected scroll indicator")
	}
}

func TestConfigModel_ThemeSaved(t *testing.T) {
	m := loadedConfigModel(t, setupTestServices(t))

	m, _ = m.Update(ui.ThemeSavedMsg{ThemeName: "nord"})
	if !m.exists || m.config.Theme != "nord" {
		t.Errorf("expected saved theme recorded, got exists=%v theme=%q", m.exists, m.config.Theme)
	}

	m, _ = m.Update(ui.ThemeSavedMsg{ThemeName: "nord", Err: errors.New("disk full")})
	if !strings.Contains(m.View(), "Could not save theme: disk full") {
		t.Error("expected save error in view")
	}
}

func TestConfigModel_ThemeChanged(t *testing.T) {
	m := loadedConfigModel(t, setupTestServices(t))

	m, _ = m.Update(ui.ThemeChangedMsg{ThemeName: "nord", Styles: ui.DefaultStyles()})

	if m.themeName != "nord" {
		t.Errorf("expected nord, got %q", m.themeName)
	}
	if m.themes[m.themeCursor] != "nord" {
		t.Errorf("expected cursor on nord, got %q", m.themes[m.themeCursor])
	}
}
