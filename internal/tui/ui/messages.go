package ui

import "github.com/xolan/timesplit/internal/analyzer"

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// AnalysisDoneMsg carries the outcome of a generate action. Exactly one of
// Report and Err is set.
type AnalysisDoneMsg struct {
	Report *analyzer.Report
	Err    error
}

// ThemeSavedMsg reports the result of persisting the theme to the config file.
type ThemeSavedMsg struct {
	ThemeName string
	Err       error
}
