package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/timesplit/internal/chart"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/entry"
	"github.com/xolan/timesplit/internal/stats"
	"github.com/xolan/timesplit/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected entry index (-1 for none)
	Start  int // Number of entries scrolled past, added to the printed index
}

// RenderEntryList renders classified entries with aligned columns
func RenderEntryList(entries []entry.Classified, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	indexWidth := len(fmt.Sprintf("[%d]", opts.Start+len(entries)))

	categoryWidth := 0
	for _, e := range entries {
		categoryWidth = max(categoryWidth, lipgloss.Width(e.Category.String()))
	}

	// Leave room for index, duration and category columns
	descWidth := opts.Width - indexWidth - categoryWidth - 14
	if descWidth < 20 {
		descWidth = 20
	}

	var b strings.Builder
	for i, e := range entries {
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		index := styles.EntryIndex.Render(fmt.Sprintf("%-*s", indexWidth, "["+strconv.Itoa(opts.Start+i+1)+"]"))
		duration := styles.EntryDuration.Render(cli.FormatDuration(e.DurationMinutes))
		desc := fmt.Sprintf("%-*s", descWidth, truncate(e.Description, descWidth))
		cat := styles.EntryCategory.Render(e.Category.String())

		b.WriteString(style.Render(fmt.Sprintf("%s %s  %s %s", index, duration, desc, cat)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderSummaryCards lays out one bordered card per category, wrapping rows to width.
func RenderSummaryCards(summaries []stats.CategorySummary, styles ui.Styles, width int) string {
	if len(summaries) == 0 {
		return ""
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, s := range summaries {
		card := styles.Card.Render(
			styles.CardTitle.Render(s.Category.String()) + "\n" +
				styles.CardText.Render(chart.SummaryText(s)),
		)
		w := lipgloss.Width(card)
		if len(row) > 0 && width > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}
		row = append(row, card)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// truncate shortens s to at most width runes, ending in an ellipsis when cut.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	return string(runes[:width-1]) + "…"
}
