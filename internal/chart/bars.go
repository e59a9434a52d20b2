package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bars renders one horizontal bar per slice, scaled so a 100% slice fills width
// cells, followed by the category name and its summary text.
func Bars(slices []Slice, width int) string {
	if len(slices) == 0 {
		return ""
	}
	if width < 1 {
		width = 1
	}

	nameWidth := 0
	for _, s := range slices {
		if w := lipgloss.Width(s.Summary.Category.String()); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for _, s := range slices {
		cells := int(s.Fraction*float64(width) + 0.5)
		// Keep non-empty categories visible
		if cells == 0 && s.Fraction > 0 {
			cells = 1
		}
		if cells > width {
			cells = width
		}

		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Color)).
			Render(strings.Repeat("█", cells))
		pad := strings.Repeat(" ", width-cells)

		fmt.Fprintf(&b, "%s%s  %-*s  %s\n", bar, pad, nameWidth, s.Summary.Category.String(), SummaryText(s.Summary))
	}
	return b.String()
}
