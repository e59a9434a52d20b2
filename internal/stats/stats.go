package stats

import (
	"math"

	"github.com/xolan/timesplit/internal/category"
	"github.com/xolan/timesplit/internal/entry"
)

// Statistics contains totals for a set of classified entries
type Statistics struct {
	TotalMinutes  int
	EntryCount    int
	CategoryCount int
}

// CategorySummary contains the aggregated time for a single category.
// Percent and Hours are rounded to one decimal place independently per category,
// so percentages across a breakdown may not sum to exactly 100.
type CategorySummary struct {
	Category   category.Label `json:"category" yaml:"category"`
	Percent    float64        `json:"percent" yaml:"percent"`
	Hours      float64        `json:"hours" yaml:"hours"`
	Minutes    int            `json:"minutes" yaml:"minutes"`
	EntryCount int            `json:"entry_count" yaml:"entry_count"`
}

// CalculateStatistics computes totals for the given entries
func CalculateStatistics(entries []entry.Classified) Statistics {
	stats := Statistics{}

	seen := make(map[category.Label]bool)
	for _, e := range entries {
		stats.TotalMinutes += e.DurationMinutes
		stats.EntryCount++
		seen[e.Category] = true
	}
	stats.CategoryCount = len(seen)

	return stats
}

// CalculateCategoryBreakdown groups entries by category and returns one summary
// per category present, in the order each category is first encountered.
func CalculateCategoryBreakdown(entries []entry.Classified) []CategorySummary {
	if len(entries) == 0 {
		return []CategorySummary{}
	}

	// Group entries by category, remembering first-seen order
	var order []category.Label
	byCategory := make(map[category.Label]*CategorySummary)
	totalMinutes := 0

	for _, e := range entries {
		totalMinutes += e.DurationMinutes

		if _, exists := byCategory[e.Category]; !exists {
			byCategory[e.Category] = &CategorySummary{Category: e.Category}
			order = append(order, e.Category)
		}

		byCategory[e.Category].Minutes += e.DurationMinutes
		byCategory[e.Category].EntryCount++
	}

	breakdown := make([]CategorySummary, 0, len(order))
	for _, label := range order {
		summary := *byCategory[label]
		// All-zero input would divide by zero; report 0% instead of NaN
		if totalMinutes > 0 {
			summary.Percent = Round1(float64(summary.Minutes) / float64(totalMinutes) * 100)
		}
		summary.Hours = Round1(float64(summary.Minutes) / 60)
		breakdown = append(breakdown, summary)
	}

	return breakdown
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
