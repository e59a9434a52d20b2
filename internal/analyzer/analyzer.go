// Package analyzer runs the parse, classify and aggregate pipeline over pasted
// time-tracking notes. It has no I/O and no UI dependencies.
package analyzer

import (
	"fmt"

	"github.com/xolan/timesplit/internal/entry"
	"github.com/xolan/timesplit/internal/stats"
)

// Report is the result of one analysis run
type Report struct {
	Summaries    []stats.CategorySummary `json:"summaries" yaml:"summaries"`
	Entries      []entry.Classified      `json:"entries,omitempty" yaml:"entries,omitempty"`
	TotalMinutes int                     `json:"total_minutes" yaml:"total_minutes"`
	EntryCount   int                     `json:"entry_count" yaml:"entry_count"`
}

// Analyze parses text, classifies each entry and aggregates per category.
// It returns a NoEntriesFound error when no line has a duration marker and a
// Processing error for anything unexpected, including panics.
func Analyze(text string) (report *Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = NewProcessing(fmt.Errorf("panic: %v", r))
		}
	}()

	return run(text)
}

// aggregate is replaced in tests to exercise the failure path
var aggregate = stats.CalculateCategoryBreakdown

func run(text string) (*Report, error) {
	entries := entry.Parse(text)
	if len(entries) == 0 {
		return nil, NewNoEntriesFound()
	}

	classified := entry.Classify(entries)
	totals := stats.CalculateStatistics(classified)

	return &Report{
		Summaries:    aggregate(classified),
		Entries:      classified,
		TotalMinutes: totals.TotalMinutes,
		EntryCount:   totals.EntryCount,
	}, nil
}
