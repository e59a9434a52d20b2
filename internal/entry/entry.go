package entry

import "github.com/xolan/timesplit/internal/category"

// Entry represents a single task line with its logged duration
type Entry struct {
	DurationMinutes int    `json:"duration_minutes" yaml:"duration_minutes"`
	Description     string `json:"description" yaml:"description"`
}

// Classified is an Entry tagged with the category it was sorted into
type Classified struct {
	Entry    `yaml:",inline"`
	Category category.Label `json:"category" yaml:"category"`
}

// Classify tags every entry with its category, preserving input order.
func Classify(entries []Entry) []Classified {
	classified := make([]Classified, 0, len(entries))
	for _, e := range entries {
		classified = append(classified, Classified{
			Entry:    e,
			Category: category.Classify(e.Description),
		})
	}
	return classified
}
