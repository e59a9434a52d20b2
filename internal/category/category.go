// Package category sorts task descriptions into a fixed set of labels
// using ordered keyword rules.
package category

import (
	"fmt"
	"strings"
)

// Label identifies one of the fixed task categories
type Label int

const (
	MeetingsAndCalls Label = iota
	ResearchAndDocumentation
	PlanningAndStrategy
	DevelopmentAndTesting
	CommunicationAndTasks
	Other
)

var labelNames = []string{
	"Meetings & Calls",
	"Research & Documentation",
	"Planning & Strategy",
	"Development & Testing",
	"Communication & Tasks",
	"Other",
}

// Labels returns every label in priority order, Other last.
func Labels() []Label {
	return []Label{
		MeetingsAndCalls,
		ResearchAndDocumentation,
		PlanningAndStrategy,
		DevelopmentAndTesting,
		CommunicationAndTasks,
		Other,
	}
}

// String returns the display name of the label
func (l Label) String() string {
	if l < 0 || int(l) >= len(labelNames) {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return labelNames[l]
}

// MarshalText encodes the label as its display name.
func (l Label) MarshalText() ([]byte, error) {
	if l < 0 || int(l) >= len(labelNames) {
		return nil, fmt.Errorf("unknown category label %d", int(l))
	}
	return []byte(labelNames[l]), nil
}

// UnmarshalText decodes a display name back into a label.
func (l *Label) UnmarshalText(text []byte) error {
	for i, name := range labelNames {
		if strings.EqualFold(name, string(text)) {
			*l = Label(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", text)
}

// Rule assigns Label to any description containing one of Keywords
type Rule struct {
	Label    Label
	Keywords []string
}

// Matches reports whether the lower-cased description contains any keyword.
func (r Rule) Matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// rules is evaluated top to bottom; the first match wins.
var rules = []Rule{
	{MeetingsAndCalls, []string{"call", "sync", "meeting", "standup"}},
	{ResearchAndDocumentation, []string{"research", "documentation", "write", "draft"}},
	{PlanningAndStrategy, []string{"plan", "strategy", "prep"}},
	{DevelopmentAndTesting, []string{"test", "develop", "code"}},
	{CommunicationAndTasks, []string{"message", "response", "coordination"}},
}

// Rules returns a copy of the keyword rules in priority order.
// Other has no rule; it is the fallback.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Label: r.Label, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Classify returns the label for a task description.
// Matching is case-insensitive substring containment; Other when nothing matches.
func Classify(description string) Label {
	lowered := strings.ToLower(description)
	for _, r := range rules {
		if r.Matches(lowered) {
			return r.Label
		}
	}
	return Other
}
