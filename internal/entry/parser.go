package entry

import (
	"regexp"
	"strconv"
	"strings"
)

// markerPattern matches a bracketed duration such as "[45 mins]" or "[3 MIN]".
// The gap also accepts Unicode spaces (no-break space from pasted documents).
// The unit is spelled out per letter so only ASCII letters match it; (?i)
// would also fold "ſ" into "s".
var markerPattern = regexp.MustCompile(`\[(\d+)[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*[mM][iI][nN][sS]?\]`)

// ParseLine extracts the duration marker and description from a single line.
// Returns false when the line carries no marker or the number does not fit in an int.
// Example: "Team standup [30 mins]" -> Entry{DurationMinutes: 30, Description: "Team standup"}
func ParseLine(line string) (Entry, bool) {
	loc := markerPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return Entry{}, false
	}

	minutes, err := strconv.Atoi(line[loc[2]:loc[3]])
	if err != nil {
		return Entry{}, false
	}

	// Only the first marker is removed
	description := line[:loc[0]] + line[loc[1]:]

	return Entry{
		DurationMinutes: minutes,
		Description:     strings.TrimSpace(description),
	}, true
}

// SplitLines splits text on line breaks and drops empty or whitespace-only lines.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Parse returns every entry found in text, in input order.
// Lines without a duration marker are skipped.
func Parse(text string) []Entry {
	var entries []Entry
	for _, line := range SplitLines(text) {
		if e, ok := ParseLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}
