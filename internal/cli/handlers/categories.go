package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/timesplit/internal/category"
	"github.com/xolan/timesplit/internal/cli"
)

// ListCategories prints the keyword rules in the order they are tried.
func ListCategories(deps *cli.Deps) {
	_, _ = fmt.Fprintln(deps.Stdout, "Categories (first match wins):")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	rules := category.Rules()
	for i, r := range rules {
		_, _ = fmt.Fprintf(deps.Stdout, "%d. %-26s %s\n", i+1, r.Label.String(), strings.Join(r.Keywords, ", "))
	}
	_, _ = fmt.Fprintf(deps.Stdout, "%d. %-26s %s\n", len(rules)+1, category.Other.String(), "(anything else)")

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintln(deps.Stdout, "Keywords match anywhere in the description, ignoring case.")
}
