package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/xolan/timesplit/internal/analyzer"
	"github.com/xolan/timesplit/internal/chart"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// RenderOptions controls optional report sections
type RenderOptions struct {
	// ShowEntries adds the classified entries after the summary
	ShowEntries bool
}

// Render writes report to w in the given format.
func Render(w io.Writer, report *analyzer.Report, format Format, opts RenderOptions) error {
	if !opts.ShowEntries {
		trimmed := *report
		trimmed.Entries = nil
		report = &trimmed
	}

	switch format {
	case FormatText:
		return renderText(w, report)
	case FormatJSON:
		return renderJSON(w, report)
	case FormatYAML:
		return renderYAML(w, report)
	case FormatMarkdown:
		_, err := io.WriteString(w, RenderMarkdown(report))
		return err
	case FormatHTML:
		return renderHTML(w, report)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderText(w io.Writer, report *analyzer.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Time by category (%d %s, %s):\n",
		report.EntryCount, Pluralize("entry", report.EntryCount), FormatDuration(report.TotalMinutes))
	b.WriteString(strings.Repeat("=", 60) + "\n")

	for _, s := range report.Summaries {
		fmt.Fprintf(&b, "  %-26s  %6s h  %5s%%  (%d %s)\n",
			s.Category.String(),
			chart.FormatNumber(s.Hours),
			chart.FormatNumber(s.Percent),
			s.EntryCount,
			Pluralize("entry", s.EntryCount))
	}

	b.WriteString(strings.Repeat("-", 60) + "\n")
	fmt.Fprintf(&b, "  %-26s  %8s\n", "Total", FormatDuration(report.TotalMinutes))

	if len(report.Entries) > 0 {
		b.WriteString("\nEntries:\n")
		b.WriteString(strings.Repeat("-", 60) + "\n")
		width := len(fmt.Sprintf("%d", len(report.Entries)))
		for i, e := range report.Entries {
			fmt.Fprintf(&b, "[%*d] %6s  %s (%s)\n",
				width, i+1, FormatDuration(e.DurationMinutes), e.Description, e.Category.String())
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderJSON(w io.Writer, report *analyzer.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report)
}

func renderYAML(w io.Writer, report *analyzer.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

// RenderMarkdown renders the report as a markdown document with GFM tables.
func RenderMarkdown(report *analyzer.Report) string {
	var b strings.Builder

	b.WriteString("# Time Analysis\n\n")
	b.WriteString("| Category | Hours | Percent | Entries |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, s := range report.Summaries {
		fmt.Fprintf(&b, "| %s | %s | %s%% | %d |\n",
			escapeCell(s.Category.String()),
			chart.FormatNumber(s.Hours),
			chart.FormatNumber(s.Percent),
			s.EntryCount)
	}

	fmt.Fprintf(&b, "\n**Total:** %s across %d %s\n",
		FormatDuration(report.TotalMinutes), report.EntryCount, Pluralize("entry", report.EntryCount))

	if len(report.Entries) > 0 {
		b.WriteString("\n## Entries\n\n")
		b.WriteString("| # | Minutes | Description | Category |\n")
		b.WriteString("|---:|---:|---|---|\n")
		for i, e := range report.Entries {
			fmt.Fprintf(&b, "| %d | %d | %s | %s |\n",
				i+1, e.DurationMinutes, escapeCell(e.Description), escapeCell(e.Category.String()))
		}
	}

	return b.String()
}

// escapeCell keeps pipes and markdown emphasis in free text from breaking the table.
func escapeCell(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "|", `\|`, "*", `\*`, "_", `\_`, "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// MarkdownToHTML converts markdown to an HTML fragment. Raw HTML in the
// input is not passed through.
func MarkdownToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; color: #222; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ddd; padding: 0.3rem 0.6rem; }
.pie text { font-size: 12px; }
</style>
</head>
<body>
`

// renderHTML writes a standalone page with the pie chart followed by the
// markdown report converted to HTML.
func renderHTML(w io.Writer, report *analyzer.Report) error {
	body, err := MarkdownToHTML(RenderMarkdown(report))
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, htmlHead, html.EscapeString("Time Analysis"))
	b.WriteString(chart.SVG(chart.Layout(report.Summaries), chart.DefaultSVGOptions()))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("</body>\n</html>\n")

	_, err = io.WriteString(w, b.String())
	return err
}
