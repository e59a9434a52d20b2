package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/xolan/timesplit/internal/analyzer"
	"github.com/xolan/timesplit/internal/cli"
)

// AnalyzeOptions are the flags of the root command
type AnalyzeOptions struct {
	Inputs      []string
	Format      string
	ShowEntries bool
}

// Analyze reads the inputs, analyzes them and prints the report.
func Analyze(ctx context.Context, deps *cli.Deps, opts AnalyzeOptions) {
	formatName := opts.Format
	if formatName == "" {
		formatName = deps.Config.DefaultFormat
	}
	format, err := cli.ParseFormat(formatName)
	if err != nil {
		fail(deps, fmt.Sprintf("Invalid format '%s'", formatName), nil, "Use one of: text, json, yaml, markdown, html")
		return
	}

	text, err := deps.Services.Analysis.ReadInputs(ctx, opts.Inputs, deps.Stdin)
	if err != nil {
		fail(deps, "Failed to read input", err, "Check that each file exists and is readable, or pipe notes on stdin")
		return
	}

	report, err := deps.Services.Analysis.Analyze(text)
	if err != nil {
		reportAnalysisError(deps, err)
		return
	}

	if err := cli.Render(deps.Stdout, report, format, cli.RenderOptions{ShowEntries: opts.ShowEntries}); err != nil {
		fail(deps, "Failed to write output", err, "")
		return
	}
}

// reportAnalysisError prints the user-facing analysis message.
func reportAnalysisError(deps *cli.Deps, err error) {
	if analyzer.IsKind(err, analyzer.KindNoEntriesFound) {
		fail(deps, analyzer.UserMessage(err), nil, "Example line: [30 mins] Team standup")
		return
	}

	// Keep the underlying cause for bug reports
	var details error
	var aErr *analyzer.Error
	if errors.As(err, &aErr) {
		details = aErr.Err
	}
	fail(deps, analyzer.UserMessage(err), details, "")
}
