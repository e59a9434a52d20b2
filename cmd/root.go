package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/cli/handlers"
)

// version is reported by --version and shown in the web UI footer
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "timesplit [file...]",
	Short: "Break down time-tracking notes by category",
	Long: `timesplit reads free-form work notes, picks out every line with a
duration marker such as [30 mins], sorts each task into a category and prints
how the time was split.

Usage:
  timesplit notes.txt                    Analyze a file
  timesplit monday.txt tuesday.txt       Analyze several files as one
  pbpaste | timesplit                    Analyze notes from stdin
  timesplit - extra.txt                  Mix stdin ("-") and files
  timesplit notes.txt --format json      Machine-readable output
  timesplit notes.txt --entries          Also list every classified entry

Categories (first match wins):
  Meetings & Calls, Research & Documentation, Planning & Strategy,
  Development & Testing, Communication & Tasks, Other

Run 'timesplit categories' for the keywords behind each category.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}

		format, _ := cmd.Flags().GetString("format")
		showEntries, _ := cmd.Flags().GetBool("entries")

		handlers.Analyze(cmd.Context(), cli.GetDeps(), handlers.AnalyzeOptions{
			Inputs:      args,
			Format:      format,
			ShowEntries: showEntries,
		})
	},
}

func init() {
	rootCmd.Flags().StringP("format", "f", "", "Output format: text, json, yaml, markdown, html (default from config)")
	rootCmd.Flags().BoolP("entries", "e", false, "Also list each classified entry")
	_ = rootCmd.RegisterFlagCompletionFunc("format", completeFormat)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, commit, date string) {
	version = v
	rootCmd.Version = v
	rootCmd.SetVersionTemplate(
		"timesplit version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
