package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/cli/handlers"
	"github.com/xolan/timesplit/internal/tui"
)

// runTUIFunc is replaced in tests so no terminal is needed
var runTUIFunc handlers.TUIRunner = tui.Run

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for timesplit.

Paste or type your notes, press ctrl+g and the category breakdown appears
below the input as proportional bars with a summary card per category.

Views available:
  - Analyze: Notes input, chart and summary cards
  - Entries: Every classified entry of the last run
  - Config: View configuration and pick a color theme

Keyboard shortcuts:
  - ctrl+g: Generate chart
  - ctrl+l: Clear notes and chart
  - Esc / i: Stop / resume editing the notes
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to a view (when not editing)
  - ?: Show help
  - q or ctrl+c: Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

func runTUI() {
	handlers.TUI(cli.GetDeps(), runTUIFunc)
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
