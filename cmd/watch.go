package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/cli/handlers"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyze a notes file whenever it changes",
	Long: `Print the category breakdown of a notes file, then print it again every
time the file is saved. Rapid saves are coalesced using watch_debounce from
the config. Stop with Ctrl+C.

Examples:
  timesplit watch today.txt
  timesplit watch today.txt --format markdown`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		format, _ := cmd.Flags().GetString("format")
		showEntries, _ := cmd.Flags().GetBool("entries")

		d := cli.GetDeps()
		handlers.Watch(ctx, d, handlers.NewLogger(d, "watch"), handlers.WatchOptions{
			Path:        args[0],
			Format:      format,
			ShowEntries: showEntries,
		})
	},
}

func init() {
	watchCmd.Flags().StringP("format", "f", "", "Output format: text, json, yaml, markdown, html (default from config)")
	watchCmd.Flags().BoolP("entries", "e", false, "Also list each classified entry")
	_ = watchCmd.RegisterFlagCompletionFunc("format", completeFormat)
	rootCmd.AddCommand(watchCmd)
}
