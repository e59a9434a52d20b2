package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/cli/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser UI",
	Long: `Start a small web server with a form to paste notes into. Submitting the
form draws a pie chart of the category breakdown with a summary card per
category. The same analysis is available as JSON at POST /api/analyze.

By default the server only listens on 127.0.0.1. Stop with Ctrl+C.

Examples:
  timesplit serve
  timesplit serve --port 9000
  curl -s --data-binary @notes.txt localhost:8080/api/analyze`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		bind, _ := cmd.Flags().GetString("bind")
		port, _ := cmd.Flags().GetInt("port")

		d := cli.GetDeps()
		handlers.Serve(ctx, d, handlers.NewLogger(d, "web"), handlers.ServeOptions{
			Bind:    bind,
			Port:    port,
			Version: version,
		})
	},
}

func init() {
	serveCmd.Flags().String("bind", "", "Address to listen on (default from config)")
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}
