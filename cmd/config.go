package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for timesplit.

Shows the configuration file location, whether it exists, and all current settings.
Values come from the config file merged over the defaults, then from a .env file
in the working directory and TIMESPLIT_* environment variables.

By default, timesplit works without any configuration file. All settings have defaults:
  - default_format: text
  - theme: dracula
  - serve_bind: 127.0.0.1
  - serve_port: 8080
  - watch_debounce: 1s
  - log_level: info

Environment overrides:
  TIMESPLIT_FORMAT, TIMESPLIT_THEME, TIMESPLIT_BIND, TIMESPLIT_PORT, TIMESPLIT_LOG_LEVEL

Configuration file location:
  ~/.config/timesplit/config.toml          Linux
  ~/Library/Application Support/timesplit  macOS
  %APPDATA%\timesplit\config.toml          Windows`,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(cli.GetDeps())
	},
}

// configInitCmd writes a commented sample config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Long:  `Write a commented config.toml with every setting and its default. Fails if the file already exists.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(cli.GetDeps())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
