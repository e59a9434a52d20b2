package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/config"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for timesplit.

The completion command allows you to generate shell completion scripts for
bash, zsh, fish, and powershell. Besides commands and flags, the scripts
complete file names for the notes to analyze and the values of --format.

Usage:
  timesplit completion bash       Generate bash completion script
  timesplit completion zsh        Generate zsh completion script
  timesplit completion fish       Generate fish completion script
  timesplit completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(timesplit completion bash)

  # Install completion permanently:
  # Linux:
  timesplit completion bash > ~/.local/share/bash-completion/completions/timesplit

  # macOS (requires bash-completion from Homebrew):
  timesplit completion bash > $(brew --prefix)/etc/bash_completion.d/timesplit

Zsh:
  # Load completion temporarily (current session only):
  source <(timesplit completion zsh)

  # Install completion permanently:
  # Add to ~/.zshrc:
  echo 'fpath=(~/.zsh/completion $fpath)' >> ~/.zshrc
  echo 'autoload -Uz compinit && compinit' >> ~/.zshrc

  # Generate completion file:
  mkdir -p ~/.zsh/completion
  timesplit completion zsh > ~/.zsh/completion/_timesplit

  # Then restart your shell

Fish:
  # Install completion permanently:
  timesplit completion fish > ~/.config/fish/completions/timesplit.fish

PowerShell:
  # Open your PowerShell profile:
  notepad $PROFILE

  # Add this line to your profile:
  timesplit completion powershell | Out-String | Invoke-Expression

  # Save and restart PowerShell`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// completeFormat offers the output formats for --format
func completeFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var formats []string
	for _, f := range config.ValidFormats {
		if strings.HasPrefix(f, strings.ToLower(toComplete)) {
			formats = append(formats, f)
		}
	}
	return formats, cobra.ShellCompDirectiveNoFileComp
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	deps := cli.GetDeps()
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
		return
	}
}
