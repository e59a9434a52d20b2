package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timesplit/internal/cli"
	"github.com/xolan/timesplit/internal/cli/handlers"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and their keywords",
	Long: `List the categories in the order they are tried, with the keywords that
select each one. A task lands in the first category with a matching keyword;
anything that matches nothing is counted as Other.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListCategories(cli.GetDeps())
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
