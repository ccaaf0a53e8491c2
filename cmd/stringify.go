package cmd

import (
	"os"

	"github.com/prism-cli/prism/stringify"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stringifyCmd)
	stringifyCmd.SetOut(os.Stdout)
}

var stringifyCmd = &cobra.Command{
	Use:   "stringify [values...]",
	Short: "Format values the way placeholders display them",
	Long: `Format each argument as a placeholder value would be displayed.
Integers print as plain decimals, floats with two locale-aware decimals,
and comma separated arguments as lists.`,
	Example: "  prism stringify 42 3.14159 1,2.5,three --locale de",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		formatter := stringify.Default()
		for _, arg := range args {
			cmd.Println(formatter.String(stringify.Of(parseLiteral(arg))))
		}
	},
}
