package cmd

import (
	"fmt"

	"github.com/prism-cli/prism/filesystem"
	"github.com/prism-cli/prism/icon"
	"github.com/prism-cli/prism/style"
	"github.com/prism-cli/prism/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is a directory whose contents the clear command can delete.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"log files", "logs", mo.Some("l"), where.Logs},
	{"placeholder scripts", "placeholders", mo.None[string](), where.Placeholders},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("delete %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete logs or placeholder scripts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			handleErr(filesystem.API().RemoveAll(target.location()))
			fmt.Printf("%s deleted %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), target.name)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
