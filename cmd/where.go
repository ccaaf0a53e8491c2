package cmd

import (
	"io"
	"os"

	"github.com/prism-cli/prism/color"
	"github.com/prism-cli/prism/style"
	"github.com/prism-cli/prism/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a directory prism reads from or writes to.
type location struct {
	title, flag, short string
	path               func() string
}

var locations = []location{
	{"Config", "config", "c", where.Config},
	{"Placeholders", "placeholders", "p", where.Placeholders},
	{"Logs", "logs", "l", where.Logs},
}

// listLocations writes every location as a titled block.
func listLocations(w io.Writer, locs []location) {
	title := style.New().Bold(true).Foreground(color.HiPurple).Render

	for i, loc := range locs {
		if i > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = io.WriteString(w, title(loc.title)+" "+style.Faint("--"+loc.flag)+"\n"+loc.path()+"\n")
	}
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, loc := range locations {
		whereCmd.Flags().BoolP(loc.flag, loc.short, false, "Print only the "+loc.title+" directory")
	}
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the directories prism reads from and writes to",
	Run: func(cmd *cobra.Command, args []string) {
		selected, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		})

		if ok {
			cmd.Println(selected.path())
			return
		}

		listLocations(cmd.OutOrStdout(), locations)
	},
}
