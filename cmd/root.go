// Package cmd implements the command-line interface for prism.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/prism-cli/prism/color"
	"github.com/prism-cli/prism/constant"
	"github.com/prism-cli/prism/icon"
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/log"
	"github.com/prism-cli/prism/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const tagline = "Gradients, hex colors and placeholders for game chat text"

// override is a persistent flag that shadows a config key for one invocation.
type override struct {
	flag, short, key, usage string
	choices                 func() []string
}

var overrides = []override{
	{"icons", "I", key.IconsVariant, "Icon variant for this run", icon.AvailableVariants},
	{"host-version", "", key.HostVersion, "Version of the host that will display the output", nil},
	{"locale", "L", key.FormatLocale, "Locale used to format numbers", nil},
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	flags := rootCmd.PersistentFlags()
	for _, o := range overrides {
		flags.StringP(o.flag, o.short, "", o.usage)
		lo.Must0(viper.BindPFlag(o.key, flags.Lookup(o.flag)))

		if o.choices == nil {
			continue
		}

		choices := o.choices
		lo.Must0(rootCmd.RegisterFlagCompletionFunc(o.flag, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return choices(), cobra.ShellCompDirectiveNoFileComp
		}))
	}
}

var rootCmd = &cobra.Command{
	Use:   constant.Prism,
	Short: tagline,
	Long:  constant.AsciiArtLogo + "\n" + style.New().Italic(true).Foreground(color.HiPurple).Render("    - "+tagline),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// handleErr logs err, prints it to stderr and exits.
func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintln(os.Stderr, icon.Get(icon.Fail), strings.TrimSpace(err.Error()))
	os.Exit(1)
}
