package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/muesli/reflow/wrap"
	"github.com/prism-cli/prism/color"
	"github.com/prism-cli/prism/constant"
	"github.com/prism-cli/prism/filesystem"
	"github.com/prism-cli/prism/icon"
	"github.com/prism-cli/prism/internal/script"
	"github.com/prism-cli/prism/placeholder"
	"github.com/prism-cli/prism/style"
	"github.com/prism-cli/prism/util"
	"github.com/prism-cli/prism/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(placeholdersCmd)

	placeholdersCmd.Flags().BoolP("raw", "r", false, "Print identifiers only")
	placeholdersCmd.Flags().BoolP("json", "j", false, "Print placeholders as JSON")
	placeholdersCmd.MarkFlagsMutuallyExclusive("raw", "json")
	placeholdersCmd.SetOut(os.Stdout)
}

// placeholderInfo is a registered placeholder in --json mode.
type placeholderInfo struct {
	Identifier      string `json:"identifier"`
	Description     string `json:"description"`
	RequiresContext bool   `json:"requires_context"`
	Prefix          bool   `json:"prefix"`
}

var placeholdersCmd = &cobra.Command{
	Use:     "placeholders [filter]",
	Aliases: []string{"ph"},
	Short:   "List registered placeholders",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		all := placeholder.Shared().All()

		if len(args) == 1 {
			filter := args[0]
			all = lo.Filter(all, func(p *placeholder.Placeholder, _ int) bool {
				return fuzzy.MatchFold(filter, p.Identifier) || fuzzy.MatchFold(filter, p.Description)
			})
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("raw")):
			for _, p := range all {
				cmd.Println(p.Identifier)
			}
			return
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.Map(all, func(p *placeholder.Placeholder, _ int) placeholderInfo {
				return placeholderInfo{
					Identifier:      p.Identifier,
					Description:     p.Description,
					RequiresContext: p.RequiresContext,
					Prefix:          p.Prefix,
				}
			})))
			return
		}

		if len(all) == 0 {
			cmd.Println(style.Faint("no placeholders found"))
			return
		}

		width, _, err := util.TerminalSize()
		if err != nil || width <= 0 {
			width = 80
		}

		tag := style.Fg(color.Yellow)
		for i, p := range all {
			identifier := "%" + p.Identifier + "%"
			if p.Prefix {
				identifier = "%" + p.Identifier + "<name>%"
			}

			line := style.New().Bold(true).Foreground(style.AccentColor).Render(identifier)
			if p.RequiresContext {
				line += " " + tag("entity")
			}
			cmd.Println(line)

			if p.Description != "" {
				for _, l := range strings.Split(wrap.String(p.Description, util.Max(width-4, 20)), "\n") {
					cmd.Println("  " + style.Fg(style.Subtext)(l))
				}
			}

			if i < len(all)-1 {
				cmd.Println()
			}
		}

		cmd.Println()
		cmd.Println(style.Faint(util.Quantify(len(all), "placeholder", "placeholders")))
	},
}

func init() {
	placeholdersCmd.AddCommand(placeholdersGenCmd)

	placeholdersGenCmd.Flags().StringP("name", "n", "", "Identifier of the new placeholder")
	placeholdersGenCmd.Flags().StringP("description", "d", "", "Description shown by the placeholders command")
	placeholdersGenCmd.Flags().BoolP("requires-context", "c", false, "Resolve to an empty string when no entity is given")

	lo.Must0(placeholdersGenCmd.MarkFlagRequired("name"))
}

var placeholdersGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua placeholder script",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := scaffold{
			Name:            util.SanitizeFilename(lo.Must(cmd.Flags().GetString("name"))),
			Author:          author,
			Description:     lo.Must(cmd.Flags().GetString("description")),
			RequiresContext: lo.Must(cmd.Flags().GetBool("requires-context")),
		}

		target := filepath.Join(where.Placeholders(), s.Name+constant.PlaceholderExtension)
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		handleErr(s.render(f))
		cmd.Println(target)
	},
}

// scaffold describes a new Lua placeholder script.
type scaffold struct {
	Name            string
	Author          string
	Description     string
	RequiresContext bool
}

var scaffoldTemplate = lo.Must(template.New("placeholder").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
	"plus":   func(a, b int) int { return a + b },
	"max":    util.Max[int],
	"quote":  luaQuote,
}).Parse(constant.PlaceholderTemplate))

// ResolveFn is the name of the function every script defines.
func (scaffold) ResolveFn() string { return constant.ResolveFn }

// DescriptionGlobal is the global holding the description.
func (scaffold) DescriptionGlobal() string { return constant.DescriptionGlobal }

// RequiresContextGlobal is the global marking context-only placeholders.
func (scaffold) RequiresContextGlobal() string { return constant.RequiresContextGlobal }

func (s scaffold) render(w io.Writer) error {
	return scaffoldTemplate.Execute(w, s)
}

// luaQuote returns s as a double-quoted Lua string literal.
// Control bytes use decimal escapes, the only numeric form Lua 5.1 reads.
func luaQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\%03d`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')

	return b.String()
}

func init() {
	placeholdersCmd.AddCommand(placeholdersRemoveCmd)

	placeholdersRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Identifier of the placeholder script to remove")
	lo.Must0(placeholdersRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		scripts, err := filesystem.API().ReadDir(where.Placeholders())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(scripts, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if !strings.HasSuffix(name, constant.PlaceholderExtension) {
				return "", false
			}

			return util.FileStem(name), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

var placeholdersRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete Lua placeholder scripts",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Placeholders(), name+constant.PlaceholderExtension)
			handleErr(filesystem.API().Remove(path))
			script.Forget(path)
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	placeholdersCmd.AddCommand(placeholdersRunCmd)

	placeholdersRunCmd.Flags().StringP("entity", "e", "", "Name of the entity to resolve for")
	placeholdersRunCmd.Flags().StringArrayP("attr", "a", []string{}, "Entity attribute as key=value, may be repeated")
	placeholdersRunCmd.SetOut(os.Stdout)
}

var placeholdersRunCmd = &cobra.Command{
	Use:     "run [file]",
	Short:   "Resolve a Lua placeholder script once and print its value",
	Args:    cobra.ExactArgs(1),
	Example: "  prism placeholders run ./greeting.lua -e Steve",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := placeholder.LoadScript(args[0])
		handleErr(err)

		ctx, err := entityFromFlags(cmd)
		handleErr(err)

		r := placeholder.NewRegistry()
		handleErr(r.Register(p))
		cmd.Println(r.Resolve("%"+p.Identifier+"%", ctx))
	},
}
