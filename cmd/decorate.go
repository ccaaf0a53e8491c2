package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/prism-cli/prism/decorate"
	"github.com/prism-cli/prism/gate"
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/placeholder"
	"github.com/prism-cli/prism/render"
	"github.com/prism-cli/prism/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	renderAuto   = "auto"
	renderAlways = "always"
	renderNever  = "never"
)

// decorateOutput is a single decorated message in --json mode.
type decorateOutput struct {
	Input   string              `json:"input" jsonschema:"description=Message as given"`
	Output  string              `json:"output" jsonschema:"description=Decorated message with host escapes"`
	Visible string              `json:"visible" jsonschema:"description=Decorated message without escapes"`
	Entity  *placeholder.Entity `json:"entity,omitempty" jsonschema:"description=Entity placeholders were resolved for"`
}

func init() {
	rootCmd.AddCommand(decorateCmd)

	decorateCmd.Flags().StringP("entity", "e", "", "Name of the entity to resolve placeholders for")
	decorateCmd.Flags().StringArrayP("attr", "a", []string{}, "Entity attribute as key=value, may be repeated")
	decorateCmd.Flags().Bool("no-gradients", false, "Leave gradient directives unexpanded")
	decorateCmd.Flags().Bool("stdin", false, "Decorate every line read from standard input")
	decorateCmd.Flags().BoolP("json", "j", false, "Print the result as JSON")
	decorateCmd.Flags().Bool("visible", false, "Print only the visible text")

	decorateCmd.Flags().StringP("render", "r", "", "Preview escapes as terminal colors: auto, always or never")
	lo.Must0(decorateCmd.RegisterFlagCompletionFunc("render", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{renderAuto, renderAlways, renderNever}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.RenderMode, decorateCmd.Flags().Lookup("render")))

	decorateCmd.MarkFlagsMutuallyExclusive("json", "visible")
	decorateCmd.SetOut(os.Stdout)
}

var decorateCmd = &cobra.Command{
	Use:   "decorate [text...]",
	Short: "Expand gradients, hex colors, placeholders and legacy codes",
	Long: `Run text through the decoration pipeline and print the escaped result.

Supported markup:
  <GRADIENT:RRGGBB>text</GRADIENT:RRGGBB>   per-character color gradient
  &#RRGGBB                                 fixed hex color
  %identifier%                             placeholder
  &a, &l, ...                              legacy color and style codes`,
	Example: `  prism decorate "<GRADIENT:FF0000>Hello</GRADIENT:0000FF> &lworld"
  prism decorate -e Steve -a rank=Admin "&#FFAA00%attr_rank% %entity%"
  cat motd.txt | prism decorate --stdin --json`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pipeline := decorate.Default()
		if lo.Must(cmd.Flags().GetBool("no-gradients")) {
			pipeline.Gate = gate.Static(false)
		}

		ctx, err := entityFromFlags(cmd)
		handleErr(err)

		emit := printerFor(cmd, ctx)

		if !lo.Must(cmd.Flags().GetBool("stdin")) {
			message := strings.Join(args, " ")
			emit(message, pipeline.DecorateFor(message, ctx))
			return
		}

		handleErr(eachLine(os.Stdin, func(line string) {
			emit(line, pipeline.DecorateFor(line, ctx))
		}))
	},
}

// eachLine calls fn for every line of r. Line length is not limited.
func eachLine(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt32)

	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

func entityFromFlags(cmd *cobra.Command) (mo.Option[placeholder.Entity], error) {
	name := lo.Must(cmd.Flags().GetString("entity"))
	pairs := lo.Must(cmd.Flags().GetStringArray("attr"))

	if name == "" && len(pairs) == 0 {
		return mo.None[placeholder.Entity](), nil
	}

	attributes, err := parseAttributes(pairs)
	if err != nil {
		return mo.None[placeholder.Entity](), err
	}

	return mo.Some(placeholder.Entity{Name: name, Attributes: attributes}), nil
}

func printerFor(cmd *cobra.Command, ctx mo.Option[placeholder.Entity]) func(input, output string) {
	switch {
	case lo.Must(cmd.Flags().GetBool("json")):
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetEscapeHTML(false)

		var entity *placeholder.Entity
		if e, ok := ctx.Get(); ok {
			entity = &e
		}

		return func(input, output string) {
			handleErr(encoder.Encode(decorateOutput{
				Input:   input,
				Output:  output,
				Visible: render.Visible(output),
				Entity:  entity,
			}))
		}
	case lo.Must(cmd.Flags().GetBool("visible")):
		return func(_, output string) {
			cmd.Println(render.Visible(output))
		}
	default:
		preview := shouldRender(viper.GetString(key.RenderMode))
		return func(_, output string) {
			if preview {
				output = render.ANSI(output)
			}
			cmd.Println(output)
		}
	}
}

func shouldRender(mode string) bool {
	switch strings.ToLower(mode) {
	case renderAlways:
		return true
	case renderNever:
		return false
	case renderAuto, "":
		return util.IsTerminal()
	default:
		handleErr(fmt.Errorf("unknown render mode %q, expected %s, %s or %s", mode, renderAuto, renderAlways, renderNever))
		return false
	}
}

func init() {
	decorateCmd.AddCommand(decorateSchemaCmd)
}

var decorateSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of decorate --json output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect(&decorateOutput{})))
	},
}
