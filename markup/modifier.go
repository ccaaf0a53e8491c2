package markup

import (
	"strings"

	"github.com/prism-cli/prism/code"
	"github.com/samber/lo"
)

// modifierPrefix introduces a style marker inside gradient content.
const modifierPrefix = "&"

// modifiers is the detection order of style markers inside gradient content.
var modifiers = []code.Code{code.Bold, code.Italic, code.Underline, code.Obfuscated}

func marker(c code.Code) string {
	return modifierPrefix + string(rune(c))
}

// Modifiers returns the style modifiers whose markers occur in content, in detection order.
func Modifiers(content string) []code.Code {
	return lo.Filter(modifiers, func(c code.Code, _ int) bool {
		return strings.Contains(content, marker(c))
	})
}

// StripModifiers removes every occurrence of the markers of mods from content.
func StripModifiers(content string, mods []code.Code) string {
	for _, c := range mods {
		content = strings.ReplaceAll(content, marker(c), "")
	}
	return content
}
