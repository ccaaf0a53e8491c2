package markup

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/prism-cli/prism/code"
	"github.com/prism-cli/prism/color"
)

// gradientPattern matches <GRADIENT:start>content</GRADIENT:end>. The two hex groups are independent.
var gradientPattern = regexp.MustCompile(`<GRADIENT:([0-9A-Fa-f]{6})>(.*?)</GRADIENT:([0-9A-Fa-f]{6})>`)

// Gradients replaces every gradient directive in s with its per-character colored expansion.
// Directives are rewritten by match position; text outside them is copied unchanged.
func Gradients(s string) string {
	matches := gradientPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) * 4)

	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])

		start := color.MustHex(s[m[2]:m[3]])
		end := color.MustHex(s[m[6]:m[7]])
		b.WriteString(Gradient(s[m[4]:m[5]], start, end))

		last = m[1]
	}
	b.WriteString(s[last:])

	return b.String()
}

// Gradient colors content from start to end. Style markers found in content are
// removed from the visible text and re-applied after every color escape.
// Each character is copied as its original bytes, so invalid UTF-8 survives.
func Gradient(content string, start, end color.RGB) string {
	mods := Modifiers(content)
	chars := characters(StripModifiers(content, mods))

	var suffix strings.Builder
	for _, c := range mods {
		suffix.WriteString(code.Escape(c))
	}

	var b strings.Builder
	for i, c := range Steps(start, end, len(chars)) {
		b.WriteString(code.Color(c))
		b.WriteString(suffix.String())
		b.WriteString(chars[i])
	}

	return b.String()
}

// characters splits s into one byte slice per rune. An invalid byte counts as one character.
func characters(s string) []string {
	chars := make([]string, 0, len(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		chars = append(chars, s[i:i+size])
		i += size
	}
	return chars
}
