package markup

import (
	"regexp"
	"strings"

	"github.com/prism-cli/prism/code"
)

// hexPattern matches a fixed hex color directive such as &#1A2B3C.
var hexPattern = regexp.MustCompile(`&#([A-Fa-f0-9]{6})`)

// Hex replaces every hex color directive in s with its extended color escape.
// The input is scanned once; expanded output is never matched again.
func Hex(s string) string {
	matches := hexPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(matches)*4*8)

	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		b.WriteString(code.Digits(s[m[2]:m[3]]))
		last = m[1]
	}
	b.WriteString(s[last:])

	return b.String()
}
