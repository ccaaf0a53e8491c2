// Package render previews decorated text in a terminal.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/prism-cli/prism/code"
	"github.com/prism-cli/prism/color"
)

// Style is the host formatting state in effect for a run of text.
type Style struct {
	Color   color.RGB
	Colored bool

	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Obfuscated    bool
}

// Segment is a run of visible text sharing one style.
type Segment struct {
	Text  string
	Style Style
}

// Parse splits escaped text into styled segments. A color code clears every
// modifier and a reset code clears everything. Unknown codes are dropped.
func Parse(s string) []Segment {
	var (
		segments []Segment
		current  Style
		text     strings.Builder
	)

	flush := func() {
		if text.Len() == 0 {
			return
		}

		if n := len(segments); n > 0 && segments[n-1].Style == current {
			segments[n-1].Text += text.String()
		} else {
			segments = append(segments, Segment{Text: text.String(), Style: current})
		}
		text.Reset()
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != code.Char {
			text.WriteRune(runes[i])
			continue
		}

		if i+1 >= len(runes) {
			break
		}

		flush()
		i++
		c := unicode.ToLower(runes[i])

		if rgb, ok := color.Legacy(c); ok {
			current = Style{Color: rgb, Colored: true}
			continue
		}

		switch code.Code(c) {
		case code.Hex:
			if rgb, ok := hexAt(runes, i+1); ok {
				current = Style{Color: rgb, Colored: true}
				i += 12
			}
		case code.Reset:
			current = Style{}
		case code.Bold:
			current.Bold = true
		case code.Italic:
			current.Italic = true
		case code.Underline:
			current.Underline = true
		case code.Strikethrough:
			current.Strikethrough = true
		case code.Obfuscated:
			current.Obfuscated = true
		}
	}
	flush()

	return segments
}

// hexAt reads six escaped digits starting at runes[i].
func hexAt(runes []rune, i int) (color.RGB, bool) {
	if i+12 > len(runes) {
		return color.RGB{}, false
	}

	var digits strings.Builder
	for j := i; j < i+12; j += 2 {
		if runes[j] != code.Char {
			return color.RGB{}, false
		}
		digits.WriteRune(runes[j+1])
	}

	rgb, err := color.FromHex(digits.String())
	return rgb, err == nil
}

// Lipgloss converts s to the closest terminal style.
// Obfuscated text has no terminal equivalent and blinks instead.
func (s Style) Lipgloss() lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		Strikethrough(s.Strikethrough).
		Blink(s.Obfuscated)

	if s.Colored {
		style = style.Foreground(s.Color.Lipgloss())
	}

	return style
}

// ANSI renders escaped text for the current terminal.
func ANSI(s string) string {
	var b strings.Builder
	for _, segment := range Parse(s) {
		b.WriteString(segment.Style.Lipgloss().Render(segment.Text))
	}
	return b.String()
}

// Visible returns the text a player would read, without any escapes.
func Visible(s string) string {
	return code.Strip(s)
}
