// Package code defines the host's marker-prefixed escape sequences and translates alternate color codes into them.
package code

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/prism-cli/prism/color"
)

// Char is the marker character that starts every escape sequence.
const Char = '§'

// Code is a single-character style or color code following Char.
type Code rune

// Style modifiers.
const (
	Obfuscated    Code = 'k'
	Bold          Code = 'l'
	Strikethrough Code = 'm'
	Underline     Code = 'n'
	Italic        Code = 'o'
	Reset         Code = 'r'

	// Hex announces that six digit escapes follow.
	Hex Code = 'x'
)

// codes lists every character accepted after a prefix by Translate.
const codes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"

// Escape returns the escape sequence for c.
func Escape(c Code) string {
	return string(Char) + string(rune(c))
}

// String implements fmt.Stringer.
func (c Code) String() string {
	return Escape(c)
}

// IsModifier reports whether c is a style modifier rather than a color.
func (c Code) IsModifier() bool {
	switch c {
	case Obfuscated, Bold, Strikethrough, Underline, Italic:
		return true
	default:
		return false
	}
}

// Color returns the extended color escape for rgb: the hex announcement followed by one escape per digit.
func Color(rgb color.RGB) string {
	return Digits(rgb.Hex())
}

// Digits builds an extended color escape from six hex digits, keeping their case.
func Digits(digits string) string {
	var b strings.Builder
	b.Grow(len(digits)*3 + 3)

	b.WriteString(Escape(Hex))
	for _, d := range digits {
		b.WriteRune(Char)
		b.WriteRune(d)
	}

	return b.String()
}

// Translate replaces prefix followed by a known code character with Char and the lowercased code.
// Unknown codes are left untouched, and so are bytes that are not valid UTF-8.
func Translate(prefix rune, text string) string {
	if !strings.ContainsRune(text, prefix) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == prefix && r != utf8.RuneError {
			next, nextSize := utf8.DecodeRuneInString(text[i+size:])
			if nextSize > 0 && next != utf8.RuneError && strings.ContainsRune(codes, next) {
				b.WriteRune(Char)
				b.WriteRune(unicode.ToLower(next))
				i += size + nextSize
				continue
			}
		}

		b.WriteString(text[i : i+size])
		i += size
	}

	return b.String()
}

// Strip removes every escape sequence, leaving only visible text.
func Strip(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	skip := false
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case skip:
			skip = false
		case r == Char:
			skip = true
		default:
			b.WriteString(text[i : i+size])
		}
		i += size
	}

	return b.String()
}
