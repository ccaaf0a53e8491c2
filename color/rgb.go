package color

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RGB is an immutable 24-bit color.
type RGB struct {
	R, G, B uint8
}

// FromInts validates the channels and builds an RGB color.
func FromInts(r, g, b int) (RGB, error) {
	for _, c := range [...]int{r, g, b} {
		if c < 0 || c > 255 {
			return RGB{}, fmt.Errorf("color channel %d out of range [0, 255]", c)
		}
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// FromHex parses six hex digits, optionally prefixed with '#'. Digits are case-insensitive.
func FromHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: expected 6 digits", s)
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return RGB{R: raw[0], G: raw[1], B: raw[2]}, nil
}

// MustHex is like FromHex but panics on malformed input.
func MustHex(s string) RGB {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the lowercase rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return "#" + c.Hex()
}

// Lipgloss converts the color for terminal rendering.
func (c RGB) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.String())
}
