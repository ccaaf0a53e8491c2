package color

import "unicode"

// legacy maps the sixteen host palette codes to their RGB values.
var legacy = map[rune]RGB{
	'0': {0x00, 0x00, 0x00},
	'1': {0x00, 0x00, 0xAA},
	'2': {0x00, 0xAA, 0x00},
	'3': {0x00, 0xAA, 0xAA},
	'4': {0xAA, 0x00, 0x00},
	'5': {0xAA, 0x00, 0xAA},
	'6': {0xFF, 0xAA, 0x00},
	'7': {0xAA, 0xAA, 0xAA},
	'8': {0x55, 0x55, 0x55},
	'9': {0x55, 0x55, 0xFF},
	'a': {0x55, 0xFF, 0x55},
	'b': {0x55, 0xFF, 0xFF},
	'c': {0xFF, 0x55, 0x55},
	'd': {0xFF, 0x55, 0xFF},
	'e': {0xFF, 0xFF, 0x55},
	'f': {0xFF, 0xFF, 0xFF},
}

// Legacy returns the palette color for a single-character code such as 'c' or 'A'.
func Legacy(code rune) (RGB, bool) {
	c, ok := legacy[unicode.ToLower(code)]
	return c, ok
}
