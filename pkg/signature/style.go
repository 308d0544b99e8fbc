package signature

import (
	"fmt"
	"strings"
)

const (
	fontSizeMin = 10
	fontSizeMax = 32
)

// ClampFontSize limits a requested pixel size to [10, 32].
func ClampFontSize(px int) int {
	return max(fontSizeMin, min(fontSizeMax, px))
}

// ToHexColor converts a packed RGBA integer (red in the high byte, alpha in
// the low byte) to "#RRGGBB". Negative inputs are read as their unsigned
// 32-bit two's-complement value; bits above 32 are ignored.
func ToHexColor(packed int64) string {
	rgb := uint32(packed) >> 8
	return fmt.Sprintf("#%06X", rgb)
}

// Style is the visual style of the signature text.
type Style struct {
	FontFamily string
	FontSizePx int
	ColorHex   string
}

// Declaration renders the style as an SVG style attribute value. Anchor and
// alignment are fixed so the coordinates name the middle of the text.
func (s Style) Declaration() string {
	decl := []string{
		fmt.Sprintf("font-size:%dpx", s.FontSizePx),
		"font-family:" + s.FontFamily,
		"fill:" + s.ColorHex,
		"text-anchor:middle",
		"text-align:center",
	}
	return strings.Join(decl, ";")
}
