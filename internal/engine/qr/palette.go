package qr

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
)

// Color is a foreground swatch in #RRGGBB form.
type Color string

const DefaultColor Color = "#000000"

// Palette is the fixed set of swatches offered by the color selector, in
// display order.
var Palette = []Color{
	"#000000",
	"#0EA5E9",
	"#8B5CF6",
	"#EC4899",
	"#EF4444",
}

var ErrUnknownColor = errors.New("color is not part of the palette")

// ParseColor maps user input onto a palette member. The leading '#' is
// optional and hex digits are matched case-insensitively.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrUnknownColor
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	for _, c := range Palette {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", ErrUnknownColor
}

func (c Color) String() string {
	return string(c)
}

// RGBA decodes the hex triplet. Malformed values decode as opaque black.
func (c Color) RGBA() color.RGBA {
	hex := strings.TrimPrefix(string(c), "#")
	if len(hex) != 6 {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Swatch is one palette entry as presented to the selector.
type Swatch struct {
	Color    Color `json:"color"`
	Selected bool  `json:"selected"`
}

// Swatches returns the palette with the entry equal to current marked
// selected.
func Swatches(current Color) []Swatch {
	out := make([]Swatch, 0, len(Palette))
	for _, c := range Palette {
		out = append(out, Swatch{Color: c, Selected: c == current})
	}
	return out
}
