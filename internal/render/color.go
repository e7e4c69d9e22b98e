package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned for color strings that are not #rgb or #rrggbb.
var ErrBadColor = errors.New("render: bad color")

// ParseColor parses a CSS hex color. The short #rgb form is accepted.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(expandShortHex(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
	}
	return c, nil
}

// MustColor is ParseColor for constants.
func MustColor(s string) colorful.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA converts c to an opaque 8-bit color for raster backends.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func expandShortHex(s string) string {
	if len(s) != 4 || s[0] != '#' {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}
