package wheel

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// HSVToRGB maps h ∈ [0, 360), s, v ∈ [0,1] to an opaque RGBA color.
// h outside of [0, 360) is wrapped.
func HSVToRGB(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
		A: 255,
	}
}

// channel scales v ∈ [0,1] to a byte, truncating.
func channel(v float64) uint8 {
	v *= 255
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}

	return uint8(v)
}

// HSVToHex converts HSV to "#RRGGBB" (upper case).
func HSVToHex(h, s, v float64) string {
	return Hex(HSVToRGB(h, s, v))
}

// Hex formats c as "#RRGGBB". Alpha is ignored.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses "#RRGGBB" (case insensitive) into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	val, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidHex, s, err)
	}

	return color.RGBA{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
		A: 255,
	}, nil
}
