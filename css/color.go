package css

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Color is a normalized RGB triple. The zero value is the "no color"
// sentinel, distinct from black: callers check Valid before painting.
type Color struct {
	R, G, B uint8
	ok      bool
}

// RGB returns a valid color with the given channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, ok: true}
}

// Valid reports whether the color carries an actual value.
func (c Color) Valid() bool {
	return c.ok
}

// Hex returns the six-digit uppercase hex form, e.g. "4CAF50".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Luminance computes the relative luminance of the color in [0,1] on
// linearized channel values.
func (c Color) Luminance() float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// darkThreshold is the luminance below which a background counts as dark
// and gets contrasting light text by default.
const darkThreshold = 0.5

// Dark reports whether the color reads as a dark background.
func (c Color) Dark() bool {
	return c.Luminance() < darkThreshold
}

func linearize(ch uint8) float64 {
	v := float64(ch) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

var rgbRe = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)

// The small set of named colors the source decks use. Anything else must
// be spelled numerically.
var namedColors = map[string]Color{
	"white":  RGB(0xFF, 0xFF, 0xFF),
	"black":  RGB(0, 0, 0),
	"red":    RGB(0xFF, 0, 0),
	"green":  RGB(0, 0x80, 0),
	"blue":   RGB(0, 0, 0xFF),
	"yellow": RGB(0xFF, 0xFF, 0),
	"orange": RGB(0xFF, 0xA5, 0),
	"gray":   RGB(0x80, 0x80, 0x80),
	"grey":   RGB(0x80, 0x80, 0x80),
	"silver": RGB(0xC0, 0xC0, 0xC0),
}

// ParseColor parses a CSS color value: #rgb, #rrggbb, rgb()/rgba() (alpha
// ignored), and the named colors above. "transparent", absent or
// unparsable input all resolve to the no-color sentinel.
func ParseColor(s string) Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "transparent" {
		return Color{}
	}
	if c, ok := namedColors[s]; ok {
		return c
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		switch len(hex) {
		case 6:
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
			}
		case 3:
			if v, err := strconv.ParseUint(hex, 16, 16); err == nil {
				r, g, b := uint8(v>>8&0xF), uint8(v>>4&0xF), uint8(v&0xF)
				return RGB(r<<4|r, g<<4|g, b<<4|b)
			}
		}
		return Color{}
	}
	if m := rgbRe.FindStringSubmatch(s); m != nil {
		return RGB(clampChannel(m[1]), clampChannel(m[2]), clampChannel(m[3]))
	}
	return Color{}
}

func clampChannel(s string) uint8 {
	v, _ := strconv.Atoi(s)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// BorderColor extracts the color from a border shorthand like
// "1px solid #ccc" by scanning tokens from the right for the first value
// that parses as a color.
func BorderColor(shorthand string) Color {
	parts := strings.Fields(shorthand)
	for i := len(parts) - 1; i >= 0; i-- {
		if c := ParseColor(parts[i]); c.Valid() {
			return c
		}
	}
	return Color{}
}

// Dashed reports whether a border shorthand declares a dashed line style.
func Dashed(shorthand string) bool {
	return strings.Contains(shorthand, "dashed")
}
