// Package color normalises theme color values for terminal rendering and
// implements the structured picker used by the editor.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const Fallback = "#000000"

var (
	looseHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	hex3Pattern     = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
	hex6Pattern     = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hex8Pattern     = regexp.MustCompile(`^#[0-9a-fA-F]{8}$`)
	rgbPattern      = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)
)

// a subset of the CSS named colors, enough for hand-written themes
var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"orange":  "#ffa500",
	"pink":    "#ffc0cb",
	"gold":    "#ffd700",
	"hotpink": "#ff69b4",
}

// LooksLikeHex is the loose check applied to free-text input: a '#'
// followed by 3 to 8 hex digits.
func LooksLikeHex(s string) bool {
	return looseHexPattern.MatchString(strings.TrimSpace(s))
}

// ToHex converts a color value to #rrggbb. Alpha is dropped. Values that
// cannot be resolved yield Fallback.
func ToHex(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return Fallback
	}

	switch {
	case hex6Pattern.MatchString(value):
		return parseHex(value)
	case hex3Pattern.MatchString(value):
		return parseHex(value)
	case hex8Pattern.MatchString(value):
		return parseHex(value[:7])
	}

	if m := rgbPattern.FindStringSubmatch(strings.ToLower(value)); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		return fmt.Sprintf("#%02x%02x%02x", clampByte(r), clampByte(g), clampByte(b))
	}

	if hex, ok := namedColors[strings.ToLower(value)]; ok {
		return hex
	}

	return Fallback
}

func parseHex(s string) string {
	c, err := colorful.Hex(s)
	if err != nil {
		return Fallback
	}
	return c.Clamped().Hex()
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Channel selects the HSL component the picker adjusts.
type Channel int

const (
	Hue Channel = iota
	Saturation
	Lightness
)

func (c Channel) String() string {
	switch c {
	case Hue:
		return "H"
	case Saturation:
		return "S"
	case Lightness:
		return "L"
	default:
		return "?"
	}
}

// Next cycles H -> S -> L -> H.
func (c Channel) Next() Channel {
	return (c + 1) % 3
}

// Adjust moves value along one HSL channel and returns #rrggbb. Hue steps
// are degrees and wrap; saturation and lightness steps are percentage
// points and clamp. The result is always a valid hex color.
func Adjust(value string, ch Channel, delta float64) string {
	c, err := colorful.Hex(ToHex(value))
	if err != nil {
		c = colorful.Color{}
	}

	h, s, l := c.Hsl()
	switch ch {
	case Hue:
		h = math.Mod(h+delta, 360)
		if h < 0 {
			h += 360
		}
	case Saturation:
		s = clampUnit(s + delta/100)
	case Lightness:
		l = clampUnit(l + delta/100)
	}

	return colorful.Hsl(h, s, l).Clamped().Hex()
}

// HSL reports value's hue in degrees and saturation/lightness in percent.
func HSL(value string) (h, s, l float64) {
	c, err := colorful.Hex(ToHex(value))
	if err != nil {
		return 0, 0, 0
	}
	h, s, l = c.Hsl()
	return h, s * 100, l * 100
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
