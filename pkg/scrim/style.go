package scrim

import (
	"strings"

	"github.com/pkg/errors"
)

// ── Colors ──────────────────────────────────────────────────────────────────

type colorKind uint8

const (
	colorDefault colorKind = iota
	colorBase              // one of the 8 dark base colors
	colorBaseLight
	color256
	colorRGB
)

// Color is a terminal color. The zero value is the terminal's default.
type Color struct {
	kind    colorKind
	index   uint8 // base index 0-7 or palette index 0-255
	r, g, b uint8
}

// ColorDefault leaves the cell at the terminal's configured color.
var ColorDefault = Color{}

// The eight base colors and their bright variants.
var (
	Black   = baseColor(0)
	Red     = baseColor(1)
	Green   = baseColor(2)
	Yellow  = baseColor(3)
	Blue    = baseColor(4)
	Magenta = baseColor(5)
	Cyan    = baseColor(6)
	White   = baseColor(7)

	LightBlack   = lightColor(0)
	LightRed     = lightColor(1)
	LightGreen   = lightColor(2)
	LightYellow  = lightColor(3)
	LightBlue    = lightColor(4)
	LightMagenta = lightColor(5)
	LightCyan    = lightColor(6)
	LightWhite   = lightColor(7)
)

func baseColor(i uint8) Color  { return Color{kind: colorBase, index: i} }
func lightColor(i uint8) Color { return Color{kind: colorBaseLight, index: i} }

// Color256 picks an entry from the 256-color palette.
func Color256(i uint8) Color { return Color{kind: color256, index: i} }

// RGB builds a 24-bit color.
func RGB(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool { return c.kind == colorDefault }

// ANSI maps the color onto the 256-color palette index used by both
// backends when emitting non-RGB colors. RGB colors report true in the
// second return and should be emitted as 24-bit.
func (c Color) ANSI() (index uint8, isRGB bool) {
	switch c.kind {
	case colorBase:
		return c.index, false
	case colorBaseLight:
		return c.index + 8, false
	case color256:
		return c.index, false
	case colorRGB:
		return 0, true
	default:
		return 0, false
	}
}

// RGBValues returns the components of an RGB color. Only meaningful when
// ANSI reported isRGB.
func (c Color) RGBValues() (r, g, b uint8) { return c.r, c.g, c.b }

var baseNames = map[string]uint8{
	"black": 0, "red": 1, "green": 2, "yellow": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
}

// ParseColor reads a color from its textual form: "default", a base color
// name ("red"), a prefixed variant ("light red", "dark red"), or a hex
// triplet ("#ff0000", "#f00").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "default" || s == "terminal default":
		return ColorDefault, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	}
	if name, ok := strings.CutPrefix(s, "light "); ok {
		if i, ok := baseNames[name]; ok {
			return lightColor(i), nil
		}
		return Color{}, errors.Errorf("unknown color name %q", s)
	}
	if name, ok := strings.CutPrefix(s, "dark "); ok {
		if i, ok := baseNames[name]; ok {
			return baseColor(i), nil
		}
		return Color{}, errors.Errorf("unknown color name %q", s)
	}
	if i, ok := baseNames[s]; ok {
		return baseColor(i), nil
	}
	return Color{}, errors.Errorf("unknown color name %q", s)
}

func parseHex(s string) (Color, error) {
	var digits []uint8
	for _, r := range s {
		var d uint8
		switch {
		case r >= '0' && r <= '9':
			d = uint8(r - '0')
		case r >= 'a' && r <= 'f':
			d = uint8(r-'a') + 10
		default:
			return Color{}, errors.Errorf("invalid hex color #%s", s)
		}
		digits = append(digits, d)
	}
	switch len(digits) {
	case 6:
		return RGB(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]), nil
	case 3:
		return RGB(digits[0]*17, digits[1]*17, digits[2]*17), nil
	default:
		return Color{}, errors.Errorf("invalid hex color #%s: want 3 or 6 digits", s)
	}
}

// ColorPair is a foreground and background to draw with.
type ColorPair struct {
	Front Color
	Back  Color
}

// ── Effects ─────────────────────────────────────────────────────────────────

// Effect is a bitmask of text attributes applied on top of colors.
type Effect uint8

const (
	EffectBold Effect = 1 << iota
	EffectDim
	EffectItalic
	EffectUnderline
	EffectBlink
	EffectReverse
	EffectStrikethrough
)

// Has reports whether all bits of o are set in e.
func (e Effect) Has(o Effect) bool { return e&o == o }
