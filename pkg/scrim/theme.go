package scrim

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ── Palette ─────────────────────────────────────────────────────────────────

// PaletteRole names a slot in the theme palette. Views draw in roles, not
// concrete colors, so a theme swap restyles the whole tree.
type PaletteRole uint8

const (
	RoleBackground PaletteRole = iota
	RoleShadow
	RoleView
	RolePrimary
	RoleSecondary
	RoleTertiary
	RoleTitlePrimary
	RoleTitleSecondary
	RoleHighlight
	RoleHighlightInactive
	RoleHighlightText

	paletteSize
)

var roleNames = map[string]PaletteRole{
	"background":         RoleBackground,
	"shadow":             RoleShadow,
	"view":               RoleView,
	"primary":            RolePrimary,
	"secondary":          RoleSecondary,
	"tertiary":           RoleTertiary,
	"title_primary":      RoleTitlePrimary,
	"title_secondary":    RoleTitleSecondary,
	"highlight":          RoleHighlight,
	"highlight_inactive": RoleHighlightInactive,
	"highlight_text":     RoleHighlightText,
}

// Palette assigns a color to every role.
type Palette [paletteSize]Color

// ── Theme ───────────────────────────────────────────────────────────────────

// BorderStyle selects how framed views draw their borders.
type BorderStyle uint8

const (
	BordersSimple BorderStyle = iota
	BordersOutset
	BordersNone
)

// Theme bundles the drawing configuration shared by the whole tree.
type Theme struct {
	// Shadow controls whether floating layers cast a drop shadow.
	Shadow bool
	// Borders selects the border style for framed views.
	Borders BorderStyle
	// Palette maps roles to colors.
	Palette Palette
}

// DefaultTheme returns the stock blue-background theme.
func DefaultTheme() Theme {
	var p Palette
	p[RoleBackground] = Blue
	p[RoleShadow] = Black
	p[RoleView] = White
	p[RolePrimary] = Black
	p[RoleSecondary] = Blue
	p[RoleTertiary] = White
	p[RoleTitlePrimary] = Red
	p[RoleTitleSecondary] = Yellow
	p[RoleHighlight] = Red
	p[RoleHighlightInactive] = Blue
	p[RoleHighlightText] = White
	return Theme{Shadow: true, Borders: BordersSimple, Palette: p}
}

// themeFile is the on-disk TOML shape. Absent fields keep their defaults,
// so a theme file may restyle a single role.
type themeFile struct {
	Shadow  *bool             `toml:"shadow"`
	Borders string            `toml:"borders"`
	Colors  map[string]string `toml:"colors"`
}

// LoadTheme parses TOML theme data, applying it over [DefaultTheme].
func LoadTheme(data []byte) (Theme, error) {
	theme := DefaultTheme()

	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return theme, errors.Wrap(err, "parse theme")
	}

	if file.Shadow != nil {
		theme.Shadow = *file.Shadow
	}
	switch file.Borders {
	case "":
	case "simple":
		theme.Borders = BordersSimple
	case "outset":
		theme.Borders = BordersOutset
	case "none":
		theme.Borders = BordersNone
	default:
		return theme, errors.Errorf("unknown border style %q", file.Borders)
	}

	for name, value := range file.Colors {
		role, ok := roleNames[name]
		if !ok {
			return theme, errors.Errorf("unknown palette role %q", name)
		}
		color, err := ParseColor(value)
		if err != nil {
			return theme, errors.Wrapf(err, "role %q", name)
		}
		theme.Palette[role] = color
	}

	return theme, nil
}

// LoadThemeFile reads and parses a TOML theme file.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTheme(), errors.Wrapf(err, "read theme %s", path)
	}
	theme, err := LoadTheme(data)
	if err != nil {
		return theme, errors.Wrapf(err, "load theme %s", path)
	}
	return theme, nil
}
