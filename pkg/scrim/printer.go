package scrim

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Printer is a clipped, positioned drawing surface handed to views. It is
// a small value: containers derive child printers with [Printer.Offset]
// and [Printer.Cropped] without touching the parent's copy.
type Printer struct {
	backend Backend
	theme   *Theme

	offset Vec // absolute top-left of the window on the screen
	size   Vec // clip window size

	focused bool
	enabled bool

	color   ColorPair
	effects Effect
}

// NewPrinter builds a printer covering a whole surface of the given size.
func NewPrinter(backend Backend, theme *Theme, size Vec) Printer {
	return Printer{
		backend: backend,
		theme:   theme,
		size:    size,
		focused: true,
		enabled: true,
		color: ColorPair{
			Front: theme.Palette[RolePrimary],
			Back:  theme.Palette[RoleView],
		},
	}
}

// Size returns the drawable window size.
func (p Printer) Size() Vec { return p.size }

// ScreenOffset returns the window's absolute top-left on the screen.
func (p Printer) ScreenOffset() Vec { return p.offset }

// IsFocused reports whether the surface belongs to the focused path.
func (p Printer) IsFocused() bool { return p.focused }

// IsEnabled reports whether the surface draws in the enabled style.
func (p Printer) IsEnabled() bool { return p.enabled }

// Theme returns the active theme.
func (p Printer) Theme() *Theme { return p.theme }

// ── Derived printers ────────────────────────────────────────────────────────

// Offset shifts the window origin by v and shrinks the window to match.
func (p Printer) Offset(v Vec) Printer {
	p.offset = p.offset.Add(v)
	p.size = p.size.SatSub(v)
	return p
}

// Cropped limits the window to the given size.
func (p Printer) Cropped(size Vec) Printer {
	p.size = p.size.Min(size)
	return p
}

// Shrunk trims the window size by the given amount.
func (p Printer) Shrunk(by Vec) Printer {
	p.size = p.size.SatSub(by)
	return p
}

// Focused marks the surface as (not) belonging to the focused path.
func (p Printer) Focused(focused bool) Printer {
	p.focused = focused
	return p
}

// Disabled switches the surface to the inactive rendering style.
func (p Printer) Disabled() Printer {
	p.enabled = false
	return p
}

// Styled sets an explicit color pair.
func (p Printer) Styled(pair ColorPair) Printer {
	p.color = pair
	return p
}

// Effects adds text effects to subsequent drawing.
func (p Printer) Effects(e Effect) Printer {
	p.effects |= e
	return p
}

// Plain styles text as regular view content: primary on the view
// background, dropping to secondary when the surface is disabled.
func (p Printer) Plain() Printer {
	front := RolePrimary
	if !p.enabled {
		front = RoleSecondary
	}
	p.color = ColorPair{
		Front: p.theme.Palette[front],
		Back:  p.theme.Palette[RoleView],
	}
	return p
}

// Highlighted styles text as the current selection: highlight-text on the
// highlight background, dimmed to the inactive highlight when the surface
// is unfocused or disabled.
func (p Printer) Highlighted() Printer {
	back := RoleHighlight
	if !p.focused || !p.enabled {
		back = RoleHighlightInactive
	}
	p.color = ColorPair{
		Front: p.theme.Palette[RoleHighlightText],
		Back:  p.theme.Palette[back],
	}
	return p
}

// Role styles subsequent drawing with the given palette role over the
// view background.
func (p Printer) Role(front PaletteRole) Printer {
	p.color = ColorPair{
		Front: p.theme.Palette[front],
		Back:  p.theme.Palette[RoleView],
	}
	return p
}

// ── Drawing ─────────────────────────────────────────────────────────────────

// Print writes text at pos in window coordinates, clipped to the window.
func (p Printer) Print(pos Vec, text string) {
	if pos.Y < 0 || pos.Y >= p.size.Y {
		return
	}

	// Trim anything left of the window, then anything past its right
	// edge, advancing by display width so wide runes stay intact.
	var out strings.Builder
	x := pos.X
	startX := -1
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x < 0 {
			x += w
			continue
		}
		if x+w > p.size.X {
			break
		}
		if startX < 0 {
			startX = x
		}
		out.WriteRune(r)
		x += w
	}
	if startX < 0 {
		return
	}

	p.apply()
	p.backend.Print(p.offset.Add(XY(startX, pos.Y)), out.String())
	p.unapply()
}

// HLine draws len copies of r to the right of pos.
func (p Printer) HLine(pos Vec, length int, r rune) {
	p.Print(pos, strings.Repeat(string(r), max(0, length)))
}

// VLine draws len copies of r downward from pos.
func (p Printer) VLine(pos Vec, length int, r rune) {
	for i := 0; i < length; i++ {
		p.Print(pos.Add(XY(0, i)), string(r))
	}
}

// FillRect floods a rectangle in window coordinates with r.
func (p Printer) FillRect(topLeft, size Vec, r rune) {
	line := strings.Repeat(string(r), max(0, size.X))
	for y := 0; y < size.Y; y++ {
		p.Print(topLeft.Add(XY(0, y)), line)
	}
}

func (p Printer) apply() {
	p.backend.SetColor(p.color)
	if p.effects != 0 {
		p.backend.SetEffect(p.effects)
	}
}

func (p Printer) unapply() {
	if p.effects != 0 {
		p.backend.UnsetEffect(p.effects)
	}
}
