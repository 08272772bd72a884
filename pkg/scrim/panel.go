package scrim

import "github.com/charmbracelet/x/ansi"

// PanelView frames its inner view with a one-cell border in the theme's
// border style, with an optional title in the top edge. With
// [BordersNone] the frame stays blank but keeps its footprint, so
// switching themes never reflows the layout.
type PanelView struct {
	WrapView
	title string
}

// Panel wraps a view in a border frame.
func Panel(inner View) *PanelView {
	return &PanelView{WrapView: Wrap(inner)}
}

// WithTitle sets the text shown in the top edge and returns the panel.
func (v *PanelView) WithTitle(title string) *PanelView {
	v.title = title
	return v
}

// Title returns the panel title.
func (v *PanelView) Title() string { return v.title }

func (v *PanelView) RequiredSize(available Vec) Vec {
	frame := XY(2, 2)
	want := v.Inner().RequiredSize(available.SatSub(frame)).Add(frame)
	if v.title != "" {
		want = want.Max(XY(ansi.StringWidth(v.title)+6, 2))
	}
	return want
}

func (v *PanelView) Layout(size Vec) {
	v.Inner().Layout(size.SatSub(XY(2, 2)))
}

func (v *PanelView) OnEvent(ev Event) EventResult {
	return v.Inner().OnEvent(Relativized(ev, XY(1, 1)))
}

func (v *PanelView) Draw(p *Printer) {
	sz := p.Size()
	if sz.X >= 2 && sz.Y >= 2 {
		v.drawBorder(p, sz)
	}
	inset := p.Offset(XY(1, 1)).Shrunk(XY(1, 1))
	v.Inner().Draw(&inset)
}

func (v *PanelView) drawBorder(p *Printer, sz Vec) {
	theme := p.Theme()
	if theme.Borders == BordersNone {
		return
	}

	// An outset frame lights the top and left edges and darkens the
	// rest, for a raised look on palettes that support it.
	top, bottom := p.Plain(), p.Plain()
	if theme.Borders == BordersOutset {
		top = p.Role(RoleTertiary)
	}

	top.Print(XY(0, 0), "┌")
	top.HLine(XY(1, 0), sz.X-2, '─')
	top.Print(XY(sz.X-1, 0), "┐")
	top.VLine(XY(0, 1), sz.Y-2, '│')

	bottom.VLine(XY(sz.X-1, 1), sz.Y-2, '│')
	bottom.Print(XY(0, sz.Y-1), "└")
	bottom.HLine(XY(1, sz.Y-1), sz.X-2, '─')
	bottom.Print(XY(sz.X-1, sz.Y-1), "┘")

	if w := ansi.StringWidth(v.title); v.title != "" && sz.X > w+4 {
		x := (sz.X - w - 2) / 2
		p.Role(RoleTitlePrimary).Print(XY(x, 0), " "+v.title+" ")
	}
}
