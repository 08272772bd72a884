package scrim

// Margins is blank space around a view's content, in cells.
type Margins struct {
	Left, Right, Top, Bottom int
}

// TopLeft returns the offset the content starts at.
func (m Margins) TopLeft() Vec { return XY(m.Left, m.Top) }

// BotRight returns the space reserved past the content.
func (m Margins) BotRight() Vec { return XY(m.Right, m.Bottom) }

// Size returns the total space the margins consume.
func (m Margins) Size() Vec { return XY(m.Left+m.Right, m.Top+m.Bottom) }

// PadView surrounds its inner view with margins: measurement is inflated,
// the committed size deflated, input coordinates shifted by the top-left
// margin, and drawing inset to the content window.
type PadView struct {
	WrapView
	margins Margins
}

// Padded wraps a view in margins.
func Padded(m Margins, inner View) *PadView {
	return &PadView{WrapView: Wrap(inner), margins: m}
}

// Margins returns the configured margins.
func (v *PadView) Margins() Margins { return v.margins }

func (v *PadView) RequiredSize(available Vec) Vec {
	inner := v.Inner().RequiredSize(available.SatSub(v.margins.Size()))
	return inner.Add(v.margins.Size())
}

func (v *PadView) Layout(size Vec) {
	v.Inner().Layout(size.SatSub(v.margins.Size()))
}

func (v *PadView) OnEvent(ev Event) EventResult {
	return v.Inner().OnEvent(Relativized(ev, v.margins.TopLeft()))
}

func (v *PadView) Draw(p *Printer) {
	inset := p.Offset(v.margins.TopLeft()).Shrunk(v.margins.BotRight())
	v.Inner().Draw(&inset)
}
