package scrim

// TrackView records where its inner view was last drawn on the screen,
// for external queries such as mapping a mouse position back onto a view
// or anchoring a popup under it. Everything else passes through.
type TrackView struct {
	WrapView
	offset Vec
}

// Tracked wraps a view so its draw position can be queried later.
func Tracked(inner View) *TrackView {
	return &TrackView{WrapView: Wrap(inner)}
}

// Offset returns the absolute screen position of the most recent draw.
func (v *TrackView) Offset() Vec { return v.offset }

func (v *TrackView) Draw(p *Printer) {
	v.offset = p.ScreenOffset()
	v.Inner().Draw(p)
}
