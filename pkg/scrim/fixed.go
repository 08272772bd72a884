package scrim

// FixedSizeView pins its inner view to an exact size regardless of the
// space offered, clipping the drawing window to match. Handy for dialogs
// that should not grow with their content and for tests that need stable
// layer footprints.
type FixedSizeView struct {
	WrapView
	size Vec
}

// FixedSize wraps a view at an exact size.
func FixedSize(size Vec, inner View) *FixedSizeView {
	return &FixedSizeView{WrapView: Wrap(inner), size: size}
}

// SetSize changes the pinned size.
func (v *FixedSizeView) SetSize(size Vec) { v.size = size }

func (v *FixedSizeView) RequiredSize(Vec) Vec { return v.size }

func (v *FixedSizeView) Layout(Vec) {
	v.Inner().Layout(v.size)
}

func (v *FixedSizeView) Draw(p *Printer) {
	clipped := p.Cropped(v.size)
	v.Inner().Draw(&clipped)
}
