package scrim

// WrapView is the delegation base for decorator views: it owns exactly one
// inner view and forwards every capability operation to it unchanged.
// Decorators embed it and override only what they alter, which keeps them
// transparent to everything else, selector lookups included.
type WrapView struct {
	inner View
}

// Wrap builds the delegating base around an inner view.
func Wrap(inner View) WrapView { return WrapView{inner: inner} }

// Inner returns the wrapped view.
func (w *WrapView) Inner() View { return w.inner }

// SetInner swaps the wrapped view.
func (w *WrapView) SetInner(v View) { w.inner = v }

func (w *WrapView) RequiredSize(available Vec) Vec {
	return w.inner.RequiredSize(available)
}

func (w *WrapView) Layout(size Vec) {
	w.inner.Layout(size)
}

func (w *WrapView) Draw(p *Printer) {
	w.inner.Draw(p)
}

func (w *WrapView) OnEvent(ev Event) EventResult {
	return w.inner.OnEvent(ev)
}

func (w *WrapView) TakeFocus(dir Direction) bool {
	return w.inner.TakeFocus(dir)
}

func (w *WrapView) CallOnAny(sel Selector, fn func(View)) {
	w.inner.CallOnAny(sel, fn)
}

func (w *WrapView) FocusView(sel Selector) error {
	return w.inner.FocusView(sel)
}
