package scrim

// NamedView attaches a name to its inner view so selectors can find it
// later. Names need not be unique; lookups take the first depth-first
// match. The wrapper itself stays invisible: a matched lookup yields the
// inner view, and unrelated selectors pass straight through.
type NamedView struct {
	WrapView
	name string
}

// Named wraps a view under a lookup name.
func Named(name string, inner View) *NamedView {
	return &NamedView{WrapView: Wrap(inner), name: name}
}

// Name returns the lookup name.
func (v *NamedView) Name() string { return v.name }

func (v *NamedView) CallOnAny(sel Selector, fn func(View)) {
	if name, ok := sel.(ByName); ok && string(name) == v.name {
		fn(v.Inner())
	}
	v.Inner().CallOnAny(sel, fn)
}

func (v *NamedView) FocusView(sel Selector) error {
	if name, ok := sel.(ByName); ok && string(name) == v.name {
		if v.Inner().TakeFocus(DirNone) {
			return nil
		}
		return ErrFocusDeclined
	}
	return v.Inner().FocusView(sel)
}
