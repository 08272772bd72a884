package scrim

// EnableView gates its inner view: while disabled it swallows no events
// but handles none either (everything comes back Ignored, so the inner
// view's state cannot change), declines focus, and draws the inner view in
// the inactive style. Measurement and layout are unaffected.
type EnableView struct {
	WrapView
	enabled bool
}

// Enableable wraps a view, starting enabled.
func Enableable(inner View) *EnableView {
	return &EnableView{WrapView: Wrap(inner), enabled: true}
}

// IsEnabled reports whether events reach the inner view.
func (v *EnableView) IsEnabled() bool { return v.enabled }

// SetEnabled switches event delivery on or off.
func (v *EnableView) SetEnabled(enabled bool) { v.enabled = enabled }

// Enable allows events through again.
func (v *EnableView) Enable() { v.enabled = true }

// Disable stops all event delivery to the inner view.
func (v *EnableView) Disable() { v.enabled = false }

func (v *EnableView) OnEvent(ev Event) EventResult {
	if !v.enabled {
		return Ignored()
	}
	return v.Inner().OnEvent(ev)
}

func (v *EnableView) TakeFocus(dir Direction) bool {
	return v.enabled && v.Inner().TakeFocus(dir)
}

func (v *EnableView) Draw(p *Printer) {
	if !v.enabled {
		dimmed := p.Disabled()
		v.Inner().Draw(&dimmed)
		return
	}
	v.Inner().Draw(p)
}

func (v *EnableView) FocusView(sel Selector) error {
	if !v.enabled {
		// The subtree exists but cannot receive focus right now.
		if _, err := findIn(v.Inner(), sel); err == nil {
			return ErrFocusDeclined
		}
		return ErrViewNotFound
	}
	return v.Inner().FocusView(sel)
}

// findIn reports whether sel matches anything below root, without moving
// focus.
func findIn(root View, sel Selector) (View, error) {
	var found View
	root.CallOnAny(sel, func(v View) {
		if found == nil {
			found = v
		}
	})
	if found == nil {
		return nil, ErrViewNotFound
	}
	return found, nil
}
