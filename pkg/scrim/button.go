package scrim

import "github.com/charmbracelet/x/ansi"

// Button is a focusable label that fires a deferred callback when
// activated with Enter or a mouse click.
type Button struct {
	BaseView
	label    string
	cb       Callback
	lastSize Vec
}

// NewButton builds a button running cb on activation.
func NewButton(label string, cb Callback) *Button {
	return &Button{label: label, cb: cb}
}

// SetLabel changes the button text.
func (b *Button) SetLabel(label string) { b.label = label }

// Label returns the button text.
func (b *Button) Label() string { return b.label }

func (b *Button) RequiredSize(Vec) Vec {
	return XY(ansi.StringWidth(b.label)+2, 1)
}

func (b *Button) Layout(size Vec) { b.lastSize = size }

func (b *Button) Draw(p *Printer) {
	styled := p.Plain()
	if p.IsFocused() && p.IsEnabled() {
		styled = p.Highlighted()
	}
	styled.Print(XY(0, 0), "<"+b.label+">")
}

func (b *Button) OnEvent(ev Event) EventResult {
	switch ev := ev.(type) {
	case KeyEvent:
		if ev.Key == KeyEnter && ev.Mod == 0 {
			return ConsumedWith(b.cb)
		}
	case CharEvent:
		if ev.Rune == ' ' && ev.Mod == 0 {
			return ConsumedWith(b.cb)
		}
	case MouseEvent:
		inside := Rect{Size: b.lastSize}.Contains(ev.LocalPos())
		if !inside {
			return Ignored()
		}
		switch {
		case ev.Action == MousePress && ev.Btn == ButtonLeft:
			return Consumed()
		case ev.Action == MouseRelease && ev.Btn == ButtonLeft:
			return ConsumedWith(b.cb)
		}
	}
	return Ignored()
}

func (b *Button) TakeFocus(Direction) bool { return true }

func (b *Button) CallOnAny(sel Selector, fn func(View)) {
	callOnMatch(b, sel, fn)
}

func (b *Button) FocusView(sel Selector) error {
	if matched, err := focusMatch(b, sel); matched {
		return err
	}
	return ErrViewNotFound
}
