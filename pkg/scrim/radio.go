package scrim

import "github.com/charmbracelet/x/ansi"

// RadioGroup ties any number of [RadioButton] views into a
// single-choice set. The group is a small shared handle: keep a copy
// wherever convenient and ask it for the current selection. Buttons
// made by the same group mutate the same underlying state, which is
// how sibling views coordinate without reaching into each other.
type RadioGroup[T any] struct {
	state *radioState[T]
}

type radioState[T any] struct {
	values    []T
	selection int
	onChange  func(*App, T)
}

// NewRadioGroup returns an empty group. Its first button starts
// selected.
func NewRadioGroup[T any]() *RadioGroup[T] {
	return &RadioGroup[T]{state: &radioState[T]{}}
}

// SetOnChange registers fn to run whenever the selection moves, with
// the newly selected value.
func (g *RadioGroup[T]) SetOnChange(fn func(*App, T)) {
	g.state.onChange = fn
}

// Button creates a new button bound to this group, representing value.
func (g *RadioGroup[T]) Button(value T, label string) *RadioButton[T] {
	g.state.values = append(g.state.values, value)
	return &RadioButton[T]{
		state: g.state,
		index: len(g.state.values) - 1,
		label: label,
	}
}

// Selection returns the value of the currently selected button.
func (g *RadioGroup[T]) Selection() T {
	return g.state.values[g.state.selection]
}

// SelectedIndex returns the position of the selected button, in the
// order they were created.
func (g *RadioGroup[T]) SelectedIndex() int { return g.state.selection }

// RadioButton is one choice in a [RadioGroup], drawn as "( ) label" or
// "(X) label". Create them with [RadioGroup.Button].
type RadioButton[T any] struct {
	BaseView
	state    *radioState[T]
	index    int
	label    string
	lastSize Vec
}

// IsSelected reports whether this button is the group's current choice.
func (b *RadioButton[T]) IsSelected() bool {
	return b.state.selection == b.index
}

// Select makes this button the group's choice. The result carries the
// group's on-change callback so dispatch can run it on the loop.
func (b *RadioButton[T]) Select() EventResult {
	b.state.selection = b.index
	if fn := b.state.onChange; fn != nil {
		value := b.state.values[b.index]
		return ConsumedWith(func(app *App) { fn(app, value) })
	}
	return Consumed()
}

func (b *RadioButton[T]) Label() string { return b.label }

func (b *RadioButton[T]) RequiredSize(Vec) Vec {
	return XY(4+ansi.StringWidth(b.label), 1)
}

func (b *RadioButton[T]) Layout(size Vec) { b.lastSize = size }

func (b *RadioButton[T]) Draw(p *Printer) {
	style := p.Plain()
	if p.IsFocused() && p.IsEnabled() {
		style = p.Highlighted()
	}
	mark := "( ) "
	if b.IsSelected() {
		mark = "(X) "
	}
	style.Print(XY(0, 0), mark+b.label)
}

func (b *RadioButton[T]) OnEvent(ev Event) EventResult {
	switch ev := ev.(type) {
	case KeyEvent:
		if ev.Key == KeyEnter {
			return b.Select()
		}
	case CharEvent:
		if ev.Rune == ' ' && ev.Mod == 0 {
			return b.Select()
		}
	case MouseEvent:
		if !(Rect{Size: b.lastSize}).Contains(ev.LocalPos()) {
			return Ignored()
		}
		switch ev.Action {
		case MousePress:
			return Consumed()
		case MouseRelease:
			return b.Select()
		}
	}
	return Ignored()
}

func (b *RadioButton[T]) TakeFocus(Direction) bool { return true }

func (b *RadioButton[T]) CallOnAny(sel Selector, fn func(View)) {
	callOnMatch(b, sel, fn)
}

func (b *RadioButton[T]) FocusView(sel Selector) error {
	if matched, err := focusMatch(b, sel); matched {
		return err
	}
	return ErrViewNotFound
}
