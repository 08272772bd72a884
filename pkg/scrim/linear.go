package scrim

import "github.com/pkg/errors"

// Orientation is the axis a [LinearLayout] stacks its children along.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

type linearChild struct {
	view View

	// committed by Layout for drawing and mouse routing
	offset Vec
	size   Vec
}

// LinearLayout arranges children along one axis, giving each its required
// size in order until space runs out. One child holds focus; events go to
// it first, and arrow keys (or Tab/Backtab) that it ignores move focus
// along the axis. With more than one child it is a decision node for path
// selectors.
type LinearLayout struct {
	orientation Orientation
	children    []linearChild
	focus       int
}

// NewVerticalLayout stacks children top to bottom.
func NewVerticalLayout() *LinearLayout {
	return &LinearLayout{orientation: Vertical}
}

// NewHorizontalLayout stacks children left to right.
func NewHorizontalLayout() *LinearLayout {
	return &LinearLayout{orientation: Horizontal}
}

// AddChild appends a child, returning the layout for chaining.
func (l *LinearLayout) AddChild(v View) *LinearLayout {
	l.children = append(l.children, linearChild{view: v})
	return l
}

// RemoveChild detaches and returns the i-th child, or nil when out of
// range.
func (l *LinearLayout) RemoveChild(i int) View {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	v := l.children[i].view
	l.children = append(l.children[:i], l.children[i+1:]...)
	if l.focus >= len(l.children) {
		l.focus = max(0, len(l.children)-1)
	}
	return v
}

// ChildCount returns the number of children.
func (l *LinearLayout) ChildCount() int { return len(l.children) }

// Child returns the i-th child, or nil when out of range.
func (l *LinearLayout) Child(i int) View {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i].view
}

// FocusIndex returns the index of the focused child.
func (l *LinearLayout) FocusIndex() int { return l.focus }

func (l *LinearLayout) along(v Vec) int {
	if l.orientation == Horizontal {
		return v.X
	}
	return v.Y
}

func (l *LinearLayout) across(v Vec) int {
	if l.orientation == Horizontal {
		return v.Y
	}
	return v.X
}

func (l *LinearLayout) vec(along, across int) Vec {
	if l.orientation == Horizontal {
		return XY(along, across)
	}
	return XY(across, along)
}

func (l *LinearLayout) RequiredSize(available Vec) Vec {
	remaining := available
	var sumAlong, maxAcross int
	for i := range l.children {
		want := l.children[i].view.RequiredSize(remaining)
		sumAlong += l.along(want)
		maxAcross = max(maxAcross, l.across(want))
		remaining = remaining.SatSub(l.vec(l.along(want), 0))
	}
	return l.vec(sumAlong, maxAcross)
}

func (l *LinearLayout) Layout(size Vec) {
	remaining := size
	var cursor int
	for i := range l.children {
		child := &l.children[i]
		want := child.view.RequiredSize(remaining)
		got := want.Min(remaining)
		child.offset = l.vec(cursor, 0)
		child.size = got
		child.view.Layout(got)
		cursor += l.along(got)
		remaining = remaining.SatSub(l.vec(l.along(got), 0))
	}
}

func (l *LinearLayout) Draw(p *Printer) {
	for i := range l.children {
		child := &l.children[i]
		sub := p.Offset(child.offset).
			Cropped(child.size).
			Focused(p.IsFocused() && i == l.focus)
		child.view.Draw(&sub)
	}
}

func (l *LinearLayout) OnEvent(ev Event) EventResult {
	if len(l.children) == 0 {
		return Ignored()
	}

	if m, ok := ev.(MouseEvent); ok {
		return l.onMouse(m)
	}

	if res := l.children[l.focus].view.OnEvent(ev); res.IsConsumed() {
		return res
	}

	// The focused child passed; see if the event moves focus instead.
	if key, ok := ev.(KeyEvent); ok && key.Mod == 0 {
		switch {
		case key.Key == KeyTab:
			if l.moveFocus(1, DirFront) {
				return Consumed()
			}
		case key.Key == KeyBacktab:
			if l.moveFocus(-1, DirBack) {
				return Consumed()
			}
		case key.Key == l.nextKey():
			if l.moveFocus(1, l.nextDir()) {
				return Consumed()
			}
		case key.Key == l.prevKey():
			if l.moveFocus(-1, l.prevDir()) {
				return Consumed()
			}
		}
	}
	return Ignored()
}

func (l *LinearLayout) nextKey() Key {
	if l.orientation == Horizontal {
		return KeyRight
	}
	return KeyDown
}

func (l *LinearLayout) prevKey() Key {
	if l.orientation == Horizontal {
		return KeyLeft
	}
	return KeyUp
}

func (l *LinearLayout) nextDir() Direction {
	if l.orientation == Horizontal {
		return DirLeft
	}
	return DirUp
}

func (l *LinearLayout) prevDir() Direction {
	if l.orientation == Horizontal {
		return DirRight
	}
	return DirDown
}

func (l *LinearLayout) onMouse(m MouseEvent) EventResult {
	local := m.LocalPos()
	for i := range l.children {
		child := &l.children[i]
		if !(Rect{TopLeft: child.offset, Size: child.size}).Contains(local) {
			continue
		}
		res := child.view.OnEvent(Relativized(m, child.offset))
		if res.IsConsumed() && m.GrabsFocus() && child.view.TakeFocus(DirNone) {
			l.focus = i
		}
		return res
	}
	return Ignored()
}

// moveFocus walks from the focused child in steps of delta until a child
// accepts focus from dir.
func (l *LinearLayout) moveFocus(delta int, dir Direction) bool {
	for i := l.focus + delta; i >= 0 && i < len(l.children); i += delta {
		if l.children[i].view.TakeFocus(dir) {
			l.focus = i
			return true
		}
	}
	return false
}

func (l *LinearLayout) TakeFocus(dir Direction) bool {
	order := make([]int, 0, len(l.children))
	switch dir {
	case DirBack, DirDown, DirRight:
		for i := len(l.children) - 1; i >= 0; i-- {
			order = append(order, i)
		}
	default:
		for i := range l.children {
			order = append(order, i)
		}
	}
	for _, i := range order {
		if l.children[i].view.TakeFocus(dir) {
			l.focus = i
			return true
		}
	}
	return false
}

func (l *LinearLayout) CallOnAny(sel Selector, fn func(View)) {
	callOnChildren(l, len(l.children), func(i int) View { return l.children[i].view }, sel, fn)
}

func (l *LinearLayout) FocusView(sel Selector) error {
	switch sel := sel.(type) {
	case ByPath:
		if len(sel) == 0 {
			if l.TakeFocus(DirNone) {
				return nil
			}
			return ErrFocusDeclined
		}
		switch len(l.children) {
		case 0:
			return ErrViewNotFound
		case 1:
			if err := l.children[0].view.FocusView(sel); err != nil {
				return err
			}
			l.focus = 0
			return nil
		default:
			i := sel[0]
			if i < 0 || i >= len(l.children) {
				return ErrViewNotFound
			}
			if err := l.children[i].view.FocusView(sel[1:]); err != nil {
				return err
			}
			l.focus = i
			return nil
		}
	default:
		for i := range l.children {
			err := l.children[i].view.FocusView(sel)
			if err == nil {
				l.focus = i
				return nil
			}
			if errors.Is(err, ErrFocusDeclined) {
				// Found the target; it said no. First match decides.
				return err
			}
		}
		return ErrViewNotFound
	}
}
