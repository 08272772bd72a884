package scrim

import "github.com/charmbracelet/x/ansi"

// MenuPopup is the floating layer a menubar opens to display one
// [MenuTree] level. Nested subtrees open further popups as layers above
// it; Escape (or Left) closes one level at a time. The popup owns no
// child views, so selector paths pass over it like any other leaf.
type MenuPopup struct {
	BaseView
	bar  *Menubar
	tree *MenuTree
	pos  Vec // stack-space top-left, for cascading children

	focus    int
	lastSize Vec
}

func newMenuPopup(bar *Menubar, tree *MenuTree, pos Vec) *MenuPopup {
	p := &MenuPopup{bar: bar, tree: tree, pos: pos}
	p.focus = p.nextSelectable(-1, 1)
	return p
}

// nextSelectable finds the first non-delimiter index walking from i+delta,
// or returns the current focus when the walk falls off either end.
func (m *MenuPopup) nextSelectable(i, delta int) int {
	for j := i + delta; j >= 0 && j < m.tree.Len(); j += delta {
		if !m.tree.Item(j).IsDelimiter() {
			return j
		}
	}
	return max(0, m.focus)
}

func (m *MenuPopup) innerWidth() int {
	w := 0
	for i := 0; i < m.tree.Len(); i++ {
		lw := ansi.StringWidth(m.tree.Item(i).Label())
		if m.tree.Item(i).IsSubtree() {
			lw += 2
		}
		w = max(w, lw)
	}
	return w + 2 // one space of padding each side
}

func (m *MenuPopup) RequiredSize(Vec) Vec {
	return XY(m.innerWidth()+2, m.tree.Len()+2)
}

func (m *MenuPopup) Layout(size Vec) { m.lastSize = size }

func (m *MenuPopup) Draw(p *Printer) {
	inner := m.innerWidth()
	plain := p.Plain()

	plain.Print(XY(0, 0), "┌")
	plain.HLine(XY(1, 0), inner, '─')
	plain.Print(XY(inner+1, 0), "┐")

	for i := 0; i < m.tree.Len(); i++ {
		y := i + 1
		item := m.tree.Item(i)
		if item.IsDelimiter() {
			plain.Print(XY(0, y), "├")
			plain.HLine(XY(1, y), inner, '─')
			plain.Print(XY(inner+1, y), "┤")
			continue
		}
		plain.Print(XY(0, y), "│")
		plain.Print(XY(inner+1, y), "│")

		row := plain
		if i == m.focus && p.IsFocused() {
			row = p.Highlighted()
		}
		row.HLine(XY(1, y), inner, ' ')
		row.Print(XY(1, y), " "+item.Label())
		if item.IsSubtree() {
			row.Print(XY(inner, y), ">")
		}
	}

	bottom := m.tree.Len() + 1
	plain.Print(XY(0, bottom), "└")
	plain.HLine(XY(1, bottom), inner, '─')
	plain.Print(XY(inner+1, bottom), "┘")
}

func (m *MenuPopup) OnEvent(ev Event) EventResult {
	switch ev := ev.(type) {
	case KeyEvent:
		switch ev.Key {
		case KeyUp:
			m.focus = m.nextSelectable(m.focus, -1)
			return Consumed()
		case KeyDown:
			m.focus = m.nextSelectable(m.focus, 1)
			return Consumed()
		case KeyEnter:
			return m.activate()
		case KeyRight:
			if m.tree.Len() > 0 && m.tree.Item(m.focus).IsSubtree() {
				return m.activate()
			}
		case KeyEsc, KeyLeft:
			return ConsumedWith(m.bar.popPopup)
		}
	case MouseEvent:
		return m.onMouse(ev)
	}
	return Consumed() // modal: nothing leaks past an open menu
}

func (m *MenuPopup) onMouse(ev MouseEvent) EventResult {
	local := ev.LocalPos()
	inside := Rect{Size: m.lastSize}.Contains(local)
	if !inside {
		if ev.Action == MousePress {
			return ConsumedWith(m.bar.popPopup)
		}
		return Consumed()
	}
	switch ev.Action {
	case MouseWheelUp:
		m.focus = m.nextSelectable(m.focus, -1)
		return Consumed()
	case MouseWheelDown:
		m.focus = m.nextSelectable(m.focus, 1)
		return Consumed()
	case MousePress, MouseRelease:
		row := local.Y - 1
		if row < 0 || row >= m.tree.Len() || m.tree.Item(row).IsDelimiter() {
			return Consumed()
		}
		m.focus = row
		if ev.Action == MouseRelease {
			return m.activate()
		}
	}
	return Consumed()
}

func (m *MenuPopup) activate() EventResult {
	if m.tree.Len() == 0 {
		return Consumed()
	}
	item := m.tree.Item(m.focus)
	switch {
	case item.IsLeaf():
		cb := item.Callback()
		return ConsumedWith(func(app *App) {
			m.bar.collapse(app)
			if cb != nil {
				cb(app)
			}
		})
	case item.IsSubtree():
		sub := item.Subtree()
		childPos := m.pos.Add(XY(m.innerWidth(), m.focus+1))
		return ConsumedWith(func(app *App) {
			m.bar.pushPopup(app, sub, childPos)
		})
	}
	return Consumed()
}

func (m *MenuPopup) TakeFocus(Direction) bool { return true }

func (m *MenuPopup) CallOnAny(sel Selector, fn func(View)) {
	callOnMatch(m, sel, fn)
}
