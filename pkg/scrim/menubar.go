package scrim

import "github.com/charmbracelet/x/ansi"

type menubarState uint8

const (
	// menubarInactive means the bar is not focused; with autohide on it
	// is not drawn at all.
	menubarInactive menubarState = iota
	// menubarSelected means the bar itself has focus and cycles titles.
	menubarSelected
	// menubarSubmenu means at least one [MenuPopup] layer is open; the
	// topmost popup receives events through the normal layer routing.
	menubarSubmenu
)

// Menubar is the single menu bar pinned to the top row of the screen.
// It is owned by [App]; grab it with [App.Menubar] and populate it with
// the chaining Add methods.
type Menubar struct {
	BaseView
	root     *MenuTree
	autohide bool

	state      menubarState
	focus      int
	popupDepth int
	lastSize   Vec
}

func newMenubar() *Menubar {
	return &Menubar{root: NewMenuTree(), autohide: true}
}

// AddSubtree appends a titled dropdown to the bar.
func (m *Menubar) AddSubtree(title string, sub *MenuTree) *Menubar {
	m.root.Subtree(title, sub)
	return m
}

// AddLeaf appends a title that fires cb directly instead of opening a
// dropdown.
func (m *Menubar) AddLeaf(title string, cb Callback) *Menubar {
	m.root.Leaf(title, cb)
	return m
}

// AddDelimiter appends a vertical separator between titles.
func (m *Menubar) AddDelimiter() *Menubar {
	m.root.Delimiter()
	return m
}

// SetAutohide controls whether the bar hides while inactive. It hides
// by default.
func (m *Menubar) SetAutohide(autohide bool) { m.autohide = autohide }

// Autohide reports whether the bar hides while inactive.
func (m *Menubar) Autohide() bool { return m.autohide }

// Visible reports whether the bar occupies the top row right now.
func (m *Menubar) Visible() bool {
	return !m.autohide || m.state != menubarInactive
}

// ReceiveEvents reports whether the bar wants events routed to it
// directly. While a popup is open the popup is the top layer and gets
// them through the screen instead.
func (m *Menubar) ReceiveEvents() bool { return m.state == menubarSelected }

// HasSubmenu reports whether at least one popup layer is open.
func (m *Menubar) HasSubmenu() bool { return m.state == menubarSubmenu }

// Len returns the number of bar entries, delimiters included.
func (m *Menubar) Len() int { return m.root.Len() }

func (m *Menubar) selectFirst() bool {
	for i := 0; i < m.root.Len(); i++ {
		if !m.root.Item(i).IsDelimiter() {
			m.state = menubarSelected
			m.focus = i
			return true
		}
	}
	return false
}

func (m *Menubar) deselect() { m.state = menubarInactive }

func (m *Menubar) moveFocus(delta int) {
	n := m.root.Len()
	if n == 0 {
		return
	}
	i := m.focus
	for step := 0; step < n; step++ {
		i = (i + delta + n) % n
		if !m.root.Item(i).IsDelimiter() {
			m.focus = i
			return
		}
	}
}

// titleSpans returns the x position and width of each bar entry as
// drawn, in screen space. Entry i renders as " label " starting at
// spans[i].x.
func (m *Menubar) titleSpans() []span {
	spans := make([]span, m.root.Len())
	x := 1
	for i := 0; i < m.root.Len(); i++ {
		w := ansi.StringWidth(m.barLabel(i)) + 2
		spans[i] = span{x: x, w: w}
		x += w
	}
	return spans
}

type span struct{ x, w int }

func (m *Menubar) barLabel(i int) string {
	item := m.root.Item(i)
	if item.IsDelimiter() {
		return "│"
	}
	return item.Label()
}

// barOffset is the stack-space y just below the bar, where popups
// spawn. With autohide the layer stack starts at screen row 0 and the
// bar overdraws it, so popups must duck one row down.
func (m *Menubar) barOffset() int {
	if m.autohide {
		return 1
	}
	return 0
}

func (m *Menubar) pushPopup(app *App, tree *MenuTree, pos Vec) {
	if tree == nil || tree.IsEmpty() {
		return
	}
	app.Screen().AddLayerAt(pos, newMenuPopup(m, tree, pos))
	m.popupDepth++
	m.state = menubarSubmenu
}

// popPopup closes the topmost popup, handing focus back to the bar
// when it was the last one. Its signature lets popups use it as a
// [Callback] directly.
func (m *Menubar) popPopup(app *App) {
	if m.popupDepth == 0 {
		return
	}
	app.Screen().PopLayer()
	m.popupDepth--
	if m.popupDepth == 0 {
		m.state = menubarSelected
	}
}

// collapse closes every open popup and deactivates the bar.
func (m *Menubar) collapse(app *App) {
	for m.popupDepth > 0 {
		app.Screen().PopLayer()
		m.popupDepth--
	}
	m.deselect()
}

// activate opens the focused entry: dropdowns spawn a popup just below
// the bar, leaves collapse the menu and fire their callback.
func (m *Menubar) activate() EventResult {
	if m.root.Len() == 0 {
		return Consumed()
	}
	item := m.root.Item(m.focus)
	switch {
	case item.IsSubtree():
		sub := item.Subtree()
		pos := XY(m.titleSpans()[m.focus].x, m.barOffset())
		return ConsumedWith(func(app *App) {
			m.pushPopup(app, sub, pos)
		})
	case item.IsLeaf():
		cb := item.Callback()
		return ConsumedWith(func(app *App) {
			m.deselect()
			if cb != nil {
				cb(app)
			}
		})
	}
	return Consumed()
}

func (m *Menubar) RequiredSize(Vec) Vec {
	w := 1
	for i := 0; i < m.root.Len(); i++ {
		w += ansi.StringWidth(m.barLabel(i)) + 2
	}
	return XY(w, 1)
}

func (m *Menubar) Layout(size Vec) { m.lastSize = size }

func (m *Menubar) Draw(p *Printer) {
	plain := p.Plain()
	plain.HLine(XY(0, 0), p.Size().X, ' ')
	for i, sp := range m.titleSpans() {
		row := plain
		if i == m.focus && p.IsFocused() && !m.root.Item(i).IsDelimiter() {
			row = p.Highlighted()
		}
		row.Print(XY(sp.x, 0), " "+m.barLabel(i)+" ")
	}
}

func (m *Menubar) OnEvent(ev Event) EventResult {
	switch ev := ev.(type) {
	case KeyEvent:
		switch ev.Key {
		case KeyLeft:
			m.moveFocus(-1)
			return Consumed()
		case KeyRight:
			m.moveFocus(1)
			return Consumed()
		case KeyEnter, KeyDown:
			return m.activate()
		case KeyEsc:
			m.deselect()
			return Consumed()
		}
	case MouseEvent:
		return m.onMouse(ev)
	}
	return Consumed()
}

func (m *Menubar) onMouse(ev MouseEvent) EventResult {
	if ev.Pos.Y != 0 {
		// A click below the bar while it is selected just dismisses it.
		if ev.Action == MousePress {
			m.deselect()
		}
		return Consumed()
	}
	switch ev.Action {
	case MousePress, MouseRelease:
		for i, sp := range m.titleSpans() {
			if m.root.Item(i).IsDelimiter() {
				continue
			}
			if ev.Pos.X >= sp.x && ev.Pos.X < sp.x+sp.w {
				m.focus = i
				if ev.Action == MouseRelease {
					return m.activate()
				}
				break
			}
		}
	}
	return Consumed()
}

func (m *Menubar) CallOnAny(sel Selector, fn func(View)) {
	callOnMatch(m, sel, fn)
}
