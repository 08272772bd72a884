package scrim

// ScreensView keeps several independent layer stacks with exactly one
// active at a time. Inactive screens keep their layers and state; a
// switch is an index change, never a rebuild. For everything that touches
// the tree (input, layout, drawing, lookups) it acts as a transparent
// wrapper around the active stack.
type ScreensView struct {
	screens []*StackView
	active  int
}

// NewScreensView builds the view with one empty screen, already active.
func NewScreensView() *ScreensView {
	return &ScreensView{screens: []*StackView{NewStackView()}}
}

// AddScreen appends a fresh empty screen and returns its id. The active
// screen does not change.
func (s *ScreensView) AddScreen() int {
	s.screens = append(s.screens, NewStackView())
	return len(s.screens) - 1
}

// SetActive switches the active screen.
func (s *ScreensView) SetActive(id int) error {
	if id < 0 || id >= len(s.screens) {
		return ErrViewNotFound
	}
	s.active = id
	return nil
}

// ActiveID returns the active screen's id.
func (s *ScreensView) ActiveID() int { return s.active }

// ActiveScreen returns the active stack.
func (s *ScreensView) ActiveScreen() *StackView { return s.screens[s.active] }

// Screen returns the stack with the given id, or nil.
func (s *ScreensView) Screen(id int) *StackView {
	if id < 0 || id >= len(s.screens) {
		return nil
	}
	return s.screens[id]
}

// ScreenCount returns how many screens exist.
func (s *ScreensView) ScreenCount() int { return len(s.screens) }

func (s *ScreensView) RequiredSize(available Vec) Vec {
	return s.ActiveScreen().RequiredSize(available)
}

func (s *ScreensView) Layout(size Vec) { s.ActiveScreen().Layout(size) }

func (s *ScreensView) Draw(p *Printer) { s.ActiveScreen().Draw(p) }

// DrawBg draws the active screen's background pass.
func (s *ScreensView) DrawBg(p *Printer) { s.ActiveScreen().DrawBg(p) }

// DrawFg draws the active screen's foreground pass.
func (s *ScreensView) DrawFg(p *Printer) { s.ActiveScreen().DrawFg(p) }

func (s *ScreensView) OnEvent(ev Event) EventResult {
	return s.ActiveScreen().OnEvent(ev)
}

func (s *ScreensView) TakeFocus(dir Direction) bool {
	return s.ActiveScreen().TakeFocus(dir)
}

func (s *ScreensView) CallOnAny(sel Selector, fn func(View)) {
	s.ActiveScreen().CallOnAny(sel, fn)
}

func (s *ScreensView) FocusView(sel Selector) error {
	return s.ActiveScreen().FocusView(sel)
}
