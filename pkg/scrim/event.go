package scrim

// ── Keys and modifiers ──────────────────────────────────────────────────────

// Key identifies a non-printable key.
type Key uint8

const (
	KeyNone Key = iota
	KeyEnter
	KeyEsc
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDel
	KeyIns
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyNone: "None", KeyEnter: "Enter", KeyEsc: "Esc", KeyTab: "Tab",
	KeyBacktab: "Backtab", KeyBackspace: "Backspace", KeyDel: "Del",
	KeyIns: "Ins", KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp",
	KeyPageDown: "PageDown", KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left",
	KeyRight: "Right", KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4",
	KeyF5: "F5", KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9",
	KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Mod is a bitmask of key modifiers.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

// ── Events ──────────────────────────────────────────────────────────────────

// Event is an input unit delivered by a backend or synthesized by the
// controller. Every concrete event type is a small comparable struct, so
// events can key the global callback table.
//
// Mouse events carry both an absolute position and an accumulated view
// offset; the offset grows as the event descends through positioned
// containers, letting each view compute local coordinates without knowing
// where it sits. See [Relativized].
type Event interface {
	event()
}

// KeyEvent is a press of a non-printable key, possibly modified.
type KeyEvent struct {
	Key Key
	Mod Mod
}

// CharEvent is a printable rune, possibly modified. Control chords arrive
// as a lowercase rune with [ModCtrl] set (Ctrl-C is {'c', ModCtrl}).
type CharEvent struct {
	Rune rune
	Mod  Mod
}

// Ch is shorthand for an unmodified character event, handy as a global
// callback trigger:
//
//	app.SetGlobalCallback(scrim.Ch('q'), (*scrim.App).Quit)
func Ch(r rune) CharEvent { return CharEvent{Rune: r} }

// MouseButton identifies which button a mouse event refers to.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// MouseAction describes what the mouse did.
type MouseAction uint8

const (
	MousePress MouseAction = iota + 1
	MouseRelease
	MouseHold
	MouseWheelUp
	MouseWheelDown
)

// MouseEvent is a mouse action at an absolute screen position.
type MouseEvent struct {
	// Pos is the absolute position on the screen.
	Pos Vec
	// Offset accumulates the top-left corners of every positioned
	// ancestor the event has descended through. Pos.Sub(Offset) is the
	// position in the receiving view's local coordinates.
	Offset Vec
	Btn    MouseButton
	Action MouseAction
}

// LocalPos returns the position relative to the accumulated offset.
func (e MouseEvent) LocalPos() Vec { return e.Pos.Sub(e.Offset) }

// GrabsFocus reports whether this mouse action should move focus to the
// view under the cursor (presses do, releases and wheel motion do not).
func (e MouseEvent) GrabsFocus() bool { return e.Action == MousePress }

// ResizeEvent reports that the window size changed. The new size is not
// carried; query the controller or backend, which always reflect the
// current size.
type ResizeEvent struct{}

// RefreshEvent is the synthetic tick dispatched before an idle-triggered
// redraw, so periodically-updating views get a pulse without real input.
type RefreshEvent struct{}

// ExitEvent is an interrupt-style request to terminate, delivered by
// backends on SIGINT or equivalent.
type ExitEvent struct{}

func (KeyEvent) event()     {}
func (CharEvent) event()    {}
func (MouseEvent) event()   {}
func (ResizeEvent) event()  {}
func (RefreshEvent) event() {}
func (ExitEvent) event()    {}

// Relativized shifts a mouse event's accumulated offset by the given
// top-left corner. Non-mouse events pass through unchanged. Containers and
// wrappers call this before handing an event to a child that lives at a
// non-zero offset.
func Relativized(ev Event, topLeft Vec) Event {
	if m, ok := ev.(MouseEvent); ok {
		m.Offset = m.Offset.Add(topLeft)
		return m
	}
	return ev
}
