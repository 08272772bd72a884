package scrim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativizedMouse(t *testing.T) {
	ev := MouseEvent{Pos: XY(10, 5), Btn: ButtonLeft, Action: MousePress}

	shifted := Relativized(ev, XY(3, 2))
	m, ok := shifted.(MouseEvent)
	assert.True(t, ok)
	assert.Equal(t, XY(10, 5), m.Pos, "absolute position never moves")
	assert.Equal(t, XY(3, 2), m.Offset)
	assert.Equal(t, XY(7, 3), m.LocalPos())

	// Offsets accumulate as the event descends.
	deeper, _ := Relativized(m, XY(1, 1)).(MouseEvent)
	assert.Equal(t, XY(4, 3), deeper.Offset)
	assert.Equal(t, XY(6, 2), deeper.LocalPos())
}

func TestRelativizedPassthrough(t *testing.T) {
	for _, ev := range []Event{
		KeyEvent{Key: KeyUp},
		CharEvent{Rune: 'x'},
		ResizeEvent{},
		RefreshEvent{},
		ExitEvent{},
	} {
		assert.Equal(t, ev, Relativized(ev, XY(5, 5)))
	}
}

func TestGrabsFocus(t *testing.T) {
	press := MouseEvent{Action: MousePress}
	assert.True(t, press.GrabsFocus())

	for _, a := range []MouseAction{MouseRelease, MouseHold, MouseWheelUp, MouseWheelDown} {
		assert.False(t, MouseEvent{Action: a}.GrabsFocus(), "action %d", a)
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Enter", KeyEnter.String())
	assert.Equal(t, "Backtab", KeyBacktab.String())
	assert.Equal(t, "F12", KeyF12.String())
	assert.Equal(t, "Unknown", Key(200).String())
}

func TestCh(t *testing.T) {
	assert.Equal(t, CharEvent{Rune: 'q'}, Ch('q'))
}

func TestEventsAreComparable(t *testing.T) {
	// Events key the global callback table, so equal events must hash
	// to the same map entry.
	m := map[Event]int{
		Ch('q'):               1,
		KeyEvent{Key: KeyEsc}: 2,
	}
	assert.Equal(t, 1, m[CharEvent{Rune: 'q'}])
	assert.Equal(t, 2, m[KeyEvent{Key: KeyEsc}])
	assert.Zero(t, m[KeyEvent{Key: KeyEsc, Mod: ModAlt}])
}
