package scrim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probeView records the events and draw surfaces it sees.
type probeView struct {
	BaseView
	size      Vec
	events    []Event
	consume   bool
	focusable bool
	drawnAt   Vec
	drawnSize Vec
	disabled  bool
}

func (v *probeView) RequiredSize(Vec) Vec { return v.size }

func (v *probeView) OnEvent(ev Event) EventResult {
	v.events = append(v.events, ev)
	if v.consume {
		return Consumed()
	}
	return Ignored()
}

func (v *probeView) TakeFocus(Direction) bool { return v.focusable }

func (v *probeView) Draw(p *Printer) {
	v.drawnAt = p.ScreenOffset()
	v.drawnSize = p.Size()
	v.disabled = !p.IsEnabled()
}

func (v *probeView) CallOnAny(sel Selector, fn func(View)) {
	callOnMatch(v, sel, fn)
}

func (v *probeView) FocusView(sel Selector) error {
	if matched, err := focusMatch(v, sel); matched {
		return err
	}
	return ErrViewNotFound
}

func TestPadViewGeometry(t *testing.T) {
	inner := &probeView{size: XY(4, 2)}
	pad := Padded(Margins{Left: 2, Right: 1, Top: 1, Bottom: 1}, inner)

	assert.Equal(t, XY(7, 4), pad.RequiredSize(XY(20, 20)), "margins inflate measurement")

	p, _, _ := testPrinter(XY(10, 6))
	pad.Layout(XY(10, 6))
	pad.Draw(&p)
	assert.Equal(t, XY(2, 1), inner.drawnAt, "content starts past the top-left margin")
	assert.Equal(t, XY(7, 4), inner.drawnSize, "both margin sides are carved off")
}

func TestPadViewShiftsMouse(t *testing.T) {
	inner := &probeView{consume: true}
	pad := Padded(Margins{Left: 2, Top: 1}, inner)

	res := pad.OnEvent(MouseEvent{Pos: XY(5, 3), Action: MousePress})
	require.True(t, res.IsConsumed())
	require.Len(t, inner.events, 1)
	m := inner.events[0].(MouseEvent)
	assert.Equal(t, XY(3, 2), m.LocalPos(), "the margin joins the accumulated offset")

	// Key events pass through untouched.
	pad.OnEvent(KeyEvent{Key: KeyUp})
	assert.Equal(t, KeyEvent{Key: KeyUp}, inner.events[1])
}

func TestEnableViewGatesEverything(t *testing.T) {
	inner := &probeView{consume: true, focusable: true}
	en := Enableable(Named("inner", inner))

	assert.True(t, en.IsEnabled())
	assert.True(t, en.OnEvent(Ch('x')).IsConsumed())
	assert.True(t, en.TakeFocus(DirNone))
	require.NoError(t, en.FocusView(ByName("inner")))

	en.Disable()
	assert.False(t, en.OnEvent(Ch('x')).IsConsumed(), "disabled views ignore input")
	assert.False(t, en.TakeFocus(DirNone))
	assert.ErrorIs(t, en.FocusView(ByName("inner")), ErrFocusDeclined,
		"the subtree exists but cannot take focus")
	assert.ErrorIs(t, en.FocusView(ByName("absent")), ErrViewNotFound)

	en.Enable()
	assert.True(t, en.OnEvent(Ch('x')).IsConsumed())
}

func TestEnableViewDimsDrawing(t *testing.T) {
	inner := &probeView{}
	en := Enableable(inner)

	p, _, _ := testPrinter(XY(5, 5))
	en.Draw(&p)
	assert.False(t, inner.disabled)

	en.Disable()
	en.Draw(&p)
	assert.True(t, inner.disabled, "disabled wrappers hand the child a dimmed surface")
}

func TestTrackViewRecordsScreenPosition(t *testing.T) {
	inner := &probeView{}
	tracked := Tracked(inner)

	p, _, _ := testPrinter(XY(20, 10))
	child := p.Offset(XY(4, 2)).Offset(XY(1, 1))
	tracked.Draw(&child)

	assert.Equal(t, XY(5, 3), tracked.Offset(), "offsets compose across derivations")
}

func TestFixedSizeView(t *testing.T) {
	inner := &probeView{size: XY(50, 50)}
	fixed := FixedSize(XY(8, 3), inner)

	assert.Equal(t, XY(8, 3), fixed.RequiredSize(XY(100, 100)),
		"the pin wins over the inner view's appetite")

	p, _, _ := testPrinter(XY(20, 10))
	fixed.Layout(XY(20, 10))
	fixed.Draw(&p)
	assert.Equal(t, XY(8, 3), inner.drawnSize, "drawing clips to the pinned size")
}

func TestNamedViewFocus(t *testing.T) {
	inner := &probeView{focusable: true}
	named := Named("target", inner)

	require.NoError(t, named.FocusView(ByName("target")))
	assert.ErrorIs(t, named.FocusView(ByName("other")), ErrViewNotFound)

	inner.focusable = false
	assert.ErrorIs(t, named.FocusView(ByName("target")), ErrFocusDeclined)
}

func TestTextView(t *testing.T) {
	tv := NewTextView("one\ntwo")
	assert.Equal(t, XY(3, 2), tv.RequiredSize(XY(80, 24)))

	tv.AppendLine("three!")
	assert.Equal(t, "one\ntwo\nthree!", tv.Content())
	assert.Equal(t, XY(6, 3), tv.RequiredSize(XY(80, 24)))

	p, backend, _ := testPrinter(XY(10, 4))
	tv.Draw(&p)
	assert.Equal(t, "one\ntwo\nthree!\n\n", backend.Snapshot())
}

func TestButtonActivation(t *testing.T) {
	fired := 0
	b := NewButton("OK", func(*App) { fired++ })
	b.Layout(XY(4, 1))

	res := b.OnEvent(KeyEvent{Key: KeyEnter})
	require.True(t, res.IsConsumed())
	res.Process(nil)
	assert.Equal(t, 1, fired)

	res = b.OnEvent(Ch(' '))
	require.True(t, res.IsConsumed())
	res.Process(nil)
	assert.Equal(t, 2, fired)

	assert.False(t, b.OnEvent(Ch('x')).IsConsumed())
}

func TestButtonMouse(t *testing.T) {
	fired := 0
	b := NewButton("OK", func(*App) { fired++ })
	b.Layout(XY(4, 1))

	// Only a release inside the button fires it.
	res := b.OnEvent(MouseEvent{Pos: XY(1, 0), Btn: ButtonLeft, Action: MousePress})
	assert.True(t, res.IsConsumed())
	res.Process(nil)
	assert.Zero(t, fired)

	res = b.OnEvent(MouseEvent{Pos: XY(1, 0), Btn: ButtonLeft, Action: MouseRelease})
	require.True(t, res.IsConsumed())
	res.Process(nil)
	assert.Equal(t, 1, fired)

	res = b.OnEvent(MouseEvent{Pos: XY(9, 0), Btn: ButtonLeft, Action: MouseRelease})
	assert.False(t, res.IsConsumed(), "outside the drawn footprint")
}

func TestButtonDraw(t *testing.T) {
	b := NewButton("OK", nil)
	assert.Equal(t, XY(4, 1), b.RequiredSize(XY(80, 24)), "label plus angle brackets")

	p, backend, theme := testPrinter(XY(10, 1))
	b.Layout(XY(4, 1))
	b.Draw(&p)
	assert.Equal(t, "<OK>\n", backend.Snapshot())
	assert.Equal(t, theme.Palette[RoleHighlight], backend.ColorAt(XY(0, 0)).Back,
		"focused surfaces draw the button highlighted")

	backend.Clear(ColorDefault)
	unfocused := p.Focused(false)
	b.Draw(&unfocused)
	assert.Equal(t, theme.Palette[RoleView], backend.ColorAt(XY(0, 0)).Back,
		"unfocused buttons draw as plain text")
}
