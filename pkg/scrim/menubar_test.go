package scrim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestMenubarVisibility(t *testing.T) {
	app := NewApp(NewDummyBackend(XY(30, 8)))
	bar := app.Menubar()
	bar.AddLeaf("Act", nil)

	assert.True(t, bar.Autohide())
	assert.False(t, bar.Visible(), "an autohiding bar stays out of the way")

	app.SelectMenubar()
	assert.True(t, bar.Visible(), "selection brings it up")

	bar.SetAutohide(false)
	bar.deselect()
	assert.True(t, bar.Visible(), "a pinned bar is always up")
}

func TestMenubarSelectFirstSkipsDelimiters(t *testing.T) {
	app := NewApp(NewDummyBackend(XY(30, 8)))
	bar := app.Menubar()
	bar.AddDelimiter().AddLeaf("Go", nil)

	app.SelectMenubar()
	require.True(t, bar.ReceiveEvents())
	assert.Equal(t, 1, bar.focus)
}

func TestMenubarSelectEmptyBar(t *testing.T) {
	app := NewApp(NewDummyBackend(XY(30, 8)))
	app.SelectMenubar()
	assert.False(t, app.Menubar().ReceiveEvents(), "nothing to select")
}

func TestMenubarArrowsSkipAndWrap(t *testing.T) {
	app := NewApp(NewDummyBackend(XY(30, 8)))
	bar := app.Menubar()
	bar.AddLeaf("A", nil).AddDelimiter().AddLeaf("B", nil)
	app.SelectMenubar()
	require.Zero(t, bar.focus)

	app.OnEvent(KeyEvent{Key: KeyRight})
	assert.Equal(t, 2, bar.focus, "delimiters are not focusable")

	app.OnEvent(KeyEvent{Key: KeyRight})
	assert.Zero(t, bar.focus, "focus wraps at the end")

	app.OnEvent(KeyEvent{Key: KeyLeft})
	assert.Equal(t, 2, bar.focus)
}

func TestMenubarKeyboardFlow(t *testing.T) {
	newRan := false
	app := NewApp(NewDummyBackend(XY(40, 12)))
	app.Menubar().AddSubtree("File", NewMenuTree().
		Leaf("New", func(*App) { newRan = true }).
		Delimiter().
		Subtree("More", NewMenuTree().Leaf("Deep", nil)))

	app.SelectMenubar()
	require.True(t, app.Menubar().ReceiveEvents())

	// Down opens the dropdown; the bar hands events to the popup layer.
	app.OnEvent(KeyEvent{Key: KeyDown})
	require.Equal(t, 1, app.Screen().LayerCount())
	assert.True(t, app.Menubar().HasSubmenu())
	assert.False(t, app.Menubar().ReceiveEvents())

	popup := app.Screen().Layer(FromFront(0)).(*MenuPopup)
	assert.Zero(t, popup.focus)

	// Down again walks the popup, skipping the delimiter.
	app.OnEvent(KeyEvent{Key: KeyDown})
	assert.Equal(t, 2, popup.focus)

	// Enter on a subtree opens a nested popup.
	app.OnEvent(KeyEvent{Key: KeyEnter})
	require.Equal(t, 2, app.Screen().LayerCount())

	// Escape closes one level at a time.
	app.OnEvent(KeyEvent{Key: KeyEsc})
	assert.Equal(t, 1, app.Screen().LayerCount())
	assert.True(t, app.Menubar().HasSubmenu())

	app.OnEvent(KeyEvent{Key: KeyEsc})
	assert.Zero(t, app.Screen().LayerCount())
	assert.True(t, app.Menubar().ReceiveEvents(), "the bar takes focus back")

	app.OnEvent(KeyEvent{Key: KeyEsc})
	assert.False(t, app.Menubar().Visible(), "escaping the bar deselects it")

	// A leaf collapses everything and fires on the loop.
	app.SelectMenubar()
	app.OnEvent(KeyEvent{Key: KeyDown})
	app.OnEvent(KeyEvent{Key: KeyEnter})
	assert.True(t, newRan)
	assert.Zero(t, app.Screen().LayerCount())
	assert.False(t, app.Menubar().Visible())
}

func TestMenubarRightArrowOpensSubtree(t *testing.T) {
	app := NewApp(NewDummyBackend(XY(40, 12)))
	app.Menubar().AddSubtree("File", NewMenuTree().
		Subtree("More", NewMenuTree().Leaf("Deep", nil)))

	app.SelectMenubar()
	app.OnEvent(KeyEvent{Key: KeyDown})
	require.Equal(t, 1, app.Screen().LayerCount())

	app.OnEvent(KeyEvent{Key: KeyRight})
	assert.Equal(t, 2, app.Screen().LayerCount())

	app.OnEvent(KeyEvent{Key: KeyLeft})
	assert.Equal(t, 1, app.Screen().LayerCount())
}

func TestMenubarLeafOnBar(t *testing.T) {
	ran := false
	app := NewApp(NewDummyBackend(XY(30, 8)))
	app.Menubar().AddLeaf("About", func(*App) { ran = true })

	app.SelectMenubar()
	app.OnEvent(KeyEvent{Key: KeyEnter})

	assert.True(t, ran)
	assert.False(t, app.Menubar().ReceiveEvents(), "bar leaves deselect on fire")
	assert.Zero(t, app.Screen().LayerCount())
}

func TestMenubarMouseTitleClick(t *testing.T) {
	aboutRan := false
	app := NewApp(NewDummyBackend(XY(30, 8)))
	app.Menubar().SetAutohide(false)
	app.Menubar().
		AddSubtree("File", NewMenuTree().Leaf("New", nil)).
		AddDelimiter().
		AddSubtree("Help", NewMenuTree().Leaf("About", func(*App) { aboutRan = true }))

	// Spans: " File " at x1, " │ " at x7, " Help " at x10.
	app.OnEvent(MouseEvent{Pos: XY(11, 0), Btn: ButtonLeft, Action: MousePress})
	require.True(t, app.Menubar().ReceiveEvents())
	assert.Equal(t, 2, app.Menubar().focus)

	app.OnEvent(MouseEvent{Pos: XY(11, 0), Btn: ButtonLeft, Action: MouseRelease})
	require.True(t, app.Menubar().HasSubmenu(), "releasing on a title opens its dropdown")

	app.OnEvent(KeyEvent{Key: KeyEnter})
	assert.True(t, aboutRan, "the dropdown under the clicked title opened")
}

func TestMenubarClickBelowDismisses(t *testing.T) {
	app := NewApp(NewDummyBackend(XY(30, 8)))
	app.Menubar().AddLeaf("Act", nil)
	app.SelectMenubar()

	app.OnEvent(MouseEvent{Pos: XY(5, 3), Btn: ButtonLeft, Action: MousePress})
	assert.False(t, app.Menubar().ReceiveEvents())
}

func TestMenuPopupMouse(t *testing.T) {
	app := NewApp(NewDummyBackend(XY(30, 10)))
	app.Menubar().AddSubtree("File", NewMenuTree().
		Leaf("New", nil).
		Leaf("Two", nil))
	app.SelectMenubar()
	app.OnEvent(KeyEvent{Key: KeyDown})
	require.Equal(t, 1, app.Screen().LayerCount())
	app.Refresh() // commit the popup's position and size

	popup := app.Screen().Layer(FromFront(0)).(*MenuPopup)

	// Wheel moves the selection.
	app.OnEvent(MouseEvent{Pos: XY(3, 2), Action: MouseWheelDown})
	assert.Equal(t, 1, popup.focus)
	app.OnEvent(MouseEvent{Pos: XY(3, 2), Action: MouseWheelUp})
	assert.Zero(t, popup.focus)

	// The popup sits at (1,1); item rows start one below its border.
	app.OnEvent(MouseEvent{Pos: XY(2, 3), Btn: ButtonLeft, Action: MouseRelease})
	assert.Equal(t, 1, popup.focus, "the release picked the second item")
	assert.Zero(t, app.Screen().LayerCount(), "activating a leaf collapses the menu")
	assert.False(t, app.Menubar().Visible())
}

func TestMenubarSelectedTitleHighlight(t *testing.T) {
	backend := NewDummyBackend(XY(30, 8))
	app := NewApp(backend)
	app.Menubar().AddLeaf("Act", nil)
	app.SelectMenubar()
	app.Refresh()

	highlight := app.Theme().Palette[RoleHighlight]
	assert.Equal(t, highlight, backend.ColorAt(XY(2, 0)).Back)
	assert.Equal(t, app.Theme().Palette[RoleView], backend.ColorAt(XY(0, 0)).Back)
}

func TestMenubarDrawGolden(t *testing.T) {
	backend := NewDummyBackend(XY(20, 8))
	app := NewApp(backend)
	app.Menubar().SetAutohide(false)
	app.Menubar().AddSubtree("File", NewMenuTree().
		Leaf("New", nil).
		Delimiter().
		Subtree("More", NewMenuTree().Leaf("Deep", nil)))

	app.SelectMenubar()
	app.OnEvent(KeyEvent{Key: KeyDown})
	app.Refresh()

	golden.Assert(t, backend.Snapshot(), "menubar_draw.golden")
}

func TestMenuTreeBuilders(t *testing.T) {
	tree := NewMenuTree().
		Leaf("open", Noop).
		Delimiter().
		Subtree("recent", NewMenuTree().Leaf("a", nil))

	require.Equal(t, 3, tree.Len())
	assert.False(t, tree.IsEmpty())
	assert.True(t, NewMenuTree().IsEmpty())

	open := tree.Item(0)
	assert.True(t, open.IsLeaf())
	assert.Equal(t, "open", open.Label())
	assert.NotNil(t, open.Callback())
	assert.Nil(t, open.Subtree())

	delim := tree.Item(1)
	assert.True(t, delim.IsDelimiter())
	assert.Empty(t, delim.Label())

	recent := tree.Item(2)
	assert.True(t, recent.IsSubtree())
	require.NotNil(t, recent.Subtree())
	assert.Equal(t, 1, recent.Subtree().Len())
	assert.Nil(t, recent.Callback())
}
