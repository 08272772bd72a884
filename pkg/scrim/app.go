package scrim

import (
	"log/slog"
	"slices"
	"time"
)

// inputPollDelay is how long an idle loop cycle sleeps before polling
// the backend again.
const inputPollDelay = 30 * time.Millisecond

const debugConsoleName = "*debug-console*"

// EventPolicy decides who gets first pick of an event while the
// menubar is selected.
type EventPolicy uint8

const (
	// MenuFirst routes every event to a selected menubar before the
	// view tree sees it. This is the default.
	MenuFirst EventPolicy = iota
	// TreeFirst lets the focused view tree try the event first and
	// hands it to the selected menubar only when the tree ignores it.
	TreeFirst
)

// App owns the whole UI: the screens, the menubar, the theme, and the
// backend it all renders to. It is single-threaded. Every view method
// and every callback runs on the goroutine driving [App.Run] (or
// [App.Step]); other goroutines talk to it through [App.CbSink].
type App struct {
	backend Backend
	theme   Theme
	screens *ScreensView
	menubar *Menubar
	sink    *CbSink
	globals map[Event]Callback
	policy  EventPolicy

	running  bool
	finished bool

	// idle redraw state
	fps              int
	boringFrameCount int

	// committed layer footprint of the last drawn frame
	lastLayerSizes []Vec

	debug    *RingHandler
	userData any
}

// Option configures an [App] at construction.
type Option func(*App)

// WithTheme starts the app with a theme other than [DefaultTheme].
func WithTheme(theme Theme) Option {
	return func(a *App) { a.theme = theme }
}

// WithFps caps idle redraws at fps frames per second. Zero (the
// default) redraws on every idle cycle.
func WithFps(fps int) Option {
	return func(a *App) { a.SetFps(fps) }
}

// WithEventPolicy selects how events are split between a selected
// menubar and the view tree.
func WithEventPolicy(policy EventPolicy) Option {
	return func(a *App) { a.policy = policy }
}

// NewApp builds an app over the given backend with one empty screen.
// The app takes ownership of the backend; [App.Close] releases it.
func NewApp(backend Backend, opts ...Option) *App {
	a := &App{
		backend: backend,
		theme:   DefaultTheme(),
		screens: NewScreensView(),
		menubar: newMenubar(),
		sink:    newCbSink(),
		globals: map[Event]Callback{},
	}
	a.globals[ExitEvent{}] = (*App).Quit
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ── Run loop ────────────────────────────────────────────────────────────────

// Run drives the event loop until [App.Quit], then releases the
// backend. The backend is released exactly once even when a callback
// panics.
func (a *App) Run() {
	defer a.Close()
	a.running = true
	a.Refresh()
	for a.running {
		a.Step()
	}
}

// Step runs a single loop cycle: drain pending backend events and
// injected callbacks, then redraw or sleep depending on whether
// anything happened. It reports whether anything did. Use it to embed
// the UI in a hand-rolled loop; [App.Run] calls it for you.
func (a *App) Step() bool {
	received := a.processEvents()
	a.postEvents(received)
	return received
}

// Quit makes the loop stop after the current cycle.
func (a *App) Quit() { a.running = false }

// Running reports whether the loop is still live. It turns false the
// moment [App.Quit] runs, including partway through a cycle.
func (a *App) Running() bool { return a.running }

// Close stops the loop and releases the backend. Safe to call more
// than once; only the first call reaches the backend. Apps driven by
// [App.Run] need not call it.
func (a *App) Close() {
	a.running = false
	if a.finished {
		return
	}
	a.finished = true
	a.backend.Finish()
}

// processEvents drains the backend, then the callback sink. It stops
// dead as soon as something quits the app, leaving the rest of both
// queues untouched.
func (a *App) processEvents() bool {
	received := false
	for {
		ev, ok := a.backend.PollEvent()
		if !ok {
			break
		}
		received = true
		a.OnEvent(ev)
		if !a.running {
			return true
		}
	}
	for {
		cb, ok := a.sink.tryRecv()
		if !ok {
			break
		}
		received = true
		cb(a)
		if !a.running {
			return true
		}
	}
	return received
}

// postEvents closes a loop cycle. Cycles that saw input always redraw.
// Idle cycles redraw when the frame cap allows it, after synthesizing a
// [RefreshEvent] so views can animate, and then sleep off the poll
// delay.
func (a *App) postEvents(received bool) {
	boring := !received
	if !boring || a.idleFrameDue() {
		if boring {
			a.OnEvent(RefreshEvent{})
		}
		a.Refresh()
	}
	if boring {
		time.Sleep(inputPollDelay)
		a.boringFrameCount++
	}
}

// idleFrameDue reports whether enough idle cycles have passed since the
// last frame to owe the screen a redraw.
func (a *App) idleFrameDue() bool {
	if a.fps == 0 {
		return true
	}
	cycles := int(time.Second/inputPollDelay) / a.fps
	if cycles < 1 {
		cycles = 1
	}
	return a.boringFrameCount >= cycles
}

// SetFps caps idle redraws at fps frames per second. Zero removes the
// cap: every idle cycle redraws, which still only amounts to one frame
// per poll delay. Cycles with actual input always redraw regardless.
func (a *App) SetFps(fps int) {
	if fps < 0 {
		fps = 0
	}
	a.fps = fps
}

// Fps returns the idle redraw cap. Zero means uncapped.
func (a *App) Fps() int { return a.fps }

// SetAutorefresh is a shorthand for a 30 fps idle cap (or none).
func (a *App) SetAutorefresh(on bool) {
	if on {
		a.SetFps(30)
	} else {
		a.SetFps(0)
	}
}

// ── Event routing ───────────────────────────────────────────────────────────

// OnEvent pushes one event through the UI: menubar first (policy
// permitting), then the active screen's top layer, then the global
// callbacks. [App.Step] calls it for every polled event; tests and
// embedders can call it directly.
func (a *App) OnEvent(ev Event) {
	if _, ok := ev.(ResizeEvent); ok {
		a.ClearScreen()
	}
	if mev, ok := ev.(MouseEvent); ok {
		if mev.GrabsFocus() && mev.Pos.Y == 0 && !a.menubar.autohide && !a.menubar.HasSubmenu() {
			a.SelectMenubar()
		}
	}

	menuActive := a.menubar.ReceiveEvents()
	if menuActive && a.policy == MenuFirst {
		a.menubar.OnEvent(ev).Process(a)
		return
	}

	res := a.screens.OnEvent(Relativized(ev, XY(0, a.stackOffset())))
	if res.IsConsumed() {
		res.Process(a)
		return
	}

	if menuActive {
		if r := a.menubar.OnEvent(ev); r.IsConsumed() {
			r.Process(a)
			return
		}
	}

	if cb, ok := a.globals[ev]; ok {
		cb(a)
	}
}

// SetGlobalCallback registers cb to run whenever the view tree ignores
// ev. There is one slot per event; registering again replaces it.
func (a *App) SetGlobalCallback(ev Event, cb Callback) {
	a.globals[ev] = cb
}

// ClearGlobalCallback removes the callback registered for ev.
func (a *App) ClearGlobalCallback(ev Event) {
	delete(a.globals, ev)
}

// ClearGlobalCallbacks removes every registered global callback,
// including the default [ExitEvent] binding.
func (a *App) ClearGlobalCallbacks() {
	clear(a.globals)
}

// stackOffset is the screen row where the layer stack starts. A pinned
// menubar reserves row zero; an autohiding one overdraws the stack
// instead, so the stack keeps the whole screen.
func (a *App) stackOffset() int {
	if a.menubar.autohide {
		return 0
	}
	return 1
}

// ── Drawing ─────────────────────────────────────────────────────────────────

// Refresh forces a full layout and redraw right now and resets the
// idle frame counter. The loop calls it whenever a cycle warrants a
// frame.
func (a *App) Refresh() {
	a.boringFrameCount = 0
	a.layout()
	a.draw()
	a.backend.Refresh()
}

func (a *App) layout() {
	size := a.backend.Size()
	if a.menubar.Visible() {
		a.menubar.Layout(XY(size.X, 1))
	}
	a.screens.Layout(size.SatSub(XY(0, a.stackOffset())))
}

func (a *App) draw() {
	// A layer footprint change leaves stale cells behind; wipe first.
	sizes := a.Screen().LayerSizes()
	if !slices.Equal(a.lastLayerSizes, sizes) {
		a.ClearScreen()
		a.lastLayerSizes = sizes
	}

	size := a.backend.Size()
	p := NewPrinter(a.backend, &a.theme, size)

	selected := a.menubar.ReceiveEvents()
	sv := p.Offset(XY(0, a.stackOffset())).Focused(!selected)
	a.screens.DrawBg(&sv)
	if a.menubar.Visible() {
		mb := p.Cropped(XY(size.X, 1)).Focused(a.menubar.state != menubarInactive)
		a.menubar.Draw(&mb)
	}
	a.screens.DrawFg(&sv)
}

// ClearScreen wipes the whole terminal to the theme background. The
// next frame then repaints from scratch.
func (a *App) ClearScreen() {
	a.backend.Clear(a.theme.Palette[RoleBackground])
}

// ── Screens and layers ──────────────────────────────────────────────────────

// Root returns the top of the view tree, for use with the package
// lookup helpers like [Find] and [FindAt].
func (a *App) Root() View { return a.screens }

// Screen returns the active screen's layer stack.
func (a *App) Screen() *StackView { return a.screens.ActiveScreen() }

// AddScreen creates a detached empty screen and returns its id.
func (a *App) AddScreen() int { return a.screens.AddScreen() }

// SetScreen switches to another screen. Layers and state of the old
// one stay put until it is activated again.
func (a *App) SetScreen(id int) error { return a.screens.SetActive(id) }

// ActiveScreenID returns the id of the screen being shown.
func (a *App) ActiveScreenID() int { return a.screens.ActiveID() }

// AddLayer pushes a centered floating layer onto the active screen.
func (a *App) AddLayer(v View) { a.Screen().AddLayer(v) }

// AddLayerAt pushes a floating layer at pos onto the active screen.
func (a *App) AddLayerAt(pos Vec, v View) { a.Screen().AddLayerAt(pos, v) }

// AddFullscreenLayer pushes a viewport-filling layer onto the active
// screen.
func (a *App) AddFullscreenLayer(v View) { a.Screen().AddFullscreenLayer(v) }

// PopLayer removes the active screen's top layer and returns its view,
// or nil when the screen is empty.
func (a *App) PopLayer() View { return a.Screen().PopLayer() }

// ── Lookup and focus ────────────────────────────────────────────────────────

// CallOnAny runs fn on every view of the active screen matching sel.
func (a *App) CallOnAny(sel Selector, fn func(View)) {
	a.screens.CallOnAny(sel, fn)
}

// Focus moves focus to the first view matching sel on the active
// screen. It returns [ErrViewNotFound] when nothing matches and
// [ErrFocusDeclined] when the match will not take focus.
func (a *App) Focus(sel Selector) error {
	return a.screens.FocusView(sel)
}

// FocusName moves focus to the view registered under name.
func (a *App) FocusName(name string) error {
	return a.Focus(ByName(name))
}

// FocusID moves focus to the view registered under id.
//
// Deprecated: use [App.FocusName].
func (a *App) FocusID(id string) error { return a.FocusName(id) }

// ── Menubar ─────────────────────────────────────────────────────────────────

// Menubar returns the app's menu bar for population.
func (a *App) Menubar() *Menubar { return a.menubar }

// SelectMenubar gives the menubar focus, if it has any usable entry.
func (a *App) SelectMenubar() {
	a.menubar.selectFirst()
}

// ── Theme ───────────────────────────────────────────────────────────────────

// Theme returns a copy of the current theme.
func (a *App) Theme() Theme { return a.theme }

// SetTheme swaps the whole theme and wipes the screen so the next
// frame repaints with it.
func (a *App) SetTheme(theme Theme) {
	a.theme = theme
	a.ClearScreen()
}

// UpdateTheme adjusts the current theme in place.
func (a *App) UpdateTheme(fn func(*Theme)) {
	fn(&a.theme)
	a.ClearScreen()
}

// LoadThemeFile replaces the theme with one parsed from a TOML file.
func (a *App) LoadThemeFile(path string) error {
	theme, err := LoadThemeFile(path)
	if err != nil {
		return err
	}
	a.SetTheme(theme)
	return nil
}

// ── Everything else ─────────────────────────────────────────────────────────

// CbSink returns the handle other goroutines use to run code on the
// loop.
func (a *App) CbSink() *CbSink { return a.sink }

// ScreenSize returns the terminal size as the backend reports it.
func (a *App) ScreenSize() Vec { return a.backend.Size() }

// BackendName identifies the backend, mostly for logs and bug reports.
func (a *App) BackendName() string { return a.backend.Name() }

// SetUserData attaches an arbitrary value to the app for callbacks to
// share.
func (a *App) SetUserData(data any) { a.userData = data }

// UserData returns the value set with [App.SetUserData], or nil.
func (a *App) UserData() any { return a.userData }

// DebugHandler returns the app's in-memory log handler, creating it on
// first use. Point slog at it to make logs land in the debug console:
//
//	slog.SetDefault(slog.New(app.DebugHandler()))
func (a *App) DebugHandler() *RingHandler {
	if a.debug == nil {
		a.debug = NewRingHandler(1024, slog.LevelDebug)
	}
	return a.debug
}

// ToggleDebugConsole shows the captured log ring as a fullscreen layer
// on the active screen, or hides it if it is already up.
func (a *App) ToggleDebugConsole() {
	if pos, ok := a.Screen().FindLayerFromName(debugConsoleName); ok {
		a.Screen().RemoveLayer(pos)
		return
	}
	a.AddFullscreenLayer(Named(debugConsoleName, NewLogView(a.DebugHandler())))
}

// Noop is a [Callback] that does nothing, for APIs that require one.
func Noop(*App) {}
