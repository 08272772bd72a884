package scrim

// Backend is the terminal abstraction the controller drives. Real
// implementations live in their own packages (termback, tcellback);
// [DummyBackend] serves tests and headless runs.
//
// The controller is the only caller and runs single-threaded, so
// implementations need no internal locking on the drawing side. PollEvent
// however must never block: backends collect input on their own goroutines
// and hand it over here.
type Backend interface {
	// PollEvent returns the next pending input event, if any. It must
	// return immediately; the controller owns the idle backoff.
	PollEvent() (Event, bool)

	// Size returns the current terminal dimensions in cells.
	Size() Vec

	// Print writes text starting at pos using the colors and effects
	// most recently set. Out-of-bounds cells are discarded.
	Print(pos Vec, text string)

	// SetColor sets the color pair applied to subsequent Print calls.
	SetColor(pair ColorPair)

	// SetEffect enables a text effect for subsequent Print calls.
	SetEffect(e Effect)

	// UnsetEffect disables a text effect.
	UnsetEffect(e Effect)

	// Clear fills the screen with the given background color.
	Clear(bg Color)

	// Refresh presents everything drawn since the previous Refresh.
	Refresh()

	// Finish restores the terminal. The controller guarantees exactly
	// one call across every exit path, including panics.
	Finish()

	// Name identifies the backend, for diagnostics only.
	Name() string
}
