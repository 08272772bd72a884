package scrim

// Direction is where focus is arriving from when a view is asked to take
// it, letting multi-part views pick a sensible entry point (a list focuses
// its first row when focus comes from above, its last when from below).
type Direction uint8

const (
	// DirNone is a direct, non-spatial focus request (selector-driven).
	DirNone Direction = iota
	DirFront
	DirBack
	DirLeft
	DirRight
	DirUp
	DirDown
)

// View is the capability every node in the tree implements.
//
// Layout is two-phase: the parent probes with RequiredSize, which must be
// pure and callable any number of times, then commits exactly once per
// frame with Layout. Layout is the only place a view may cache
// size-dependent state for Draw.
//
// Draw must not mutate view state beyond transient per-frame caches (such
// as the offset a [TrackView] records).
//
// Ownership is strictly tree-shaped: parents own children, children hold
// no parent references. Anything that needs to reach "up" does so with a
// deferred [Callback] or by re-walking from the root with a [Selector].
type View interface {
	// RequiredSize reports the size the view wants within the available
	// space.
	RequiredSize(available Vec) Vec

	// Layout commits the final size for the coming Draw.
	Layout(size Vec)

	// Draw renders the view onto the printer's window.
	Draw(p *Printer)

	// OnEvent offers an input event to the view.
	OnEvent(ev Event) EventResult

	// TakeFocus asks the view to accept focus arriving from dir,
	// reporting whether it did.
	TakeFocus(dir Direction) bool

	// CallOnAny walks the view (and any children) looking for selector
	// matches, invoking fn on each matched view. It must not mutate
	// the tree.
	CallOnAny(sel Selector, fn func(View))

	// FocusView moves focus down to the view matched by the selector,
	// adjusting focus state along the path. Returns ErrViewNotFound or
	// ErrFocusDeclined on failure, leaving focus untouched.
	FocusView(sel Selector) error
}

// ── BaseView ────────────────────────────────────────────────────────────────

// BaseView provides inert defaults for leaves to embed: unit size, no
// children, ignores input, declines focus. Leaves that should be reachable
// by path selectors must still implement CallOnAny themselves (an embedded
// field cannot speak for its outer view).
type BaseView struct{}

func (BaseView) RequiredSize(Vec) Vec { return XY(1, 1) }

func (BaseView) Layout(Vec) {}

func (BaseView) Draw(*Printer) {}

func (BaseView) OnEvent(Event) EventResult { return Ignored() }

func (BaseView) TakeFocus(Direction) bool { return false }

func (BaseView) CallOnAny(Selector, func(View)) {}

func (BaseView) FocusView(Selector) error { return ErrViewNotFound }

// ── DummyView ───────────────────────────────────────────────────────────────

// DummyView draws nothing and wants no space. Useful as a placeholder
// while assembling a layout.
type DummyView struct {
	BaseView
}

// NewDummyView returns the empty view.
func NewDummyView() *DummyView { return &DummyView{} }

func (d *DummyView) RequiredSize(Vec) Vec { return XY(0, 0) }

func (d *DummyView) CallOnAny(sel Selector, fn func(View)) {
	callOnMatch(d, sel, fn)
}
