// Package tcellback implements the scrim backend on top of tcell,
// trading termback's small footprint for terminfo-aware output and
// tcell's wider platform support.
package tcellback

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/vito/scrim/pkg/scrim"
)

// Backend drives a tcell screen. Build one with [New] or wrap an
// existing screen with [NewWithScreen] (handy with tcell's simulation
// screen).
type Backend struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	pair scrim.ColorPair
	fx   scrim.Effect

	// tcell reports mouse button state, not edges; this remembers the
	// previous state so presses and releases can be told apart.
	lastBtns tcell.ButtonMask
}

// New initializes a screen on the controlling terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "opening screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an already initialized screen. The backend takes
// ownership: Finish finalizes it.
func NewWithScreen(screen tcell.Screen) *Backend {
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	b := &Backend{
		screen: screen,
		events: make(chan tcell.Event, 128),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(b.events, b.quit)
	return b
}

func (b *Backend) PollEvent() (scrim.Event, bool) {
	for {
		select {
		case tev, ok := <-b.events:
			if !ok {
				return nil, false
			}
			if ev := b.translate(tev); ev != nil {
				return ev, true
			}
		default:
			return nil, false
		}
	}
}

func (b *Backend) translate(tev tcell.Event) scrim.Event {
	switch tev := tev.(type) {
	case *tcell.EventResize:
		return scrim.ResizeEvent{}
	case *tcell.EventKey:
		return translateKey(tev)
	case *tcell.EventMouse:
		return b.translateMouse(tev)
	default:
		return nil
	}
}

// translateKey maps a tcell key event. tcell reuses the same codes for
// control chords and the keys they produce (Ctrl-I is Tab, Ctrl-M is
// Enter), so the named keys must be matched before the control range.
func translateKey(tev *tcell.EventKey) scrim.Event {
	mod := translateMod(tev.Modifiers())
	switch key := tev.Key(); key {
	case tcell.KeyRune:
		return scrim.CharEvent{Rune: tev.Rune(), Mod: mod &^ scrim.ModShift}
	case tcell.KeyEnter:
		return scrim.KeyEvent{Key: scrim.KeyEnter, Mod: mod}
	case tcell.KeyTab:
		return scrim.KeyEvent{Key: scrim.KeyTab, Mod: mod}
	case tcell.KeyBacktab:
		return scrim.KeyEvent{Key: scrim.KeyBacktab, Mod: mod}
	case tcell.KeyEsc:
		return scrim.KeyEvent{Key: scrim.KeyEsc, Mod: mod}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return scrim.KeyEvent{Key: scrim.KeyBackspace, Mod: mod}
	case tcell.KeyDelete:
		return scrim.KeyEvent{Key: scrim.KeyDel, Mod: mod}
	case tcell.KeyInsert:
		return scrim.KeyEvent{Key: scrim.KeyIns, Mod: mod}
	case tcell.KeyHome:
		return scrim.KeyEvent{Key: scrim.KeyHome, Mod: mod}
	case tcell.KeyEnd:
		return scrim.KeyEvent{Key: scrim.KeyEnd, Mod: mod}
	case tcell.KeyPgUp:
		return scrim.KeyEvent{Key: scrim.KeyPageUp, Mod: mod}
	case tcell.KeyPgDn:
		return scrim.KeyEvent{Key: scrim.KeyPageDown, Mod: mod}
	case tcell.KeyUp:
		return scrim.KeyEvent{Key: scrim.KeyUp, Mod: mod}
	case tcell.KeyDown:
		return scrim.KeyEvent{Key: scrim.KeyDown, Mod: mod}
	case tcell.KeyLeft:
		return scrim.KeyEvent{Key: scrim.KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return scrim.KeyEvent{Key: scrim.KeyRight, Mod: mod}
	case tcell.KeyCtrlC:
		return scrim.ExitEvent{}
	default:
		switch {
		case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
			return scrim.CharEvent{
				Rune: rune('a' + key - tcell.KeyCtrlA),
				Mod:  mod | scrim.ModCtrl,
			}
		case key >= tcell.KeyF1 && key <= tcell.KeyF12:
			return scrim.KeyEvent{
				Key: scrim.KeyF1 + scrim.Key(key-tcell.KeyF1),
				Mod: mod,
			}
		}
		return nil
	}
}

func translateMod(m tcell.ModMask) scrim.Mod {
	var mod scrim.Mod
	if m&tcell.ModShift != 0 {
		mod |= scrim.ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= scrim.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= scrim.ModCtrl
	}
	return mod
}

func (b *Backend) translateMouse(tev *tcell.EventMouse) scrim.Event {
	x, y := tev.Position()
	pos := scrim.XY(x, y)
	btns := tev.Buttons()

	if btns&tcell.WheelUp != 0 {
		return scrim.MouseEvent{Pos: pos, Action: scrim.MouseWheelUp}
	}
	if btns&tcell.WheelDown != 0 {
		return scrim.MouseEvent{Pos: pos, Action: scrim.MouseWheelDown}
	}

	held := btns & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	pressed := held &^ b.lastBtns
	released := b.lastBtns &^ held
	b.lastBtns = held

	if btn, ok := pickButton(pressed); ok {
		return scrim.MouseEvent{Pos: pos, Btn: btn, Action: scrim.MousePress}
	}
	if btn, ok := pickButton(released); ok {
		return scrim.MouseEvent{Pos: pos, Btn: btn, Action: scrim.MouseRelease}
	}
	if btn, ok := pickButton(held); ok {
		return scrim.MouseEvent{Pos: pos, Btn: btn, Action: scrim.MouseHold}
	}
	return nil
}

func pickButton(mask tcell.ButtonMask) (scrim.MouseButton, bool) {
	switch {
	case mask&tcell.ButtonPrimary != 0:
		return scrim.ButtonLeft, true
	case mask&tcell.ButtonSecondary != 0:
		return scrim.ButtonRight, true
	case mask&tcell.ButtonMiddle != 0:
		return scrim.ButtonMiddle, true
	default:
		return scrim.ButtonNone, false
	}
}

// ── Output side ─────────────────────────────────────────────────────────────

func (b *Backend) Size() scrim.Vec {
	w, h := b.screen.Size()
	return scrim.XY(w, h)
}

func (b *Backend) SetColor(pair scrim.ColorPair) { b.pair = pair }
func (b *Backend) SetEffect(e scrim.Effect)      { b.fx |= e }
func (b *Backend) UnsetEffect(e scrim.Effect)    { b.fx &^= e }

func (b *Backend) style() tcell.Style {
	st := tcell.StyleDefault.
		Foreground(translateColor(b.pair.Front)).
		Background(translateColor(b.pair.Back))
	if b.fx.Has(scrim.EffectBold) {
		st = st.Bold(true)
	}
	if b.fx.Has(scrim.EffectDim) {
		st = st.Dim(true)
	}
	if b.fx.Has(scrim.EffectItalic) {
		st = st.Italic(true)
	}
	if b.fx.Has(scrim.EffectUnderline) {
		st = st.Underline(true)
	}
	if b.fx.Has(scrim.EffectBlink) {
		st = st.Blink(true)
	}
	if b.fx.Has(scrim.EffectReverse) {
		st = st.Reverse(true)
	}
	if b.fx.Has(scrim.EffectStrikethrough) {
		st = st.StrikeThrough(true)
	}
	return st
}

func translateColor(c scrim.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	if idx, isRGB := c.ANSI(); !isRGB {
		return tcell.PaletteColor(int(idx))
	}
	r, g, bl := c.RGBValues()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func (b *Backend) Print(pos scrim.Vec, text string) {
	st := b.style()
	x := pos.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.screen.SetContent(x, pos.Y, r, nil, st)
		x += w
	}
}

func (b *Backend) Clear(bg scrim.Color) {
	b.screen.Fill(' ', tcell.StyleDefault.Background(translateColor(bg)))
}

func (b *Backend) Refresh() { b.screen.Show() }

// Finish stops the event pump and restores the terminal. The app
// controller calls it exactly once.
func (b *Backend) Finish() {
	close(b.quit)
	b.screen.Fini()
}

func (b *Backend) Name() string { return "tcell" }
