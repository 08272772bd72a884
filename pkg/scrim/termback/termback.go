// Package termback implements the scrim backend for a plain ANSI
// terminal on the process's stdin and stdout. It needs no terminfo
// database: output uses escape sequences every modern terminal
// understands, and input is decoded from the raw byte stream, including
// SGR mouse reports.
package termback

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/cancelreader"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/vito/scrim/pkg/scrim"
)

const (
	seqEnterAlt     = "\x1b[?1049h"
	seqExitAlt      = "\x1b[?1049l"
	seqHideCursor   = "\x1b[?25l"
	seqShowCursor   = "\x1b[?25h"
	seqEnableMouse  = "\x1b[?1002h\x1b[?1006h"
	seqDisableMouse = "\x1b[?1006l\x1b[?1002l"
	seqClearScreen  = "\x1b[2J"
	seqResetStyle   = "\x1b[0m"
)

// ErrNotTerminal is returned by [New] when stdin or stdout is not a
// terminal, for instance under a pipe.
var ErrNotTerminal = errors.New("termback: stdin and stdout must be a terminal")

type cell struct {
	r    rune // 0 marks the shadow of a wide rune
	pair scrim.ColorPair
	fx   scrim.Effect
}

// Backend drives a real terminal. Build one with [New] and hand it to
// scrim.NewApp; the app's Close restores the terminal.
type Backend struct {
	in  *os.File
	out *os.File
	w   *bufio.Writer

	state  *term.State
	reader cancelreader.CancelReader

	events   chan scrim.Event
	done     chan struct{}
	sigwinch chan os.Signal
	wg       sync.WaitGroup

	mu   sync.Mutex
	size scrim.Vec

	// paint state for subsequent Prints
	pair scrim.ColorPair
	fx   scrim.Effect

	// double buffer; Refresh flushes back minus front
	front, back [][]cell
	gridSize    scrim.Vec
	dirtyAll    bool
}

// New puts the terminal into raw mode on the alternate screen, with the
// cursor hidden and mouse reporting on, and starts collecting input.
// Callers must ensure Finish runs before the process exits or the
// terminal stays raw; running the app with scrim.App.Run takes care of
// that.
func New() (*Backend, error) {
	in, out := os.Stdin, os.Stdout
	if !term.IsTerminal(in.Fd()) || !term.IsTerminal(out.Fd()) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(in.Fd())
	if err != nil {
		return nil, errors.Wrap(err, "entering raw mode")
	}
	reader, err := cancelreader.NewReader(in)
	if err != nil {
		_ = term.Restore(in.Fd(), state)
		return nil, errors.Wrap(err, "wrapping input")
	}
	w, h, err := term.GetSize(out.Fd())
	if err != nil {
		reader.Cancel()
		_ = term.Restore(in.Fd(), state)
		return nil, errors.Wrap(err, "querying terminal size")
	}

	b := &Backend{
		in:       in,
		out:      out,
		w:        bufio.NewWriterSize(out, 32*1024),
		state:    state,
		reader:   reader,
		events:   make(chan scrim.Event, 128),
		done:     make(chan struct{}),
		sigwinch: make(chan os.Signal, 1),
		size:     scrim.XY(w, h),
	}
	b.reallocGrids(b.size)

	b.w.WriteString(seqEnterAlt + seqHideCursor + seqEnableMouse + seqClearScreen)
	b.w.Flush()

	signal.Notify(b.sigwinch, unix.SIGWINCH)
	b.wg.Add(2)
	go b.readLoop()
	go b.watchResize()
	return b, nil
}

// ── Input side ──────────────────────────────────────────────────────────────

func (b *Backend) readLoop() {
	defer b.wg.Done()
	buf := make([]byte, 1024)
	var pending []byte
	for {
		n, err := b.reader.Read(buf)
		if err != nil {
			return
		}
		pending = append(pending, buf[:n]...)
		evs, rest := decodeAll(pending)
		pending = append(pending[:0], rest...)
		for _, ev := range evs {
			select {
			case b.events <- ev:
			case <-b.done:
				return
			}
		}
	}
}

func (b *Backend) watchResize() {
	defer b.wg.Done()
	for {
		select {
		case <-b.sigwinch:
			if w, h, err := term.GetSize(b.out.Fd()); err == nil {
				b.mu.Lock()
				b.size = scrim.XY(w, h)
				b.mu.Unlock()
			}
			select {
			case b.events <- scrim.ResizeEvent{}:
			case <-b.done:
				return
			}
		case <-b.done:
			return
		}
	}
}

func (b *Backend) PollEvent() (scrim.Event, bool) {
	select {
	case ev := <-b.events:
		return ev, true
	default:
		return nil, false
	}
}

func (b *Backend) Size() scrim.Vec {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// ── Output side ─────────────────────────────────────────────────────────────

func newGrid(size scrim.Vec) [][]cell {
	g := make([][]cell, size.Y)
	for y := range g {
		g[y] = make([]cell, size.X)
		for x := range g[y] {
			g[y][x].r = ' '
		}
	}
	return g
}

func (b *Backend) reallocGrids(size scrim.Vec) {
	b.front = newGrid(size)
	b.back = newGrid(size)
	b.gridSize = size
	b.dirtyAll = true
}

func (b *Backend) SetColor(pair scrim.ColorPair) { b.pair = pair }
func (b *Backend) SetEffect(e scrim.Effect)      { b.fx |= e }
func (b *Backend) UnsetEffect(e scrim.Effect)    { b.fx &^= e }

func (b *Backend) Print(pos scrim.Vec, text string) {
	if pos.Y < 0 || pos.Y >= b.gridSize.Y {
		return
	}
	row := b.back[pos.Y]
	x := pos.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > b.gridSize.X {
			break
		}
		if x >= 0 {
			row[x] = cell{r: r, pair: b.pair, fx: b.fx}
			if w == 2 {
				row[x+1] = cell{pair: b.pair, fx: b.fx}
			}
		}
		x += w
	}
}

// Clear resizes the buffers to the current terminal size and fills them
// with the background color. The next Refresh repaints every cell.
func (b *Backend) Clear(bg scrim.Color) {
	if size := b.Size(); size != b.gridSize {
		b.reallocGrids(size)
	}
	pair := scrim.ColorPair{Front: bg, Back: bg}
	for y := range b.back {
		for x := range b.back[y] {
			b.back[y][x] = cell{r: ' ', pair: pair}
		}
	}
	b.dirtyAll = true
}

// Refresh writes out every cell that changed since the previous frame
// in one buffered burst.
func (b *Backend) Refresh() {
	if b.dirtyAll {
		b.w.WriteString(seqClearScreen)
	}
	var cur cell
	var haveStyle bool
	curX, curY := -1, -1
	for y := range b.back {
		for x := 0; x < len(b.back[y]); {
			c := b.back[y][x]
			if c.r == 0 { // shadow of the wide rune before it
				x++
				continue
			}
			w := runewidth.RuneWidth(c.r)
			if w < 1 {
				w = 1
			}
			if !b.dirtyAll && b.front[y][x] == c {
				x += w
				continue
			}
			if curY != y || curX != x {
				fmt.Fprintf(b.w, "\x1b[%d;%dH", y+1, x+1)
			}
			if !haveStyle || c.pair != cur.pair || c.fx != cur.fx {
				b.w.WriteString(sgr(c.pair, c.fx))
				cur, haveStyle = c, true
			}
			b.w.WriteRune(c.r)
			curX, curY = x+w, y
			x += w
		}
	}
	for y := range b.back {
		copy(b.front[y], b.back[y])
	}
	b.dirtyAll = false
	b.w.Flush()
}

// Finish stops the input goroutines and restores the terminal. The app
// controller calls it exactly once.
func (b *Backend) Finish() {
	close(b.done)
	b.reader.Cancel()
	signal.Stop(b.sigwinch)
	b.wg.Wait()

	b.w.WriteString(seqResetStyle + seqDisableMouse + seqShowCursor + seqExitAlt)
	b.w.Flush()
	_ = term.Restore(b.in.Fd(), b.state)
}

func (b *Backend) Name() string { return "term" }

// sgr renders the full attribute state as one reset-and-set sequence,
// so cells never inherit stale attributes.
func sgr(pair scrim.ColorPair, fx scrim.Effect) string {
	var sb strings.Builder
	sb.WriteString("\x1b[0")
	for _, e := range [...]struct {
		fx   scrim.Effect
		code string
	}{
		{scrim.EffectBold, ";1"},
		{scrim.EffectDim, ";2"},
		{scrim.EffectItalic, ";3"},
		{scrim.EffectUnderline, ";4"},
		{scrim.EffectBlink, ";5"},
		{scrim.EffectReverse, ";7"},
		{scrim.EffectStrikethrough, ";9"},
	} {
		if fx.Has(e.fx) {
			sb.WriteString(e.code)
		}
	}
	writeColor(&sb, pair.Front, 38, 39)
	writeColor(&sb, pair.Back, 48, 49)
	sb.WriteString("m")
	return sb.String()
}

func writeColor(sb *strings.Builder, c scrim.Color, set, reset int) {
	if c.IsDefault() {
		fmt.Fprintf(sb, ";%d", reset)
		return
	}
	if idx, isRGB := c.ANSI(); !isRGB {
		fmt.Fprintf(sb, ";%d;5;%d", set, idx)
	} else {
		r, g, bl := c.RGBValues()
		fmt.Fprintf(sb, ";%d;2;%d;%d;%d", set, r, g, bl)
	}
}
