package scrim

import (
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

// DummyBackend renders into an in-memory cell grid and replays scripted
// events. It backs the package tests and is exported so applications can
// drive a controller headlessly in their own tests.
type DummyBackend struct {
	mu     sync.Mutex
	size   Vec
	runes  [][]rune
	colors [][]ColorPair

	events []Event

	color   ColorPair
	effects Effect

	refreshes int
	clears    int
	finishes  int
}

// NewDummyBackend builds a dummy backend with the given grid size.
func NewDummyBackend(size Vec) *DummyBackend {
	b := &DummyBackend{size: size}
	b.reset()
	return b
}

func (b *DummyBackend) reset() {
	b.runes = make([][]rune, b.size.Y)
	b.colors = make([][]ColorPair, b.size.Y)
	for y := range b.runes {
		b.runes[y] = make([]rune, b.size.X)
		b.colors[y] = make([]ColorPair, b.size.X)
		for x := range b.runes[y] {
			b.runes[y][x] = ' '
		}
	}
}

// PushEvent appends events to the script. Safe from any goroutine.
func (b *DummyBackend) PushEvent(evs ...Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evs...)
}

// SetSize changes the reported terminal size. Pair with a pushed
// [ResizeEvent] to mimic a real resize.
func (b *DummyBackend) SetSize(size Vec) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.size = size
	b.reset()
}

func (b *DummyBackend) PollEvent() (Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return nil, false
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, true
}

func (b *DummyBackend) Size() Vec {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

func (b *DummyBackend) Print(pos Vec, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if pos.Y < 0 || pos.Y >= b.size.Y {
		return
	}
	x := pos.X
	for _, r := range text {
		if x >= b.size.X {
			break
		}
		if x >= 0 {
			b.runes[pos.Y][x] = r
			b.colors[pos.Y][x] = b.color
		}
		x += runewidth.RuneWidth(r)
	}
}

func (b *DummyBackend) SetColor(pair ColorPair) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.color = pair
}

func (b *DummyBackend) SetEffect(e Effect) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.effects |= e
}

func (b *DummyBackend) UnsetEffect(e Effect) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.effects &^= e
}

func (b *DummyBackend) Clear(bg Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clears++
	for y := range b.runes {
		for x := range b.runes[y] {
			b.runes[y][x] = ' '
			b.colors[y][x] = ColorPair{Back: bg}
		}
	}
}

func (b *DummyBackend) Refresh() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshes++
}

func (b *DummyBackend) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finishes++
}

func (b *DummyBackend) Name() string { return "dummy" }

// Snapshot renders the grid as newline-terminated text, for golden
// comparisons.
func (b *DummyBackend) Snapshot() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var sb strings.Builder
	for y := range b.runes {
		sb.WriteString(strings.TrimRight(string(b.runes[y]), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RuneAt returns the rune drawn at pos, or space when out of bounds.
func (b *DummyBackend) RuneAt(pos Vec) rune {
	b.mu.Lock()
	defer b.mu.Unlock()
	if pos.Y < 0 || pos.Y >= b.size.Y || pos.X < 0 || pos.X >= b.size.X {
		return ' '
	}
	return b.runes[pos.Y][pos.X]
}

// ColorAt returns the color pair last used to draw at pos.
func (b *DummyBackend) ColorAt(pos Vec) ColorPair {
	b.mu.Lock()
	defer b.mu.Unlock()
	if pos.Y < 0 || pos.Y >= b.size.Y || pos.X < 0 || pos.X >= b.size.X {
		return ColorPair{}
	}
	return b.colors[pos.Y][pos.X]
}

// RefreshCount reports how many times the backend presented a frame.
func (b *DummyBackend) RefreshCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.refreshes
}

// ClearCount reports how many full-screen clears happened.
func (b *DummyBackend) ClearCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clears
}

// FinishCount reports how many times Finish ran. The controller keeps
// this at one.
func (b *DummyBackend) FinishCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.finishes
}
