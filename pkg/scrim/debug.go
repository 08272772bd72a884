package scrim

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// RingHandler is a [log/slog.Handler] that keeps the most recent
// records formatted in a fixed-size ring, so a [LogView] can show them
// without leaving the terminal UI. Wire it in however suits the app:
//
//	slog.SetDefault(slog.New(app.DebugHandler()))
//
// Handlers derived through WithAttrs and WithGroup share the same ring.
type RingHandler struct {
	buf    *ringBuf
	level  slog.Leveler
	attrs  []boundAttr
	prefix string // open groups, dot-joined
}

// boundAttr is an attribute fixed by WithAttrs, its key already
// qualified by the groups open at bind time.
type boundAttr struct {
	key   string
	value slog.Value
}

type ringBuf struct {
	mu    sync.Mutex
	lines []string
	max   int
}

// NewRingHandler returns a handler retaining the last capacity records
// at or above level. A nil level keeps everything down to debug.
func NewRingHandler(capacity int, level slog.Leveler) *RingHandler {
	if capacity < 1 {
		capacity = 1
	}
	if level == nil {
		level = slog.LevelDebug
	}
	return &RingHandler{buf: &ringBuf{max: capacity}, level: level}
}

// SetLevel changes the minimum level retained. Call it before the
// handler sees traffic; it is not synchronized with Handle.
func (h *RingHandler) SetLevel(level slog.Leveler) { h.level = level }

func (h *RingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *RingHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format("15:04:05"))
		b.WriteByte(' ')
	}
	b.WriteString(levelTag(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.key, a.value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", h.qualify(a.Key), a.Value.Resolve())
		return true
	})
	h.buf.push(b.String())
	return nil
}

func (h *RingHandler) qualify(key string) string {
	if h.prefix == "" {
		return key
	}
	return h.prefix + "." + key
}

func (h *RingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	bound := make([]boundAttr, 0, len(attrs))
	for _, a := range attrs {
		bound = append(bound, boundAttr{key: h.qualify(a.Key), value: a.Value.Resolve()})
	}
	clone.attrs = append(clone.attrs[:len(clone.attrs):len(clone.attrs)], bound...)
	return &clone
}

func (h *RingHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.prefix == "" {
		clone.prefix = name
	} else {
		clone.prefix += "." + name
	}
	return &clone
}

// Lines returns a copy of the retained records, oldest first. Safe to
// call from any goroutine.
func (h *RingHandler) Lines() []string {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()
	out := make([]string, len(h.buf.lines))
	copy(out, h.buf.lines)
	return out
}

func (rb *ringBuf) push(line string) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if len(rb.lines) == rb.max {
		copy(rb.lines, rb.lines[1:])
		rb.lines[len(rb.lines)-1] = line
		return
	}
	rb.lines = append(rb.lines, line)
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERR"
	case l >= slog.LevelWarn:
		return "WRN"
	case l >= slog.LevelInfo:
		return "INF"
	default:
		return "DBG"
	}
}

// LogView renders the tail of a [RingHandler] ring, newest line at the
// bottom. [App.ToggleDebugConsole] shows one fullscreen.
type LogView struct {
	BaseView
	handler  *RingHandler
	lastSize Vec
}

func NewLogView(h *RingHandler) *LogView { return &LogView{handler: h} }

func (v *LogView) RequiredSize(Vec) Vec {
	lines := v.handler.Lines()
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return XY(w, len(lines))
}

func (v *LogView) Layout(size Vec) { v.lastSize = size }

func (v *LogView) Draw(p *Printer) {
	lines := v.handler.Lines()
	if tail := p.Size().Y; len(lines) > tail {
		lines = lines[len(lines)-tail:]
	}
	for y, line := range lines {
		p.Plain().Print(XY(0, y), line)
	}
}

func (v *LogView) CallOnAny(sel Selector, fn func(View)) {
	callOnMatch(v, sel, fn)
}
