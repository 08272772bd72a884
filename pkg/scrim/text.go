package scrim

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TextView displays static multi-line text. It wants exactly the space
// its content occupies and never takes focus or consumes input.
type TextView struct {
	BaseView
	lines []string
}

// NewTextView builds a text view from content; lines split on newlines.
func NewTextView(content string) *TextView {
	t := &TextView{}
	t.SetContent(content)
	return t
}

// SetContent replaces the displayed text.
func (t *TextView) SetContent(content string) {
	t.lines = strings.Split(content, "\n")
}

// Content returns the displayed text.
func (t *TextView) Content() string {
	return strings.Join(t.lines, "\n")
}

// AppendLine adds one line to the end of the content.
func (t *TextView) AppendLine(line string) {
	t.lines = append(t.lines, line)
}

func (t *TextView) RequiredSize(Vec) Vec {
	w := 0
	for _, line := range t.lines {
		w = max(w, ansi.StringWidth(line))
	}
	return XY(w, len(t.lines))
}

func (t *TextView) Draw(p *Printer) {
	plain := p.Plain()
	for y, line := range t.lines {
		plain.Print(XY(0, y), line)
	}
}

func (t *TextView) CallOnAny(sel Selector, fn func(View)) {
	callOnMatch(t, sel, fn)
}
