package scrim

import "github.com/pkg/errors"

// ── Placement ───────────────────────────────────────────────────────────────

type placementKind uint8

const (
	placeCentered placementKind = iota
	placeAt
	placeFullscreen
)

// Placement describes where a layer sits in the viewport.
type Placement struct {
	kind placementKind
	pos  Vec
}

// Centered places a floating layer in the middle of the viewport.
func Centered() Placement { return Placement{kind: placeCentered} }

// At places a floating layer with its top-left at pos.
func At(pos Vec) Placement { return Placement{kind: placeAt, pos: pos} }

// FullScreen makes the layer occupy the whole viewport, drawn without a
// shadow.
func FullScreen() Placement { return Placement{kind: placeFullscreen} }

// LayerPosition addresses a layer inside a stack.
type LayerPosition struct {
	fromBack bool
	index    int
}

// FromFront addresses the i-th layer counting from the top (0 = topmost).
func FromFront(i int) LayerPosition { return LayerPosition{index: i} }

// FromBack addresses the i-th layer counting from the bottom (0 = deepest).
func FromBack(i int) LayerPosition { return LayerPosition{fromBack: true, index: i} }

// resolve maps the position onto an index into a stack of n layers,
// 0-indexed from the bottom, or -1 when out of range.
func (p LayerPosition) resolve(n int) int {
	i := p.index
	if !p.fromBack {
		i = n - 1 - p.index
	}
	if i < 0 || i >= n {
		return -1
	}
	return i
}

// ── StackView ───────────────────────────────────────────────────────────────

type stackLayer struct {
	view      View
	placement Placement

	// committed by Layout
	offset Vec
	size   Vec
}

// StackView is an ordered stack of overlay layers, bottom to top. The top
// layer is the active one: it receives input and the focus path. Floating
// layers are sized to their content, filled with the view background, and
// shadowed; fullscreen layers cover the viewport bare.
//
// A stack holding more than one layer is a decision node for path
// selectors, with branch indices counted from the bottom.
type StackView struct {
	layers   []stackLayer
	lastSize Vec
}

// NewStackView builds an empty stack.
func NewStackView() *StackView { return &StackView{} }

// AddLayer pushes a centered floating layer on top.
func (s *StackView) AddLayer(v View) {
	s.push(v, Centered())
}

// AddLayerAt pushes a floating layer with an explicit top-left position.
func (s *StackView) AddLayerAt(pos Vec, v View) {
	s.push(v, At(pos))
}

// AddFullscreenLayer pushes a layer covering the whole viewport.
func (s *StackView) AddFullscreenLayer(v View) {
	s.push(v, FullScreen())
}

func (s *StackView) push(v View, pl Placement) {
	s.layers = append(s.layers, stackLayer{view: v, placement: pl})
}

// PopLayer removes and returns the top layer's view, or nil when the
// stack is empty.
func (s *StackView) PopLayer() View {
	if len(s.layers) == 0 {
		return nil
	}
	v := s.layers[len(s.layers)-1].view
	s.layers = s.layers[:len(s.layers)-1]
	return v
}

// RemoveLayer removes the layer at the given position and returns its
// view, or nil when out of range.
func (s *StackView) RemoveLayer(pos LayerPosition) View {
	i := pos.resolve(len(s.layers))
	if i < 0 {
		return nil
	}
	v := s.layers[i].view
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	return v
}

// FindLayerFromName locates the layer containing a view registered
// under name, searching from the top.
func (s *StackView) FindLayerFromName(name string) (LayerPosition, bool) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		found := false
		s.layers[i].view.CallOnAny(ByName(name), func(View) { found = true })
		if found {
			return FromBack(i), true
		}
	}
	return LayerPosition{}, false
}

// LayerCount returns how many layers the stack holds.
func (s *StackView) LayerCount() int { return len(s.layers) }

// Layer returns the view at the given position, or nil when out of range.
func (s *StackView) Layer(pos LayerPosition) View {
	i := pos.resolve(len(s.layers))
	if i < 0 {
		return nil
	}
	return s.layers[i].view
}

// RepositionLayer gives an existing layer a new placement, keeping its
// state and stack order.
func (s *StackView) RepositionLayer(pos LayerPosition, pl Placement) error {
	i := pos.resolve(len(s.layers))
	if i < 0 {
		return ErrViewNotFound
	}
	s.layers[i].placement = pl
	return nil
}

// MoveToFront raises a layer to the top of the stack.
func (s *StackView) MoveToFront(pos LayerPosition) error {
	i := pos.resolve(len(s.layers))
	if i < 0 {
		return ErrViewNotFound
	}
	moved := s.layers[i]
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	s.layers = append(s.layers, moved)
	return nil
}

// MoveToBack lowers a layer to the bottom of the stack.
func (s *StackView) MoveToBack(pos LayerPosition) error {
	i := pos.resolve(len(s.layers))
	if i < 0 {
		return ErrViewNotFound
	}
	moved := s.layers[i]
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	s.layers = append([]stackLayer{moved}, s.layers...)
	return nil
}

// LayerSizes returns the committed size of every layer, bottom to top.
// The controller compares these across frames to decide when the viewport
// needs a full clear.
func (s *StackView) LayerSizes() []Vec {
	sizes := make([]Vec, len(s.layers))
	for i := range s.layers {
		sizes[i] = s.layers[i].size
	}
	return sizes
}

// ── View capability ─────────────────────────────────────────────────────────

func (s *StackView) RequiredSize(available Vec) Vec {
	want := XY(0, 0)
	for i := range s.layers {
		if s.layers[i].placement.kind == placeFullscreen {
			want = want.Max(available)
			continue
		}
		want = want.Max(s.layers[i].view.RequiredSize(available))
	}
	return want
}

func (s *StackView) Layout(size Vec) {
	s.lastSize = size
	for i := range s.layers {
		ly := &s.layers[i]
		switch ly.placement.kind {
		case placeFullscreen:
			ly.offset = XY(0, 0)
			ly.size = size
		case placeAt:
			ly.size = ly.view.RequiredSize(size).Min(size)
			ly.offset = ly.placement.pos
		default:
			ly.size = ly.view.RequiredSize(size).Min(size)
			ly.offset = size.SatSub(ly.size)
			ly.offset = XY(ly.offset.X/2, ly.offset.Y/2)
		}
		ly.view.Layout(ly.size)
	}
}

// backgroundLen is the number of contiguous fullscreen layers at the
// bottom of the stack; they form the background drawing pass.
func (s *StackView) backgroundLen() int {
	n := 0
	for i := range s.layers {
		if s.layers[i].placement.kind != placeFullscreen {
			break
		}
		n++
	}
	return n
}

// DrawBg draws the background pass. The controller draws the menubar
// between the two passes so it covers background layers but not dialogs.
func (s *StackView) DrawBg(p *Printer) {
	for i := 0; i < s.backgroundLen(); i++ {
		s.drawLayer(p, i)
	}
}

// DrawFg draws every layer above the background pass.
func (s *StackView) DrawFg(p *Printer) {
	for i := s.backgroundLen(); i < len(s.layers); i++ {
		s.drawLayer(p, i)
	}
}

func (s *StackView) Draw(p *Printer) {
	s.DrawBg(p)
	s.DrawFg(p)
}

func (s *StackView) drawLayer(p *Printer, i int) {
	ly := &s.layers[i]
	focused := p.IsFocused() && i == len(s.layers)-1

	if ly.placement.kind != placeFullscreen {
		theme := p.Theme()
		if theme.Shadow {
			shadow := p.Styled(ColorPair{
				Front: theme.Palette[RoleShadow],
				Back:  theme.Palette[RoleShadow],
			})
			shadow.FillRect(ly.offset.Add(XY(1, 1)), ly.size, ' ')
		}
		p.Plain().FillRect(ly.offset, ly.size, ' ')
	}

	sub := p.Offset(ly.offset).Cropped(ly.size).Focused(focused)
	ly.view.Draw(&sub)
}

// OnEvent routes everything to the top layer; layers below are modal-
// blocked.
func (s *StackView) OnEvent(ev Event) EventResult {
	if len(s.layers) == 0 {
		return Ignored()
	}
	top := &s.layers[len(s.layers)-1]
	return top.view.OnEvent(Relativized(ev, top.offset))
}

func (s *StackView) TakeFocus(dir Direction) bool {
	if len(s.layers) == 0 {
		return false
	}
	return s.layers[len(s.layers)-1].view.TakeFocus(dir)
}

func (s *StackView) CallOnAny(sel Selector, fn func(View)) {
	callOnChildren(s, len(s.layers), func(i int) View { return s.layers[i].view }, sel, fn)
}

func (s *StackView) FocusView(sel Selector) error {
	switch sel := sel.(type) {
	case ByPath:
		if len(sel) == 0 {
			if s.TakeFocus(DirNone) {
				return nil
			}
			return ErrFocusDeclined
		}
		switch len(s.layers) {
		case 0:
			return ErrViewNotFound
		case 1:
			return s.layers[0].view.FocusView(sel)
		default:
			i := sel[0]
			if i < 0 || i >= len(s.layers) {
				return ErrViewNotFound
			}
			return s.layers[i].view.FocusView(sel[1:])
		}
	default:
		// Search from the top: the active layer should win name ties.
		for i := len(s.layers) - 1; i >= 0; i-- {
			err := s.layers[i].view.FocusView(sel)
			if err == nil || errors.Is(err, ErrFocusDeclined) {
				return err
			}
		}
		return ErrViewNotFound
	}
}
