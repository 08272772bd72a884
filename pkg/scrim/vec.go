package scrim

// Vec is a position or size in character cells. X is the column axis, Y
// the row axis, with the origin at the top-left of the surface.
type Vec struct {
	X, Y int
}

// XY builds a Vec from a column and a row.
func XY(x, y int) Vec { return Vec{X: x, Y: y} }

// Add returns v + o, componentwise.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o, componentwise. Components may go negative; use
// [Vec.SatSub] when a size is being shrunk.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// SatSub returns v - o with each component clamped at zero.
func (v Vec) SatSub(o Vec) Vec {
	return Vec{max(0, v.X-o.X), max(0, v.Y-o.Y)}
}

// Min returns the componentwise minimum of v and o.
func (v Vec) Min(o Vec) Vec { return Vec{min(v.X, o.X), min(v.Y, o.Y)} }

// Max returns the componentwise maximum of v and o.
func (v Vec) Max(o Vec) Vec { return Vec{max(v.X, o.X), max(v.Y, o.Y)} }

// FitsIn reports whether v fits inside o, componentwise.
func (v Vec) FitsIn(o Vec) bool { return v.X <= o.X && v.Y <= o.Y }

// Rect is an axis-aligned rectangle of cells.
type Rect struct {
	TopLeft Vec
	Size    Vec
}

// Contains reports whether the cell at pos lies inside the rectangle.
func (r Rect) Contains(pos Vec) bool {
	return pos.X >= r.TopLeft.X && pos.Y >= r.TopLeft.Y &&
		pos.X < r.TopLeft.X+r.Size.X && pos.Y < r.TopLeft.Y+r.Size.Y
}
