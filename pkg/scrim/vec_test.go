package scrim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecArithmetic(t *testing.T) {
	assert.Equal(t, XY(5, 7), XY(2, 3).Add(XY(3, 4)))
	assert.Equal(t, XY(-1, 1), XY(2, 3).Sub(XY(3, 2)))

	// SatSub clamps each component independently.
	assert.Equal(t, XY(0, 1), XY(2, 3).SatSub(XY(3, 2)))
	assert.Equal(t, XY(0, 0), XY(1, 1).SatSub(XY(5, 5)))

	assert.Equal(t, XY(2, 2), XY(2, 3).Min(XY(4, 2)))
	assert.Equal(t, XY(4, 3), XY(2, 3).Max(XY(4, 2)))
}

func TestVecFitsIn(t *testing.T) {
	assert.True(t, XY(3, 3).FitsIn(XY(3, 3)))
	assert.True(t, XY(2, 3).FitsIn(XY(3, 3)))
	assert.False(t, XY(4, 3).FitsIn(XY(3, 3)))
	assert.False(t, XY(3, 4).FitsIn(XY(3, 3)))
}

func TestRectContains(t *testing.T) {
	r := Rect{TopLeft: XY(2, 1), Size: XY(3, 2)}

	assert.True(t, r.Contains(XY(2, 1)), "top-left corner is inside")
	assert.True(t, r.Contains(XY(4, 2)), "bottom-right cell is inside")
	assert.False(t, r.Contains(XY(5, 1)), "right edge is exclusive")
	assert.False(t, r.Contains(XY(2, 3)), "bottom edge is exclusive")
	assert.False(t, r.Contains(XY(1, 1)))
	assert.False(t, r.Contains(XY(2, 0)))
}

func TestRectEmpty(t *testing.T) {
	r := Rect{TopLeft: XY(2, 2), Size: XY(0, 0)}
	assert.False(t, r.Contains(XY(2, 2)), "empty rect contains nothing")
}
