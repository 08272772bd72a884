package scrim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectorTree() (*LinearLayout, *TextView, *Button, *TextView) {
	title := NewTextView("Top")
	ok := NewButton("OK", nil)
	dup := NewTextView("Dup")
	root := NewVerticalLayout().
		AddChild(Named("title", title)).
		AddChild(NewHorizontalLayout().
			AddChild(Named("ok", ok)).
			AddChild(Named("title", dup)))
	return root, title, ok, dup
}

func TestFindByName(t *testing.T) {
	root, title, ok, _ := selectorTree()

	got, found := Find[*TextView](root, "title")
	require.True(t, found)
	assert.Same(t, title, got, "lookups yield the inner view, not the wrapper")

	btn, found := Find[*Button](root, "ok")
	require.True(t, found)
	assert.Same(t, ok, btn)

	_, found = Find[*TextView](root, "missing")
	assert.False(t, found)
}

func TestFindDuplicateNamesTakeFirst(t *testing.T) {
	root, title, _, dup := selectorTree()

	got, found := Find[*TextView](root, "title")
	require.True(t, found)
	assert.Same(t, title, got)
	assert.NotSame(t, dup, got)
}

func TestFindTypeMismatchSkips(t *testing.T) {
	root, _, _, dup := selectorTree()

	// The first "title" is a TextView; asking for a Button under that
	// name skips it without error and keeps scanning.
	_, found := Find[*Button](root, "title")
	assert.False(t, found)

	// A later duplicate with the right type still wins.
	views := []View{}
	root.CallOnAny(ByName("title"), func(v View) { views = append(views, v) })
	require.Len(t, views, 2)
	assert.Same(t, dup, views[1])
}

func TestCallOn(t *testing.T) {
	root, _, _, _ := selectorTree()

	called := false
	ok := CallOn(root, "title", func(tv *TextView) {
		called = true
		tv.SetContent("changed")
	})
	assert.True(t, ok)
	assert.True(t, called)

	got, _ := Find[*TextView](root, "title")
	assert.Equal(t, "changed", got.Content())

	assert.False(t, CallOn(root, "missing", func(*TextView) {}))
}

func TestFindAtDecisionNodes(t *testing.T) {
	root, title, ok, dup := selectorTree()

	// An empty path lands on the starting node itself.
	v, found := FindAt(root)
	require.True(t, found)
	assert.Same(t, root, v)

	// Each index picks a branch at a node with several children; the
	// named wrappers in between stay invisible.
	v, found = FindAt(root, 0)
	require.True(t, found)
	assert.Same(t, title, v)

	v, found = FindAt(root, 1, 0)
	require.True(t, found)
	assert.Same(t, ok, v)

	v, found = FindAt(root, 1, 1)
	require.True(t, found)
	assert.Same(t, dup, v)
}

func TestFindAtSingleChildPassthrough(t *testing.T) {
	_, _, ok, dup := selectorTree()

	inner := NewHorizontalLayout().
		AddChild(Named("ok", ok)).
		AddChild(Named("title", dup))
	// A container with one child is not a decision node, so the path
	// skips it without consuming an index.
	outer := NewVerticalLayout().AddChild(inner)

	v, found := FindAt(outer, 1)
	require.True(t, found)
	assert.Same(t, dup, v)
}

func TestFindAtStalePath(t *testing.T) {
	root, _, _, _ := selectorTree()

	_, found := FindAt(root, 5)
	assert.False(t, found, "out-of-range branches stop matching")

	_, found = FindAt(root, 0, 0, 0)
	assert.False(t, found, "paths deeper than the tree stop matching")
}

func TestFindIDBackCompat(t *testing.T) {
	root, title, _, _ := selectorTree()

	got, found := FindID[*TextView](root, "title")
	require.True(t, found)
	assert.Same(t, title, got)

	called := false
	assert.True(t, CallOnID(root, "title", func(*TextView) { called = true }))
	assert.True(t, called)
}
