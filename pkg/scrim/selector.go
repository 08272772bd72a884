package scrim

import "github.com/pkg/errors"

// Lookup and focus failures. Both are ordinary recoverable conditions:
// a miss leaves the tree and the focus path exactly as they were.
var (
	ErrViewNotFound  = errors.New("view not found")
	ErrFocusDeclined = errors.New("view declined focus")
)

// Selector addresses a view in the tree.
//
// A [ByName] selector matches named views anywhere below the starting
// point, depth-first. A [ByPath] selector descends structurally: each
// index picks a branch at the next decision node (a node with more than
// one child); wrappers and single-child nodes pass it through untouched,
// and the node reached when the path is exhausted is the match. Paths are
// positional, so they are invalidated by tree shape changes and simply
// stop matching.
type Selector interface {
	selector()
}

// ByName selects views wrapped with the given name.
type ByName string

// ByPath selects a view by branch indices at decision nodes.
type ByPath []int

func (ByName) selector() {}
func (ByPath) selector() {}

// callOnMatch applies the self-match rule shared by every non-wrapper
// view: an exhausted path selector matches the node it landed on. Name
// matches are the named wrapper's job.
func callOnMatch(v View, sel Selector, fn func(View)) {
	if path, ok := sel.(ByPath); ok && len(path) == 0 {
		fn(v)
	}
}

// focusMatch is the FocusView counterpart of callOnMatch: an exhausted
// path matches v, which must then accept focus.
func focusMatch(v View, sel Selector) (matched bool, err error) {
	path, ok := sel.(ByPath)
	if !ok || len(path) != 0 {
		return false, nil
	}
	if !v.TakeFocus(DirNone) {
		return true, ErrFocusDeclined
	}
	return true, nil
}

// callOnChildren routes a selector through a container's children. Name
// selectors visit every child; path selectors follow the decision-node
// rule: an exhausted path matches the container itself, a container with a
// single child forwards the path untouched, and a container with several
// children consumes one branch index.
func callOnChildren(self View, n int, child func(int) View, sel Selector, fn func(View)) {
	path, isPath := sel.(ByPath)
	if !isPath {
		for i := 0; i < n; i++ {
			child(i).CallOnAny(sel, fn)
		}
		return
	}
	if len(path) == 0 {
		fn(self)
		return
	}
	switch n {
	case 0:
	case 1:
		child(0).CallOnAny(path, fn)
	default:
		if i := path[0]; i >= 0 && i < n {
			child(i).CallOnAny(path[1:], fn)
		}
	}
}

// ── Finders ─────────────────────────────────────────────────────────────────

// Find locates the first view below root, in depth-first order, that
// carries the given name and has concrete type T. A name match with the
// wrong type is skipped, never an error.
func Find[T any](root View, name string) (T, bool) {
	var found T
	ok := false
	root.CallOnAny(ByName(name), func(v View) {
		if ok {
			return
		}
		if t, match := v.(T); match {
			found = t
			ok = match
		}
	})
	return found, ok
}

// CallOn runs fn on the first name-and-type match below root, reporting
// whether a match was found.
func CallOn[T any](root View, name string, fn func(T)) bool {
	t, ok := Find[T](root, name)
	if ok {
		fn(t)
	}
	return ok
}

// FindAt descends by path from root and returns the view the path lands
// on, if the tree shape still matches.
func FindAt(root View, path ...int) (View, bool) {
	var found View
	root.CallOnAny(ByPath(path), func(v View) {
		if found == nil {
			found = v
		}
	})
	return found, found != nil
}

// FindID locates a named view.
//
// Deprecated: identifiers are now names; use [Find].
func FindID[T any](root View, id string) (T, bool) {
	return Find[T](root, id)
}

// CallOnID runs fn on a named view.
//
// Deprecated: identifiers are now names; use [CallOn].
func CallOnID[T any](root View, id string, fn func(T)) bool {
	return CallOn[T](root, id, fn)
}
