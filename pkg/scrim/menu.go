package scrim

// MenuTree is the data behind a menu: an ordered list of items, each a
// leaf action, a nested subtree, or a delimiter. Trees are plain data;
// the menubar and its popups are the views that display them.
type MenuTree struct {
	items []MenuItem
}

// NewMenuTree builds an empty tree.
func NewMenuTree() *MenuTree { return &MenuTree{} }

// Leaf appends an action item, returning the tree for chaining.
func (t *MenuTree) Leaf(label string, cb Callback) *MenuTree {
	t.items = append(t.items, MenuItem{kind: menuLeaf, label: label, cb: cb})
	return t
}

// Subtree appends a nested menu.
func (t *MenuTree) Subtree(label string, sub *MenuTree) *MenuTree {
	t.items = append(t.items, MenuItem{kind: menuSubtree, label: label, sub: sub})
	return t
}

// Delimiter appends a separator row.
func (t *MenuTree) Delimiter() *MenuTree {
	t.items = append(t.items, MenuItem{kind: menuDelimiter})
	return t
}

// Len returns the number of items.
func (t *MenuTree) Len() int { return len(t.items) }

// IsEmpty reports whether the tree has no items.
func (t *MenuTree) IsEmpty() bool { return len(t.items) == 0 }

// Item returns the i-th item.
func (t *MenuTree) Item(i int) MenuItem { return t.items[i] }

type menuItemKind uint8

const (
	menuLeaf menuItemKind = iota
	menuSubtree
	menuDelimiter
)

// MenuItem is one entry in a [MenuTree]. The set of kinds is closed:
// leaf, subtree, delimiter.
type MenuItem struct {
	kind  menuItemKind
	label string
	cb    Callback
	sub   *MenuTree
}

// Label returns the display text; empty for delimiters.
func (i MenuItem) Label() string { return i.label }

// IsLeaf reports whether activating the item runs a callback.
func (i MenuItem) IsLeaf() bool { return i.kind == menuLeaf }

// IsSubtree reports whether the item opens a nested menu.
func (i MenuItem) IsSubtree() bool { return i.kind == menuSubtree }

// IsDelimiter reports whether the item is a separator.
func (i MenuItem) IsDelimiter() bool { return i.kind == menuDelimiter }

// Subtree returns the nested menu, or nil for other kinds.
func (i MenuItem) Subtree() *MenuTree { return i.sub }

// Callback returns the leaf action, or nil for other kinds.
func (i MenuItem) Callback() Callback { return i.cb }
