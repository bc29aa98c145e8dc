package syntax

import "sort"

// Cursor is a stateful depth-first walker over one Tree: a current
// node plus an explicit stack of the ancestors it descended through.
// Cursors only read the tree; any number of them can walk the same
// tree without interfering. A cursor must not outlive its tree.
type Cursor struct {
	tree  *Tree
	stack []nodeID
	id    nodeID
}

// Walk returns a new cursor positioned at the tree's root.
func (t *Tree) Walk() *Cursor {
	return &Cursor{tree: t, id: t.root}
}

// Node returns a handle to the cursor's current node.
func (c *Cursor) Node() Node { return Node{tree: c.tree, id: c.id} }

// Reset moves the cursor back to the root, clearing the ancestor
// stack.
func (c *Cursor) Reset() {
	c.stack = c.stack[:0]
	c.id = c.tree.root
}

// GotoFirstChild moves to the current node's first child. It returns
// false, leaving the cursor unchanged, when the node is a leaf.
func (c *Cursor) GotoFirstChild() bool {
	kids := c.tree.nodes[c.id].children
	if len(kids) == 0 {
		return false
	}
	c.stack = append(c.stack, c.id)
	c.id = kids[0]
	return true
}

// GotoNextSibling moves to the current node's next sibling. It
// returns false, leaving the cursor unchanged, at a last sibling or
// at the root.
func (c *Cursor) GotoNextSibling() bool {
	d := &c.tree.nodes[c.id]
	if d.parent == noNode {
		return false
	}
	siblings := c.tree.nodes[d.parent].children
	next := int(d.childIndex) + 1
	if next >= len(siblings) {
		return false
	}
	c.id = siblings[next]
	return true
}

// GotoParent pops the ancestor stack. It returns false, leaving the
// cursor unchanged, at the root.
func (c *Cursor) GotoParent() bool {
	if len(c.stack) == 0 {
		return false
	}
	c.id = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return true
}

// GotoFirstChildForByte descends to the first child of the current
// node whose span ends after the given byte offset, binary-searching
// the ordered child spans, and returns that child's 0-based index.
//
// The cursor is left unmoved and an error returned when the offset
// lies outside the current node's span (ErrOutOfBounds) or the node
// has no children (ErrNoChildren).
func (c *Cursor) GotoFirstChildForByte(offset int) (int, error) {
	d := &c.tree.nodes[c.id]
	if len(d.children) == 0 {
		return -1, ErrNoChildren
	}
	if offset < d.startByte || offset >= d.endByte {
		return -1, ErrOutOfBounds
	}
	nodes := c.tree.nodes
	kids := d.children
	i := sort.Search(len(kids), func(i int) bool {
		return nodes[kids[i]].endByte > offset
	})
	if i == len(kids) {
		return -1, ErrOutOfBounds
	}
	c.stack = append(c.stack, c.id)
	c.id = kids[i]
	return i, nil
}

// Read-only views of the current node. Repeated calls without motion
// always return the same values.

// Kind returns the current node's type name.
func (c *Cursor) Kind() string { return c.Node().Kind() }

// IsNamed reports whether the current node is named.
func (c *Cursor) IsNamed() bool { return c.Node().IsNamed() }

// StartByte returns the current node's start offset.
func (c *Cursor) StartByte() int { return c.Node().StartByte() }

// EndByte returns the current node's end offset.
func (c *Cursor) EndByte() int { return c.Node().EndByte() }

// StartPoint returns the current node's start position.
func (c *Cursor) StartPoint() Point { return c.Node().StartPoint() }

// EndPoint returns the current node's end position.
func (c *Cursor) EndPoint() Point { return c.Node().EndPoint() }
