package syntax

// nodeID indexes a tree's arena. Every structural link between nodes
// is a nodeID resolved through the owning tree, never a Go pointer,
// so trees have no reference cycles and edits can rewrite one arena
// slot while every outstanding handle observes the update.
type nodeID int32

const noNode nodeID = -1

// nodeData is one arena slot. Spans are mutated in place by
// Tree.Edit; everything else is fixed once the tree is built.
type nodeData struct {
	symbol     Symbol
	changed    bool
	startByte  int
	endByte    int
	startPoint Point
	endPoint   Point
	parent     nodeID
	childIndex int32
	children   []nodeID
}

// Node is a handle to one position in a Tree: a (tree, id) pair.
// Handles are values and compare with ==; two handles referring to
// the same tree position are equal and answer every query
// identically. The zero Node is invalid.
type Node struct {
	tree *Tree
	id   nodeID
}

// IsValid reports whether the handle refers to a node at all.
// Navigation off the edge of the tree yields invalid handles.
func (n Node) IsValid() bool { return n.tree != nil }

func (n Node) data() *nodeData { return &n.tree.nodes[n.id] }

// Kind returns the node's type name, resolved through the tree's
// language.
func (n Node) Kind() string {
	return n.tree.lang.SymbolName(n.data().symbol)
}

// Symbol returns the node's interned type tag.
func (n Node) Symbol() Symbol { return n.data().symbol }

// IsNamed reports whether the node is a named grammar construct, as
// opposed to anonymous syntax like operators or punctuation.
func (n Node) IsNamed() bool {
	return n.tree.lang.SymbolIsNamed(n.data().symbol)
}

// HasChanges reports whether an edit applied to this tree touched the
// node's span. Shifted-only nodes do not count as changed.
func (n Node) HasChanges() bool { return n.data().changed }

// StartByte returns the byte offset where the node begins.
func (n Node) StartByte() int { return n.data().startByte }

// EndByte returns the byte offset where the node ends (exclusive).
func (n Node) EndByte() int { return n.data().endByte }

// StartPoint returns the row/column position where the node begins.
func (n Node) StartPoint() Point { return n.data().startPoint }

// EndPoint returns the row/column position where the node ends.
func (n Node) EndPoint() Point { return n.data().endPoint }

// Range returns the node's full span.
func (n Node) Range() Range {
	d := n.data()
	return Range{
		StartByte:  d.startByte,
		EndByte:    d.endByte,
		StartPoint: d.startPoint,
		EndPoint:   d.endPoint,
	}
}

// Text returns the source text covered by the node. After edits the
// tree's stored source is stale, so the span is clamped to it.
func (n Node) Text() string {
	d := n.data()
	src := n.tree.source
	start, end := d.startByte, d.endByte
	if start > len(src) {
		start = len(src)
	}
	if end > len(src) {
		end = len(src)
	}
	if start >= end {
		return ""
	}
	return string(src[start:end])
}

// Parent returns the node's parent, or an invalid handle at the root.
func (n Node) Parent() Node {
	p := n.data().parent
	if p == noNode {
		return Node{}
	}
	return Node{tree: n.tree, id: p}
}

// ChildCount returns the number of children, named and anonymous.
func (n Node) ChildCount() int { return len(n.data().children) }

// Child returns the i-th child, or an invalid handle if i is out of
// range.
func (n Node) Child(i int) Node {
	kids := n.data().children
	if i < 0 || i >= len(kids) {
		return Node{}
	}
	return Node{tree: n.tree, id: kids[i]}
}

// FirstChild returns the leftmost child, if any.
func (n Node) FirstChild() Node { return n.Child(0) }

// LastChild returns the rightmost child, if any.
func (n Node) LastChild() Node { return n.Child(n.ChildCount() - 1) }

// NextSibling returns the node's right neighbor under the same
// parent, if any.
func (n Node) NextSibling() Node {
	d := n.data()
	if d.parent == noNode {
		return Node{}
	}
	return Node{tree: n.tree, id: d.parent}.Child(int(d.childIndex) + 1)
}

// PrevSibling returns the node's left neighbor under the same parent,
// if any.
func (n Node) PrevSibling() Node {
	d := n.data()
	if d.parent == noNode {
		return Node{}
	}
	return Node{tree: n.tree, id: d.parent}.Child(int(d.childIndex) - 1)
}

func (n Node) String() string {
	if !n.IsValid() {
		return "<none>"
	}
	return n.Kind() + " " + n.Range().String()
}
