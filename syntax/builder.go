package syntax

// Ref identifies a node under construction inside a Builder. Refs are
// only meaningful to the Builder that issued them.
type Ref int32

// Builder constructs a Tree bottom-up into a single arena. A parsing
// engine creates leaves for its tokens, wraps them into interior
// nodes, and calls Finish with the root.
type Builder struct {
	lang   *Language
	source []byte
	nodes  []nodeData
}

// NewBuilder returns a Builder for a tree over source, typed against
// lang's symbol table.
func NewBuilder(lang *Language, source []byte) *Builder {
	return &Builder{lang: lang, source: source}
}

// Leaf adds a token node with an explicit span.
func (b *Builder) Leaf(sym Symbol, r Range) Ref {
	b.nodes = append(b.nodes, nodeData{
		symbol:     sym,
		startByte:  r.StartByte,
		endByte:    r.EndByte,
		startPoint: r.StartPoint,
		endPoint:   r.EndPoint,
		parent:     noNode,
	})
	return Ref(len(b.nodes) - 1)
}

// Interior adds a node over previously built children. Its span is
// the hull of the children's spans: the first child's start and the
// last child's end. Each Ref may be claimed by one parent only; a
// childless interior node gets a zero span.
func (b *Builder) Interior(sym Symbol, children []Ref) Ref {
	id := nodeID(len(b.nodes))
	data := nodeData{
		symbol: sym,
		parent: noNode,
	}
	if len(children) > 0 {
		first := &b.nodes[children[0]]
		last := &b.nodes[children[len(children)-1]]
		data.startByte = first.startByte
		data.endByte = last.endByte
		data.startPoint = first.startPoint
		data.endPoint = last.endPoint
		data.children = make([]nodeID, len(children))
	}
	for i, c := range children {
		data.children[i] = nodeID(c)
		child := &b.nodes[c]
		child.parent = id
		child.childIndex = int32(i)
	}
	b.nodes = append(b.nodes, data)
	return id.ref()
}

func (id nodeID) ref() Ref { return Ref(id) }

// Finish seals the arena into a Tree rooted at root. The Builder must
// not be used afterwards.
func (b *Builder) Finish(root Ref) *Tree {
	t := &Tree{
		lang:   b.lang,
		source: b.source,
		nodes:  b.nodes,
		root:   nodeID(root),
	}
	b.nodes = nil
	return t
}
