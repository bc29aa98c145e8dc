package syntax

// Tree owns a parsed syntax tree: the node arena, the source text it
// was produced from, the language it is typed against, and the queue
// of edits applied since it was produced.
//
// Trees are read-mostly: any number of cursors and node handles may
// read one tree concurrently, but Edit mutates shared span state and
// must not overlap with readers. The caller enforces that discipline;
// the tree takes no locks.
type Tree struct {
	lang   *Language
	source []byte
	nodes  []nodeData
	root   nodeID

	edits    []Edit
	editHull Range
}

// RootNode returns a handle to the tree's root.
func (t *Tree) RootNode() Node { return Node{tree: t, id: t.root} }

// Source returns the text the tree was parsed from. It is not
// updated by Edit, so it trails the spans once edits are pending.
func (t *Tree) Source() []byte { return t.source }

// Language returns the symbol table the tree is typed against.
func (t *Tree) Language() *Language { return t.lang }

// Edits returns the edits applied since the tree was produced, in
// application order. A re-parser consumes these to decide which
// subtrees survived.
func (t *Tree) Edits() []Edit { return t.edits }

// Edit translates every node span in the tree into the coordinates of
// the edited text, without changing the tree's shape: no node is
// added, removed, or re-typed. Nodes overlapping the replaced region
// are marked changed; nodes after it shift; nodes before it are left
// alone. Edits stack: each applies against the already-translated
// coordinates of the previous one.
//
// An edit whose indices contradict each other is rejected with
// ErrInconsistentEdit before any span is touched.
func (t *Tree) Edit(e Edit) error {
	if err := e.validate(); err != nil {
		return err
	}
	if len(t.edits) == 0 {
		t.editHull = e.NewRange()
	} else {
		t.editHull = unionRange(e.applyToRange(t.editHull), e.NewRange())
	}
	for i := range t.nodes {
		e.applyToSpan(&t.nodes[i])
	}
	t.edits = append(t.edits, e)
	return nil
}

// EditedRange returns the smallest range covering every edit applied
// since the tree was produced, expanded outward to the boundaries of
// the tokens the edits landed in. It returns nil exactly when no edit
// has been applied.
func (t *Tree) EditedRange() *Range {
	if len(t.edits) == 0 {
		return nil
	}
	var hull Range
	found := false
	for i := range t.nodes {
		d := &t.nodes[i]
		if len(d.children) > 0 || !d.changed {
			continue
		}
		r := Range{
			StartByte:  d.startByte,
			EndByte:    d.endByte,
			StartPoint: d.startPoint,
			EndPoint:   d.endPoint,
		}
		if !found {
			hull = r
			found = true
		} else {
			hull = unionRange(hull, r)
		}
	}
	if !found {
		// Every edit fell between tokens; report the raw edit hull.
		hull = t.editHull
	}
	return &hull
}

func unionRange(a, b Range) Range {
	out := a
	if b.StartByte < out.StartByte {
		out.StartByte = b.StartByte
		out.StartPoint = b.StartPoint
	}
	if b.EndByte > out.EndByte {
		out.EndByte = b.EndByte
		out.EndPoint = b.EndPoint
	}
	return out
}
