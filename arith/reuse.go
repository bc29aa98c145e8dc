package arith

import "github.com/dhamidi/arbor/syntax"

// reuseWalker advances through an edited base tree in pre-order,
// offering the subtrees that survived the edits as splice candidates.
// Queries must come in ascending byte order, which a left-to-right
// parse guarantees; candidates for one offset are cached so the
// parser can probe the same position with different expectations.
type reuseWalker struct {
	newSource []byte
	stack     []syntax.Node

	cacheOffset int
	cacheValid  bool
	cache       []syntax.Node
}

func newReuseWalker(base *syntax.Tree, newSource []byte) *reuseWalker {
	w := &reuseWalker{newSource: newSource}
	w.stack = append(w.stack, base.RootNode())
	return w
}

// candidateAt returns the first reusable subtree starting exactly at
// offset that the accept callback approves, outermost first.
func (w *reuseWalker) candidateAt(offset int, accept func(syntax.Node) bool) (syntax.Node, bool) {
	if !w.cacheValid || w.cacheOffset != offset {
		w.fill(offset)
	}
	for _, n := range w.cache {
		if accept(n) {
			return n, true
		}
	}
	return syntax.Node{}, false
}

// fill advances the pre-order walk to offset and collects every
// intact subtree starting there. Subtrees ending at or before the
// offset are dropped wholesale; subtrees touched by an edit are
// descended, since an edit inside a node says nothing about its
// untouched children.
func (w *reuseWalker) fill(offset int) {
	w.cache = w.cache[:0]
	w.cacheOffset = offset
	w.cacheValid = true

	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		if top.StartByte() > offset {
			return
		}
		w.stack = w.stack[:len(w.stack)-1]
		if top.EndByte() <= offset {
			continue
		}
		if top.StartByte() == offset && w.reusable(top) {
			w.cache = append(w.cache, top)
		}
		for i := top.ChildCount() - 1; i >= 0; i-- {
			w.stack = append(w.stack, top.Child(i))
		}
	}
}

// reusable reports whether the subtree survived the edits: nothing in
// it was touched, and its translated span still falls inside the new
// source.
func (w *reuseWalker) reusable(n syntax.Node) bool {
	return !n.HasChanges() && n.EndByte() <= len(w.newSource)
}
