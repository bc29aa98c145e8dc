package syntax

import "sort"

// ChangedRanges compares the tree against another revision of the
// same document and returns the ordered, disjoint ranges of text
// whose syntactic interpretation differs between the two. The
// receiver must be the pre-edit tree with its edits already applied;
// other must be the result of re-parsing with the receiver as base.
// Text that merely shifted position does not count as changed.
//
// Passing a nil tree fails with ErrNilTree. Comparing a tree against
// itself yields no ranges.
func (t *Tree) ChangedRanges(other *Tree) ([]Range, error) {
	if other == nil {
		return nil, ErrNilTree
	}
	var acc []Range
	diffNodes(t.RootNode(), other.RootNode(), &acc)
	return mergeRanges(acc), nil
}

// diffNodes walks a pair of corresponding nodes. A pair whose kind,
// span, and child count all match, and whose pre-edit node was never
// touched by an edit, is structurally unchanged: the whole subtree
// pair is skipped. Matching interiors are descended pairwise to
// narrow the report; any other mismatch contributes the union of both
// spans, the smallest region whose reading changed.
func diffNodes(a, b Node, acc *[]Range) {
	if a.Kind() == b.Kind() && a.ChildCount() == b.ChildCount() {
		sameSpan := a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
		if sameSpan && !a.HasChanges() {
			return
		}
		if a.ChildCount() > 0 {
			for i := 0; i < a.ChildCount(); i++ {
				diffNodes(a.Child(i), b.Child(i), acc)
			}
			return
		}
	}
	*acc = append(*acc, unionRange(a.Range(), b.Range()))
}

// mergeRanges sorts the accumulated ranges and merges overlapping or
// touching neighbors into a disjoint ascending sequence.
func mergeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].StartByte < ranges[j].StartByte
	})
	out := ranges[:1]
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if r.StartByte <= last.EndByte {
			if r.EndByte > last.EndByte {
				last.EndByte = r.EndByte
				last.EndPoint = r.EndPoint
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
