// Package syntax implements an incremental concrete syntax tree: trees
// of typed, span-carrying nodes that can be translated through text
// edits without re-parsing, diffed against a re-parsed revision to find
// the ranges whose meaning changed, and walked with a stateful cursor.
//
// All offsets are byte offsets into the source text, and Point columns
// count bytes since the last newline. This single convention applies
// uniformly to node spans, edits, and reported ranges, so multi-byte
// codepoints need no special handling anywhere in the package.
package syntax

import "strconv"

// Point is a row/column position in a source text. Rows count newline
// characters before the position; columns count bytes after the last
// newline. Both are zero-based.
type Point struct {
	Row    int
	Column int
}

func (p Point) String() string {
	return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Column) + ")"
}

// Before reports whether p is strictly before q in document order.
func (p Point) Before(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Column < q.Column)
}

// pointSub returns a relative to b, where a is at or after b.
// The column is only meaningful relative to b when both share a row.
func pointSub(a, b Point) Point {
	if a.Row == b.Row {
		return Point{Row: 0, Column: a.Column - b.Column}
	}
	return Point{Row: a.Row - b.Row, Column: a.Column}
}

// pointAdd re-bases the relative point d onto a.
func pointAdd(a, d Point) Point {
	if d.Row == 0 {
		return Point{Row: a.Row, Column: a.Column + d.Column}
	}
	return Point{Row: a.Row + d.Row, Column: d.Column}
}

// PointAt derives the Point for a byte offset by scanning text. The
// offset is clamped to [0, len(text)].
func PointAt(text []byte, offset int) Point {
	if offset > len(text) {
		offset = len(text)
	}
	var p Point
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			p.Row++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}

// Range is a contiguous span of source text with both byte offsets and
// row/column points. EndByte is exclusive. The same shape is returned
// by Tree.EditedRange and Tree.ChangedRanges.
type Range struct {
	StartByte  int
	EndByte    int
	StartPoint Point
	EndPoint   Point
}

func (r Range) String() string {
	return "[" + strconv.Itoa(r.StartByte) + "," + strconv.Itoa(r.EndByte) + ") " +
		r.StartPoint.String() + "-" + r.EndPoint.String()
}
