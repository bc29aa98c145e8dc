package syntax

// Edit describes a single text replacement: the bytes in
// [StartByte, OldEndByte) were replaced by new text ending at
// NewEndByte. The three points must correspond to the three byte
// offsets. Applying an Edit to a tree translates every node span into
// the new text's coordinates without re-parsing.
type Edit struct {
	StartByte  int
	OldEndByte int
	NewEndByte int

	StartPoint  Point
	OldEndPoint Point
	NewEndPoint Point
}

func (e Edit) validate() error {
	if e.StartByte > e.OldEndByte || e.NewEndByte < e.StartByte {
		return ErrInconsistentEdit
	}
	return nil
}

// translate re-bases a point at or after the edit's old end into the
// new text's coordinates.
func (e Edit) translate(p Point) Point {
	return pointAdd(e.NewEndPoint, pointSub(p, e.OldEndPoint))
}

// applyToSpan rewrites one node's span in place.
//
// Three cases: spans entirely before the edit are untouched; spans
// starting at or after the old end shift by the edit's delta; spans
// straddling the replaced region keep their start (unless it was
// inside the replaced text, which clamps it to the new end) and have
// their end either shifted or clamped so the node still covers the
// replacement. A node is marked changed when the closed interval
// [StartByte, OldEndByte] intersects its closed span.
func (e Edit) applyToSpan(d *nodeData) {
	if d.endByte < e.StartByte {
		return
	}
	delta := e.NewEndByte - e.OldEndByte

	if d.startByte >= e.OldEndByte {
		if d.startByte == e.OldEndByte {
			d.changed = true
		}
		d.startByte += delta
		d.endByte += delta
		d.startPoint = e.translate(d.startPoint)
		d.endPoint = e.translate(d.endPoint)
		return
	}

	d.changed = true
	if d.startByte > e.StartByte {
		d.startByte = e.NewEndByte
		d.startPoint = e.NewEndPoint
	}
	switch {
	case d.endByte >= e.OldEndByte:
		d.endByte += delta
		d.endPoint = e.translate(d.endPoint)
	case d.endByte > e.StartByte:
		d.endByte = e.NewEndByte
		d.endPoint = e.NewEndPoint
	}
}

// applyToRange translates an accumulated range through the edit using
// the same rules as node spans, without the changed bookkeeping.
func (e Edit) applyToRange(r Range) Range {
	d := nodeData{
		startByte:  r.StartByte,
		endByte:    r.EndByte,
		startPoint: r.StartPoint,
		endPoint:   r.EndPoint,
	}
	e.applyToSpan(&d)
	return Range{
		StartByte:  d.startByte,
		EndByte:    d.endByte,
		StartPoint: d.startPoint,
		EndPoint:   d.endPoint,
	}
}

// NewRange returns the span the edit's replacement text occupies in
// the new text.
func (e Edit) NewRange() Range {
	return Range{
		StartByte:  e.StartByte,
		EndByte:    e.NewEndByte,
		StartPoint: e.StartPoint,
		EndPoint:   e.NewEndPoint,
	}
}

// advancePoint moves p forward over text.
func advancePoint(p Point, text []byte) Point {
	for _, b := range text {
		if b == '\n' {
			p.Row++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}

// ReplaceEdit builds a fully populated Edit describing the
// replacement of old[start:oldEnd] with replacement. The points are
// derived from the texts, so callers working with byte offsets never
// compute rows and columns by hand.
func ReplaceEdit(old []byte, start, oldEnd int, replacement []byte) Edit {
	startPoint := PointAt(old, start)
	return Edit{
		StartByte:   start,
		OldEndByte:  oldEnd,
		NewEndByte:  start + len(replacement),
		StartPoint:  startPoint,
		OldEndPoint: PointAt(old, oldEnd),
		NewEndPoint: advancePoint(startPoint, replacement),
	}
}

// DiffEdit derives the single Edit turning old into new by trimming
// the longest common prefix and suffix. The second result is false
// when the texts are identical.
func DiffEdit(old, new []byte) (Edit, bool) {
	if string(old) == string(new) {
		return Edit{}, false
	}
	prefix := 0
	for prefix < len(old) && prefix < len(new) && old[prefix] == new[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(old)-prefix && suffix < len(new)-prefix &&
		old[len(old)-1-suffix] == new[len(new)-1-suffix] {
		suffix++
	}
	return ReplaceEdit(old, prefix, len(old)-suffix, new[prefix:len(new)-suffix]), true
}
