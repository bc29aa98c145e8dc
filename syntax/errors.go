package syntax

import "errors"

var (
	// ErrNilTree is returned by Tree.ChangedRanges when the other
	// tree is nil.
	ErrNilTree = errors.New("syntax: not a tree")

	// ErrInconsistentEdit is returned by Tree.Edit when an edit's
	// indices contradict each other (StartByte > OldEndByte, or
	// NewEndByte < StartByte). No spans are modified in that case.
	ErrInconsistentEdit = errors.New("syntax: inconsistent edit")

	// ErrOutOfBounds is returned by Cursor.GotoFirstChildForByte
	// when the byte offset lies outside the current node's span.
	ErrOutOfBounds = errors.New("syntax: byte offset out of bounds")

	// ErrNoChildren is returned by Cursor.GotoFirstChildForByte
	// when the current node has no children.
	ErrNoChildren = errors.New("syntax: node has no children")
)
