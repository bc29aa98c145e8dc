package syntax

import (
	"testing"
)

func TestCursorNavigation(t *testing.T) {
	tree := testTree(t, "abc + cde")
	c := tree.Walk()

	if got := c.Kind(); got != "document" {
		t.Fatalf("Kind() = %q, want %q", got, "document")
	}
	if !c.GotoFirstChild() {
		t.Fatal("GotoFirstChild() = false at root")
	}
	if got := c.Kind(); got != "word" {
		t.Errorf("Kind() = %q, want %q", got, "word")
	}
	if !c.GotoNextSibling() {
		t.Fatal("GotoNextSibling() = false at first child")
	}
	if got := c.Kind(); got != "+" {
		t.Errorf("Kind() = %q, want %q", got, "+")
	}
	if c.IsNamed() {
		t.Error("IsNamed() = true for operator")
	}
	if !c.GotoNextSibling() {
		t.Fatal("GotoNextSibling() = false at second child")
	}
	if c.StartByte() != 6 || c.EndByte() != 9 {
		t.Errorf("span = [%d,%d), want [6,9)", c.StartByte(), c.EndByte())
	}
	if c.GotoNextSibling() {
		t.Error("GotoNextSibling() = true at last child")
	}
	if !c.GotoParent() {
		t.Fatal("GotoParent() = false below root")
	}
	if got := c.Kind(); got != "document" {
		t.Errorf("Kind() = %q, want %q", got, "document")
	}
	if c.GotoParent() {
		t.Error("GotoParent() = true at root")
	}
}

func TestCursorLeafHasNoChildren(t *testing.T) {
	tree := testTree(t, "abc")
	c := tree.Walk()
	c.GotoFirstChild()

	if c.GotoFirstChild() {
		t.Error("GotoFirstChild() = true at leaf")
	}
	if got := c.Kind(); got != "word" {
		t.Errorf("cursor moved off leaf to %q", got)
	}
}

func TestCursorReset(t *testing.T) {
	tree := testTree(t, "abc + cde")
	c := tree.Walk()
	c.GotoFirstChild()
	c.GotoNextSibling()

	c.Reset()
	if got := c.Kind(); got != "document" {
		t.Errorf("Kind() after Reset = %q, want %q", got, "document")
	}
	if c.GotoParent() {
		t.Error("GotoParent() = true after Reset")
	}
}

func TestCursorGotoFirstChildForByte(t *testing.T) {
	tree := testTree(t, "abc + cde")

	tests := []struct {
		offset int
		index  int
		kind   string
	}{
		{0, 0, "word"},
		{2, 0, "word"},
		{3, 1, "+"}, // in the gap: first child ending past the offset
		{4, 1, "+"},
		{6, 2, "word"},
		{8, 2, "word"},
	}

	for _, tt := range tests {
		c := tree.Walk()
		index, err := c.GotoFirstChildForByte(tt.offset)
		if err != nil {
			t.Errorf("GotoFirstChildForByte(%d) error: %v", tt.offset, err)
			continue
		}
		if index != tt.index {
			t.Errorf("GotoFirstChildForByte(%d) = %d, want %d", tt.offset, index, tt.index)
		}
		if got := c.Kind(); got != tt.kind {
			t.Errorf("Kind() after descent to %d = %q, want %q", tt.offset, got, tt.kind)
		}
	}
}

func TestCursorGotoFirstChildForByteErrors(t *testing.T) {
	tree := testTree(t, "abc + cde")

	c := tree.Walk()
	if _, err := c.GotoFirstChildForByte(9); err != ErrOutOfBounds {
		t.Errorf("offset at end: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := c.GotoFirstChildForByte(-1); err != ErrOutOfBounds {
		t.Errorf("negative offset: err = %v, want ErrOutOfBounds", err)
	}
	if got := c.Kind(); got != "document" {
		t.Errorf("cursor moved on failure, now at %q", got)
	}

	c.GotoFirstChild()
	if _, err := c.GotoFirstChildForByte(1); err != ErrNoChildren {
		t.Errorf("on leaf: err = %v, want ErrNoChildren", err)
	}
}

func TestCursorDescendsEditedTree(t *testing.T) {
	tree := testTree(t, "abc + cde")
	if err := tree.Edit(ReplaceEdit([]byte("abc + cde"), 0, 0, []byte("xy"))); err != nil {
		t.Fatal(err)
	}

	// Spans observed through the cursor are the translated ones.
	c := tree.Walk()
	index, err := c.GotoFirstChildForByte(8)
	if err != nil {
		t.Fatal(err)
	}
	if index != 2 {
		t.Errorf("index = %d, want 2", index)
	}
	if got := c.StartByte(); got != 8 {
		t.Errorf("StartByte() = %d, want 8", got)
	}
}
