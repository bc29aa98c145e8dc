package lsp

import (
	"unicode/utf8"

	"github.com/dhamidi/arbor/syntax"
)

// document is one open text document: its current text and the tree
// of its last parse. Between a didChange edit and the re-parse that
// follows it, the tree's spans are already translated into the new
// text's coordinates.
type document struct {
	uri  string
	text []byte
	tree *syntax.Tree
}

// replace swaps out old[start:end] for newText, recording the edit on
// the tree (when one exists) so the next parse can reuse subtrees.
func (d *document) replace(start, end int, newText []byte) error {
	edit := syntax.ReplaceEdit(d.text, start, end, newText)
	if d.tree != nil {
		if err := d.tree.Edit(edit); err != nil {
			return err
		}
	}
	buf := make([]byte, 0, len(d.text)-(end-start)+len(newText))
	buf = append(buf, d.text[:start]...)
	buf = append(buf, newText...)
	buf = append(buf, d.text[end:]...)
	d.text = buf
	return nil
}

// offsetAt converts a protocol position to a byte offset in the
// document. Character offsets count UTF-16 code units, the protocol's
// default encoding, and are converted here so the tree core sees only
// bytes. Positions past the end of a line or of the document clamp.
func (d *document) offsetAt(line, character int) int {
	offset := 0
	for line > 0 && offset < len(d.text) {
		if d.text[offset] == '\n' {
			line--
		}
		offset++
	}
	for character > 0 && offset < len(d.text) && d.text[offset] != '\n' {
		r, size := utf8.DecodeRune(d.text[offset:])
		offset += size
		character--
		if r > 0xFFFF {
			// Above the basic multilingual plane: a surrogate
			// pair, two code units.
			character--
		}
	}
	return offset
}
