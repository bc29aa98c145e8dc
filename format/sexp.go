// Package format renders syntax trees for human and machine
// consumption: a compact s-expression form and a JSON form.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/arbor/syntax"
)

// SExpEncoder writes trees as s-expressions of their named nodes,
// e.g. "(sum (variable) (variable))". Anonymous nodes (operators,
// punctuation) are omitted, matching how grammars are usually read.
type SExpEncoder struct {
	w             io.Writer
	showPositions bool
	showAnonymous bool
}

func NewSExpEncoder(w io.Writer) *SExpEncoder {
	return &SExpEncoder{w: w}
}

// WithPositions makes the encoder annotate every node with its byte
// span.
func (e *SExpEncoder) WithPositions() *SExpEncoder {
	e.showPositions = true
	return e
}

// WithAnonymous makes the encoder include anonymous nodes, quoted.
func (e *SExpEncoder) WithAnonymous() *SExpEncoder {
	e.showAnonymous = true
	return e
}

func (e *SExpEncoder) Encode(n syntax.Node) error {
	text, err := e.MarshalText(n)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SExpEncoder) MarshalText(n syntax.Node) ([]byte, error) {
	if !n.IsValid() {
		return nil, fmt.Errorf("format: invalid node")
	}
	var sb strings.Builder
	e.writeNode(&sb, n)
	return []byte(sb.String()), nil
}

func (e *SExpEncoder) writeNode(sb *strings.Builder, n syntax.Node) {
	if !n.IsNamed() && !e.showAnonymous {
		return
	}
	if sb.Len() > 0 {
		lastByte := sb.String()[sb.Len()-1]
		if lastByte != '(' {
			sb.WriteByte(' ')
		}
	}
	if !n.IsNamed() {
		fmt.Fprintf(sb, "%q", n.Kind())
		e.writeSpan(sb, n)
		return
	}
	sb.WriteByte('(')
	sb.WriteString(n.Kind())
	e.writeSpan(sb, n)
	for i := 0; i < n.ChildCount(); i++ {
		e.writeNode(sb, n.Child(i))
	}
	sb.WriteByte(')')
}

func (e *SExpEncoder) writeSpan(sb *strings.Builder, n syntax.Node) {
	if !e.showPositions {
		return
	}
	fmt.Fprintf(sb, " [%d,%d)", n.StartByte(), n.EndByte())
}

// SExp is shorthand for the default encoding of a node.
func SExp(n syntax.Node) string {
	text, err := (&SExpEncoder{}).MarshalText(n)
	if err != nil {
		return ""
	}
	return string(text)
}
