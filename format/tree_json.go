package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/arbor/syntax"
)

// TreeJSONEncoder writes a tree as nested JSON objects, one per node,
// with byte spans and row/column points.
type TreeJSONEncoder struct {
	w io.Writer
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w}
}

func (e *TreeJSONEncoder) Encode(n syntax.Node) error {
	text, err := e.MarshalText(n)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeJSONEncoder) MarshalText(n syntax.Node) ([]byte, error) {
	if !n.IsValid() {
		return nil, fmt.Errorf("format: invalid node")
	}
	return json.MarshalIndent(nodeToJSON(n), "", "  ")
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Named    bool        `json:"named"`
	Span     jsonSpan    `json:"span"`
	Text     string      `json:"text,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	StartByte int       `json:"startByte"`
	EndByte   int       `json:"endByte"`
	Start     jsonPoint `json:"start"`
	End       jsonPoint `json:"end"`
}

type jsonPoint struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func nodeToJSON(n syntax.Node) *jsonNode {
	jn := &jsonNode{
		Kind:  n.Kind(),
		Named: n.IsNamed(),
		Span: jsonSpan{
			StartByte: n.StartByte(),
			EndByte:   n.EndByte(),
			Start:     jsonPoint{Row: n.StartPoint().Row, Column: n.StartPoint().Column},
			End:       jsonPoint{Row: n.EndPoint().Row, Column: n.EndPoint().Column},
		},
	}
	if n.ChildCount() == 0 {
		jn.Text = n.Text()
		return jn
	}
	for i := 0; i < n.ChildCount(); i++ {
		jn.Children = append(jn.Children, nodeToJSON(n.Child(i)))
	}
	return jn
}
