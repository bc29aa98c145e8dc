package arith

import (
	"testing"

	"github.com/dhamidi/arbor/format"
	"github.com/dhamidi/arbor/syntax"
)

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a", "(program (variable))"},
		{"1 + 2", "(program (sum (number) (number)))"},
		{"a + b * c", "(program (sum (variable) (product (variable) (variable))))"},
		{"a * b + c", "(program (sum (product (variable) (variable)) (variable)))"},
		{"a - b - c", "(program (difference (difference (variable) (variable)) (variable)))"},
		{"a / b / c", "(program (quotient (quotient (variable) (variable)) (variable)))"},
		{"a ^ b ^ c", "(program (exponent (variable) (exponent (variable) (variable))))"},
		{"(a + b) * 2", "(program (product (group (sum (variable) (variable))) (number)))"},
		{"((a))", "(program (group (group (variable))))"},
		{"", "(program)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree := Parse([]byte(tt.input))
			if got := format.SExp(tree.RootNode()); got != tt.want {
				t.Errorf("SExp = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a + ", "(program (sum (variable) (ERROR)))"},
		{"@", "(program (ERROR))"},
		{"(a", "(program (group (variable)))"},
		{"a b", "(program (variable) (variable))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree := Parse([]byte(tt.input))
			if got := format.SExp(tree.RootNode()); got != tt.want {
				t.Errorf("SExp = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseSpans(t *testing.T) {
	tree := Parse([]byte("ab +\ncd"))
	root := tree.RootNode()

	if got := root.Range(); got != (syntax.Range{StartByte: 0, EndByte: 7, StartPoint: syntax.Point{Row: 0, Column: 0}, EndPoint: syntax.Point{Row: 1, Column: 2}}) {
		t.Errorf("root range = %v", got)
	}

	sum := root.FirstChild()
	if got := sum.Kind(); got != "sum" {
		t.Fatalf("root child = %q, want sum", got)
	}
	right := sum.Child(2)
	if got := right.Range(); got != (syntax.Range{StartByte: 5, EndByte: 7, StartPoint: syntax.Point{Row: 1, Column: 0}, EndPoint: syntax.Point{Row: 1, Column: 2}}) {
		t.Errorf("right operand range = %v", got)
	}
	if got := right.Text(); got != "cd" {
		t.Errorf("right operand text = %q, want %q", got, "cd")
	}
}

func TestParseAnonymousOperators(t *testing.T) {
	tree := Parse([]byte("a + b"))
	sum := tree.RootNode().FirstChild()

	if got := sum.ChildCount(); got != 3 {
		t.Fatalf("ChildCount() = %d, want 3", got)
	}
	op := sum.Child(1)
	if op.Kind() != "+" || op.IsNamed() {
		t.Errorf("operator = %q named=%v, want anonymous +", op.Kind(), op.IsNamed())
	}
}

func TestIncrementalParseInsertion(t *testing.T) {
	oldText := []byte("abc + cde")
	parser := NewParser()
	oldTree := parser.Parse(oldText, nil)

	// Insert " * " after the first byte, splitting the first operand
	// into a product.
	newText := []byte("a * bc + cde")
	if err := oldTree.Edit(syntax.ReplaceEdit(oldText, 1, 1, []byte(" * "))); err != nil {
		t.Fatal(err)
	}

	newTree := parser.Parse(newText, oldTree)

	want := "(program (sum (product (variable) (variable)) (variable)))"
	if got := format.SExp(newTree.RootNode()); got != want {
		t.Errorf("SExp = %s, want %s", got, want)
	}

	// The untouched right operand is spliced, not rebuilt.
	if got := parser.Stats().ReusedNodes; got != 1 {
		t.Errorf("ReusedNodes = %d, want 1", got)
	}

	ranges, err := oldTree.ChangedRanges(newTree)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranges) != 1 || ranges[0].StartByte != 0 || ranges[0].EndByte != 6 {
		t.Errorf("ChangedRanges = %v, want [[0,6)]", ranges)
	}
}

func TestIncrementalParseAppend(t *testing.T) {
	oldText := []byte("a + b")
	parser := NewParser()
	oldTree := parser.Parse(oldText, nil)

	newText := []byte("a + b + c")
	if err := oldTree.Edit(syntax.ReplaceEdit(oldText, 5, 5, []byte(" + c"))); err != nil {
		t.Fatal(err)
	}

	newTree := parser.Parse(newText, oldTree)

	want := "(program (sum (sum (variable) (variable)) (variable)))"
	if got := format.SExp(newTree.RootNode()); got != want {
		t.Errorf("SExp = %s, want %s", got, want)
	}
	if got := parser.Stats().ReusedNodes; got != 1 {
		t.Errorf("ReusedNodes = %d, want 1", got)
	}
}

func TestIncrementalParseReusesGroup(t *testing.T) {
	oldText := []byte("(a + b) * c")
	parser := NewParser()
	oldTree := parser.Parse(oldText, nil)

	// Only the right operand changes; the whole parenthesized group
	// is spliced as one subtree of seven nodes.
	newText := []byte("(a + b) * d")
	if err := oldTree.Edit(syntax.ReplaceEdit(oldText, 10, 11, []byte("d"))); err != nil {
		t.Fatal(err)
	}

	newTree := parser.Parse(newText, oldTree)

	want := "(program (product (group (sum (variable) (variable))) (variable)))"
	if got := format.SExp(newTree.RootNode()); got != want {
		t.Errorf("SExp = %s, want %s", got, want)
	}
	if got := parser.Stats().ReusedNodes; got != 7 {
		t.Errorf("ReusedNodes = %d, want 7", got)
	}

	group := newTree.RootNode().FirstChild().FirstChild()
	if got := group.Range(); got != (syntax.Range{StartByte: 0, EndByte: 7, StartPoint: syntax.Point{Row: 0, Column: 0}, EndPoint: syntax.Point{Row: 0, Column: 7}}) {
		t.Errorf("group range = %v", got)
	}
}

func TestIncrementalParseMatchesBatch(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
	}{
		{"insert operand", "abc + cde", "abc + x + cde"},
		{"delete operand", "a + b * c", "a * c"},
		{"change operator", "a + b", "a ^ b"},
		{"wrap in parens", "a + b", "(a + b)"},
		{"edit inside group", "(a + b) * c", "(a + q) * c"},
		{"introduce error", "a + b", "a + +"},
		{"fix error", "a + +", "a + b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldText, newText := []byte(tt.old), []byte(tt.new)
			parser := NewParser()
			oldTree := parser.Parse(oldText, nil)

			edit, changed := syntax.DiffEdit(oldText, newText)
			if !changed {
				t.Fatal("DiffEdit reports no change")
			}
			if err := oldTree.Edit(edit); err != nil {
				t.Fatal(err)
			}

			incremental := format.SExp(parser.Parse(newText, oldTree).RootNode())
			batch := format.SExp(Parse(newText).RootNode())
			if incremental != batch {
				t.Errorf("incremental = %s, batch = %s", incremental, batch)
			}
		})
	}
}

func TestParserStatsResetPerParse(t *testing.T) {
	oldText := []byte("a + b")
	parser := NewParser()
	oldTree := parser.Parse(oldText, nil)

	if got := parser.Stats().ReusedNodes; got != 0 {
		t.Errorf("ReusedNodes after batch parse = %d, want 0", got)
	}

	newText := []byte("a + b + c")
	if err := oldTree.Edit(syntax.ReplaceEdit(oldText, 5, 5, []byte(" + c"))); err != nil {
		t.Fatal(err)
	}
	parser.Parse(newText, oldTree)
	if got := parser.Stats().ReusedNodes; got == 0 {
		t.Error("ReusedNodes = 0 after incremental parse")
	}

	parser.Parse([]byte("x"), nil)
	if got := parser.Stats().ReusedNodes; got != 0 {
		t.Errorf("ReusedNodes after fresh parse = %d, want 0", got)
	}
}
