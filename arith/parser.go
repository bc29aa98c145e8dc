package arith

import "github.com/dhamidi/arbor/syntax"

// Stats describes what the most recent parse did.
type Stats struct {
	// ReusedNodes counts nodes spliced from the base tree instead
	// of being rebuilt.
	ReusedNodes int
}

// Parser turns source text into syntax trees. A single Parser can be
// used for any number of sequential parses; it is not safe for
// concurrent use.
type Parser struct {
	stats Stats
}

func NewParser() *Parser {
	return &Parser{}
}

// Stats reports counters from the most recent Parse call.
func (p *Parser) Stats() Stats { return p.stats }

// Parse builds a syntax tree for src. When base is the previous
// revision's tree with the edits describing the change already
// applied (Tree.Edit), subtrees outside every edited region are
// spliced into the result unchanged; the rest is re-lexed and
// re-built. Parse never fails: unexpected input is represented by
// ERROR nodes in the tree.
func (p *Parser) Parse(src []byte, base *syntax.Tree) *syntax.Tree {
	s := &session{
		tokens: Tokens(src),
		b:      syntax.NewBuilder(lang, src),
	}
	if base != nil {
		s.reuse = newReuseWalker(base, src)
	}

	var children []syntax.Ref
	for !s.atEOF() {
		children = append(children, s.parseExpression(1))
	}
	root := s.b.Interior(symProgram, children)
	p.stats = Stats{ReusedNodes: s.reused}
	return s.b.Finish(root)
}

// Parse is a convenience wrapper for one-shot, from-scratch parses.
func Parse(src []byte) *syntax.Tree {
	return NewParser().Parse(src, nil)
}

// session is the state of one Parse call.
type session struct {
	tokens []Token
	pos    int
	b      *syntax.Builder
	reuse  *reuseWalker
	reused int
}

func (s *session) atEOF() bool { return s.pos >= len(s.tokens) }

func (s *session) peek() Token {
	if s.atEOF() {
		return s.eofToken()
	}
	return s.tokens[s.pos]
}

func (s *session) advance() Token {
	tok := s.peek()
	if !s.atEOF() {
		s.pos++
	}
	return tok
}

// eofToken is a zero-width token at the end of the input, used to
// give trailing ERROR nodes a span.
func (s *session) eofToken() Token {
	var r syntax.Range
	if n := len(s.tokens); n > 0 {
		last := s.tokens[n-1].Range
		r = syntax.Range{
			StartByte:  last.EndByte,
			EndByte:    last.EndByte,
			StartPoint: last.EndPoint,
			EndPoint:   last.EndPoint,
		}
	}
	return Token{Kind: TokenEOF, Range: r}
}

// parseExpression parses at the given precedence floor, folding
// binary operators left-to-right (right-to-left for ^).
func (s *session) parseExpression(minPrec int) syntax.Ref {
	if minPrec == 1 {
		if ref, ok := s.tryReuseExpression(); ok {
			return ref
		}
	}
	left := s.parsePrimary()
	for {
		op, ok := binaryOps[s.peek().Kind]
		if !ok || op.prec < minPrec {
			return left
		}
		opTok := s.advance()
		opLeaf := s.b.Leaf(op.tokenSym, opTok.Range)
		nextPrec := op.prec + 1
		if op.rightAssoc {
			nextPrec = op.prec
		}
		right := s.parseExpression(nextPrec)
		left = s.b.Interior(op.nodeSym, []syntax.Ref{left, opLeaf, right})
	}
}

func (s *session) parsePrimary() syntax.Ref {
	tok := s.peek()
	switch tok.Kind {
	case TokenIdent:
		if ref, ok := s.tryReuse(symVariable); ok {
			return ref
		}
		s.advance()
		return s.b.Leaf(symVariable, tok.Range)
	case TokenNumber:
		if ref, ok := s.tryReuse(symNumber); ok {
			return ref
		}
		s.advance()
		return s.b.Leaf(symNumber, tok.Range)
	case TokenLParen:
		if ref, ok := s.tryReuse(symGroup); ok {
			return ref
		}
		lp := s.b.Leaf(symLParen, s.advance().Range)
		inner := s.parseExpression(1)
		if s.peek().Kind == TokenRParen {
			rp := s.b.Leaf(symRParen, s.advance().Range)
			return s.b.Interior(symGroup, []syntax.Ref{lp, inner, rp})
		}
		return s.b.Interior(symGroup, []syntax.Ref{lp, inner})
	case TokenEOF:
		return s.b.Leaf(symError, tok.Range)
	default:
		s.advance()
		return s.b.Leaf(symError, tok.Range)
	}
}

// tryReuse splices an old subtree of the given kind starting exactly
// at the next token's offset, if the reuse walker has an intact one.
func (s *session) tryReuse(want syntax.Symbol) (syntax.Ref, bool) {
	if s.reuse == nil || s.atEOF() {
		return 0, false
	}
	n, ok := s.reuse.candidateAt(s.peek().Range.StartByte, func(n syntax.Node) bool {
		return n.Symbol() == want
	})
	if !ok {
		return 0, false
	}
	return s.splice(n), true
}

// tryReuseExpression splices any complete old expression at the
// lowest precedence level. To guarantee the result matches a
// from-scratch parse, the candidate must be followed by a token that
// ends the expression (a closing parenthesis or end of input).
func (s *session) tryReuseExpression() (syntax.Ref, bool) {
	if s.reuse == nil || s.atEOF() {
		return 0, false
	}
	n, ok := s.reuse.candidateAt(s.peek().Range.StartByte, func(n syntax.Node) bool {
		if !expressionSymbols[n.Symbol()] {
			return false
		}
		next := s.tokenAfter(n.EndByte())
		return next.Kind == TokenRParen || next.Kind == TokenEOF
	})
	if !ok {
		return 0, false
	}
	return s.splice(n), true
}

// tokenAfter returns the first token starting at or after offset.
func (s *session) tokenAfter(offset int) Token {
	for i := s.pos; i < len(s.tokens); i++ {
		if s.tokens[i].Range.StartByte >= offset {
			return s.tokens[i]
		}
	}
	return s.eofToken()
}

// splice deep-copies an old subtree into the tree under construction
// and advances past its tokens. The copied spans are the base tree's
// already-translated ones, so they are exact in the new text.
func (s *session) splice(n syntax.Node) syntax.Ref {
	ref := s.copySubtree(n)
	for !s.atEOF() && s.tokens[s.pos].Range.StartByte < n.EndByte() {
		s.pos++
	}
	return ref
}

func (s *session) copySubtree(n syntax.Node) syntax.Ref {
	s.reused++
	count := n.ChildCount()
	if count == 0 {
		return s.b.Leaf(n.Symbol(), n.Range())
	}
	children := make([]syntax.Ref, count)
	for i := 0; i < count; i++ {
		children[i] = s.copySubtree(n.Child(i))
	}
	return s.b.Interior(n.Symbol(), children)
}
