package arith

import "github.com/dhamidi/arbor/syntax"

type Lexer struct {
	input []byte
	pos   int
	row   int
	col   int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) point() syntax.Point {
	return syntax.Point{Row: l.row, Column: l.col}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.row++
		l.col = 0
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
		} else {
			break
		}
	}
}

func isIdentByte(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	startByte := l.pos
	startPoint := l.point()

	if l.pos >= len(l.input) {
		return l.token(TokenEOF, startByte, startPoint)
	}

	ch := l.peek()
	switch {
	case isIdentByte(ch):
		for isIdentByte(l.peek()) {
			l.advance()
		}
		return l.token(TokenIdent, startByte, startPoint)
	case isDigit(ch):
		for isDigit(l.peek()) {
			l.advance()
		}
		return l.token(TokenNumber, startByte, startPoint)
	}

	l.advance()
	kind := TokenError
	switch ch {
	case '+':
		kind = TokenPlus
	case '-':
		kind = TokenMinus
	case '*':
		kind = TokenStar
	case '/':
		kind = TokenSlash
	case '^':
		kind = TokenCaret
	case '(':
		kind = TokenLParen
	case ')':
		kind = TokenRParen
	}
	return l.token(kind, startByte, startPoint)
}

func (l *Lexer) token(kind TokenKind, startByte int, startPoint syntax.Point) Token {
	return Token{
		Kind: kind,
		Range: syntax.Range{
			StartByte:  startByte,
			EndByte:    l.pos,
			StartPoint: startPoint,
			EndPoint:   l.point(),
		},
		Literal: string(l.input[startByte:l.pos]),
	}
}

// Tokens lexes the whole input, excluding the trailing EOF token.
func Tokens(input []byte) []Token {
	lexer := NewLexer(input)
	var tokens []Token
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
