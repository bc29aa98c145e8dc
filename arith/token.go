// Package arith is a parsing engine for a small arithmetic expression
// language, producing syntax.Tree values. It exists to drive the
// incremental tree core: parses can be seeded with an edited base
// tree, in which case subtrees untouched by the edits are spliced
// into the new tree instead of rebuilt.
package arith

import "github.com/dhamidi/arbor/syntax"

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	TokenIdent
	TokenNumber

	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenLParen
	TokenRParen
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:    "EOF",
	TokenError:  "Error",
	TokenIdent:  "Ident",
	TokenNumber: "Number",
	TokenPlus:   "+",
	TokenMinus:  "-",
	TokenStar:   "*",
	TokenSlash:  "/",
	TokenCaret:  "^",
	TokenLParen: "(",
	TokenRParen: ")",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Range   syntax.Range
	Literal string
}
