package arith

import "github.com/dhamidi/arbor/syntax"

// The arithmetic grammar: binary expressions over variables and
// integer literals, with the usual precedence levels. Operator and
// parenthesis tokens appear in trees as anonymous nodes; everything
// else is named.
var lang = syntax.NewLanguage("arithmetic", []syntax.SymbolInfo{
	{Name: "program", Named: true},
	{Name: "sum", Named: true},
	{Name: "difference", Named: true},
	{Name: "product", Named: true},
	{Name: "quotient", Named: true},
	{Name: "exponent", Named: true},
	{Name: "group", Named: true},
	{Name: "variable", Named: true},
	{Name: "number", Named: true},
	{Name: "ERROR", Named: true},
	{Name: "+", Named: false},
	{Name: "-", Named: false},
	{Name: "*", Named: false},
	{Name: "/", Named: false},
	{Name: "^", Named: false},
	{Name: "(", Named: false},
	{Name: ")", Named: false},
})

// Language returns the grammar's symbol table; trees produced by this
// package are typed against it.
func Language() *syntax.Language { return lang }

var (
	symProgram    = mustSymbol("program")
	symSum        = mustSymbol("sum")
	symDifference = mustSymbol("difference")
	symProduct    = mustSymbol("product")
	symQuotient   = mustSymbol("quotient")
	symExponent   = mustSymbol("exponent")
	symGroup      = mustSymbol("group")
	symVariable   = mustSymbol("variable")
	symNumber     = mustSymbol("number")
	symError      = mustSymbol("ERROR")
)

// operator token kind -> the anonymous symbol for the token and the
// named symbol for the binary node it forms.
var binaryOps = map[TokenKind]struct {
	tokenSym   syntax.Symbol
	nodeSym    syntax.Symbol
	prec       int
	rightAssoc bool
}{
	TokenPlus:  {mustSymbol("+"), symSum, 1, false},
	TokenMinus: {mustSymbol("-"), symDifference, 1, false},
	TokenStar:  {mustSymbol("*"), symProduct, 2, false},
	TokenSlash: {mustSymbol("/"), symQuotient, 2, false},
	TokenCaret: {mustSymbol("^"), symExponent, 3, true},
}

var (
	symLParen = mustSymbol("(")
	symRParen = mustSymbol(")")
)

func mustSymbol(name string) syntax.Symbol {
	sym, ok := lang.Symbol(name)
	if !ok {
		panic("arith: unknown symbol " + name)
	}
	return sym
}

// expressionSymbols are the node kinds that can stand as a complete
// expression, used when deciding whether an old subtree may be
// spliced at an expression position.
var expressionSymbols = map[syntax.Symbol]bool{
	symSum:        true,
	symDifference: true,
	symProduct:    true,
	symQuotient:   true,
	symExponent:   true,
	symGroup:      true,
	symVariable:   true,
	symNumber:     true,
}
