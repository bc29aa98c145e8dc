package syntax

// Symbol is an interned grammar symbol id. Symbol 0 is reserved for
// the invalid symbol.
type Symbol uint16

// InvalidSymbol is the zero Symbol; Language.SymbolName resolves it
// to the empty string.
const InvalidSymbol Symbol = 0

// SymbolInfo describes one grammar symbol: its display name and
// whether nodes of this symbol are named (as opposed to anonymous
// syntax such as operators and punctuation).
type SymbolInfo struct {
	Name  string
	Named bool
}

// Language is the symbol table a grammar supplies to the tree core.
// Node type tags are stored as Symbols and resolved through the
// Language, so comparing node types never compares strings.
type Language struct {
	name    string
	symbols []SymbolInfo
	byName  map[string]Symbol
}

// NewLanguage builds a Language from a symbol list. Symbol ids are
// assigned in order starting at 1; id 0 stays invalid. When two
// entries share a name, the first one wins for name lookup.
func NewLanguage(name string, symbols []SymbolInfo) *Language {
	l := &Language{
		name:    name,
		symbols: make([]SymbolInfo, len(symbols)+1),
		byName:  make(map[string]Symbol, len(symbols)),
	}
	for i, info := range symbols {
		sym := Symbol(i + 1)
		l.symbols[sym] = info
		if _, ok := l.byName[info.Name]; !ok {
			l.byName[info.Name] = sym
		}
	}
	return l
}

// Name returns the language's name.
func (l *Language) Name() string { return l.name }

// SymbolCount returns the number of registered symbols.
func (l *Language) SymbolCount() int { return len(l.symbols) - 1 }

// Symbol resolves a symbol name to its id.
func (l *Language) Symbol(name string) (Symbol, bool) {
	sym, ok := l.byName[name]
	return sym, ok
}

// SymbolName resolves a symbol id to its name, or "" if the id is
// invalid.
func (l *Language) SymbolName(sym Symbol) string {
	if int(sym) >= len(l.symbols) {
		return ""
	}
	return l.symbols[sym].Name
}

// SymbolIsNamed reports whether nodes with this symbol are named.
func (l *Language) SymbolIsNamed(sym Symbol) bool {
	if int(sym) >= len(l.symbols) {
		return false
	}
	return l.symbols[sym].Named
}
