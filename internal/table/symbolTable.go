package table

import (
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/zesterer/ir/internal/frontend/ast"
)

// maxSuggestionDistance bounds how different a suggested name may be
const maxSuggestionDistance = 2

// SymbolTable holds the bindings declared in one block
type SymbolTable struct {
	symbols map[string]*Symbol
}

// Symbol is a declared binding
type Symbol struct {
	Binding ast.Binding
	Kind    SymbolKind
}

// SymbolKind tells where a binding was introduced
type SymbolKind int

const (
	SymbolInput  SymbolKind = iota // block parameter
	SymbolResult                   // operation result
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolInput:
		return "input"
	case SymbolResult:
		return "result"
	default:
		return "unknown"
	}
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
	}
}

func (s *Symbol) Name() string { return s.Binding.Name }

// Declare adds a symbol to the table. When the name is taken the table is
// left unchanged and the earlier symbol is returned.
func (st *SymbolTable) Declare(symbol *Symbol) (*Symbol, bool) {
	if prev, exists := st.symbols[symbol.Name()]; exists {
		return prev, false
	}
	st.symbols[symbol.Name()] = symbol
	return nil, true
}

// Lookup finds a symbol by name
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// Closest finds the declared name with the smallest edit distance to name.
// Ties go to the alphabetically first name.
func (st *SymbolTable) Closest(name string) (string, bool) {
	names := make([]string, 0, len(st.symbols))
	for n := range st.symbols {
		names = append(names, n)
	}
	sort.Strings(names)

	match := ""
	closest := maxSuggestionDistance + 1
	for _, candidate := range names {
		d := levenshtein.DistanceForStrings([]rune(name), []rune(candidate), levenshtein.DefaultOptionsWithSub)
		if d < closest {
			closest = d
			match = candidate
		}
	}
	return match, match != ""
}
