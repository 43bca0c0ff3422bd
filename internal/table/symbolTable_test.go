package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zesterer/ir/internal/frontend/ast"
	"github.com/zesterer/ir/internal/source"
)

func binding(name string, line int) ast.Binding {
	return ast.Binding{
		Name:     name,
		Type:     ast.I32Type{},
		Location: source.Range{Start: source.Position{Line: line, Column: 1}, Length: len(name), Width: len(name)},
	}
}

func TestDeclareAndLookup(t *testing.T) {
	st := NewSymbolTable()

	prev, ok := st.Declare(&Symbol{Binding: binding("a", 1), Kind: SymbolInput})
	require.True(t, ok)
	assert.Nil(t, prev)

	_, ok = st.Declare(&Symbol{Binding: binding("b", 2), Kind: SymbolResult})
	require.True(t, ok)

	sym, found := st.Lookup("a")
	require.True(t, found)
	assert.Equal(t, SymbolInput, sym.Kind)
	assert.Equal(t, "a", sym.Name())

	_, found = st.Lookup("c")
	assert.False(t, found)
}

func TestDeclareDuplicateKeepsFirst(t *testing.T) {
	st := NewSymbolTable()
	st.Declare(&Symbol{Binding: binding("x", 1), Kind: SymbolInput})

	prev, ok := st.Declare(&Symbol{Binding: binding("x", 4), Kind: SymbolResult})
	assert.False(t, ok)
	require.NotNil(t, prev)
	assert.Equal(t, 1, prev.Binding.Location.Start.Line)

	sym, _ := st.Lookup("x")
	assert.Equal(t, SymbolInput, sym.Kind)
	assert.Equal(t, "input", sym.Kind.String())
	assert.Equal(t, "result", SymbolResult.String())
}

func TestClosest(t *testing.T) {
	st := NewSymbolTable()
	for i, name := range []string{"sum", "flag", "total"} {
		st.Declare(&Symbol{Binding: binding(name, i+1)})
	}

	tests := []struct {
		name     string
		expected string
		found    bool
	}{
		{"sun", "sum", true},
		{"flg", "flag", true},
		{"totl", "total", true},
		{"x", "", false},
		{"completely", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, found := st.Closest(tt.name)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, match)
		})
	}
}
