package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/source"
	"github.com/zesterer/ir/internal/tokens"
)

func ident(name string, line, col int) Ident {
	return Ident{
		Name:     name,
		Location: source.Range{Start: source.Position{Line: line, Column: col}, Length: len(name), Width: len(name)},
	}
}

func TestProgramAddRejectsDuplicates(t *testing.T) {
	program := NewProgram()

	require.NoError(t, program.Add(&Block{Name: ident("b", 1, 7), Exit: &End{}}))
	require.NoError(t, program.Add(&Block{Name: ident("a", 3, 7), Exit: &End{}}))

	err := program.Add(&Block{Name: ident("b", 5, 7), Exit: &End{}})
	require.Error(t, err)

	syntaxErr, ok := err.(*diagnostics.SyntaxError)
	require.True(t, ok)
	assert.Equal(t, diagnostics.DuplicateBlock, syntaxErr.Kind)
	assert.Equal(t, 5, syntaxErr.Range.Start.Line)
	assert.Equal(t, 1, syntaxErr.Related.Start.Line)

	// the first definition is kept
	b, ok := program.Get("b")
	require.True(t, ok)
	assert.Equal(t, 1, b.Name.Location.Start.Line)

	assert.Equal(t, []string{"a", "b"}, program.Names())
	assert.Equal(t, 2, program.Len())
}

func TestFormatType(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{I32Type{}, "I32"},
		{BoolType{}, "Bool"},
		{&ProductType{}, "Product()"},
		{&SumType{Variants: []Type{I32Type{}, &ProductType{Elems: []Type{BoolType{}, I32Type{}}}}}, "Sum(I32, Product(Bool, I32))"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
		})
	}

	assert.True(t, TypesEqual(&ProductType{Elems: []Type{I32Type{}}}, &ProductType{Elems: []Type{I32Type{}}}))
	assert.False(t, TypesEqual(&ProductType{Elems: []Type{I32Type{}}}, &SumType{Variants: []Type{I32Type{}}}))
}

func TestOperatorsFromTokens(t *testing.T) {
	for kind := range binaryOperators {
		op, ok := BinaryOperatorFor(kind)
		require.True(t, ok)
		assert.Equal(t, string(kind), op.String())
	}
	_, ok := BinaryOperatorFor(tokens.NEG_TOKEN)
	assert.False(t, ok)

	op, ok := UnaryOperatorFor(tokens.NOT_TOKEN)
	require.True(t, ok)
	assert.Equal(t, Not, op)
	_, ok = UnaryOperatorFor(tokens.ADD_TOKEN)
	assert.False(t, ok)
}

func TestOperandsAndSuccessors(t *testing.T) {
	a := Operand{Binding: Binding{Name: "a", Type: I32Type{}}}
	b := Operand{Binding: Binding{Name: "b", Type: I32Type{}}}

	assert.Equal(t, []Operand{a, b}, Operands(&BinaryOp{Op: Add, Left: a, Right: b}))
	assert.Equal(t, []Operand{a}, Operands(&UnaryOp{Op: Neg, Operand: a}))
	assert.Equal(t, []Operand{b, a}, Operands(&Call{Args: []Operand{b, a}}))
	assert.Empty(t, Operands(&ExternCall{Name: ident("puts", 1, 1)}))

	then, els := ident("t", 1, 1), ident("e", 1, 3)
	assert.Equal(t, []Ident{then, els}, Successors(&If{Predicate: a, Then: then, Else: els}))
	assert.Equal(t, []Ident{then}, Successors(&Always{Target: then}))
	assert.Empty(t, Successors(&Return{Values: []Operand{a}}))
	assert.Empty(t, Successors(&End{}))
}

func TestBlockScope(t *testing.T) {
	block := &Block{
		Name:   ident("f", 1, 7),
		Tags:   []Ident{ident("entry", 1, 8)},
		Inputs: []Binding{{Name: "a", Type: I32Type{}}},
		Ops: []Statement{{
			Result: Binding{Name: "b", Type: BoolType{}},
			Op:     &UnaryOp{Op: Not},
		}},
		Exit: &End{},
	}

	in, ok := block.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "I32", in.Type.String())

	res, ok := block.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "Bool", res.Type.String())

	_, ok = block.Lookup("c")
	assert.False(t, ok)

	assert.True(t, block.HasTag("entry"))
	assert.False(t, block.HasTag("hot"))
}

func TestNodesReportLocations(t *testing.T) {
	r := source.Range{Start: source.Position{Line: 4, Column: 2}, Length: 3}

	nodes := []Node{
		&Block{Location: r},
		&Binding{Location: r},
		&BinaryOp{Location: r},
		&ExternCall{Location: r},
		&Always{Location: r},
		&End{Location: r},
	}
	for _, n := range nodes {
		assert.Equal(t, r, *n.Loc())
	}
}
