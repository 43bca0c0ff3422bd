package ast

import (
	"sort"

	"github.com/zesterer/ir/internal/diagnostics"
	"github.com/zesterer/ir/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Range
}

// Ident is a name as written in the source, such as a block name, a tag or
// a branch target.
type Ident struct {
	Name     string
	Location source.Range
}

func (i *Ident) INode()             {} // Implements Node interface
func (i *Ident) Loc() *source.Range { return &i.Location }

// Binding is a named, typed value introduced by a block input or an operation result.
type Binding struct {
	Name     string
	Type     Type
	Location source.Range // where the name was declared
}

func (b *Binding) INode()             {} // Implements Node interface
func (b *Binding) Loc() *source.Range { return &b.Location }

// Operand is a use of a binding that is in scope.
type Operand struct {
	Binding Binding      // the binding the name resolved to
	Use     source.Range // where the name was used
}

func (o *Operand) Name() string { return o.Binding.Name }

// Statement is one line of straight-line code: a result bound to an operation.
type Statement struct {
	Result Binding
	Op     Operation
}

// Block is a named unit of straight-line code with exactly one terminator.
type Block struct {
	Name   Ident
	Tags   []Ident
	Inputs []Binding
	Ops    []Statement
	Exit   Branch

	Location source.Range // the BLOCK keyword
}

func (b *Block) INode()             {} // Implements Node interface
func (b *Block) Loc() *source.Range { return &b.Location }

// Lookup finds a binding in the block's scope: its inputs and operation results.
func (b *Block) Lookup(name string) (Binding, bool) {
	for _, in := range b.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	for _, st := range b.Ops {
		if st.Result.Name == name {
			return st.Result, true
		}
	}
	return Binding{}, false
}

// HasTag reports whether the block carries the given tag.
func (b *Block) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t.Name == tag {
			return true
		}
	}
	return false
}

// Program maps block names to their definitions.
type Program struct {
	Blocks map[string]*Block
}

func NewProgram() *Program {
	return &Program{Blocks: make(map[string]*Block)}
}

// Add inserts a block. A name that is already present is a DuplicateBlock
// error pointing at the new definition's name.
func (p *Program) Add(block *Block) error {
	if prev, exists := p.Blocks[block.Name.Name]; exists {
		return diagnostics.NewSyntaxError(diagnostics.DuplicateBlock).
			At(block.Name.Location).
			WithRelated(prev.Name.Location).
			WithText(block.Name.Name)
	}
	p.Blocks[block.Name.Name] = block
	return nil
}

// Get returns the block with the given name.
func (p *Program) Get(name string) (*Block, bool) {
	b, ok := p.Blocks[name]
	return b, ok
}

// Names returns the block names in sorted order.
func (p *Program) Names() []string {
	names := make([]string, 0, len(p.Blocks))
	for name := range p.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of blocks.
func (p *Program) Len() int {
	return len(p.Blocks)
}
