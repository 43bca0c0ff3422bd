package ast

import "github.com/zesterer/ir/internal/source"

// Branch is the closed set of block terminators: *Always, *If, *Return and *End.
// Target names are not resolved against the program.
type Branch interface {
	Node
	isBranch()
	Accept(v BranchVisitor)
}

// Always jumps unconditionally.
type Always struct {
	Target   Ident
	Location source.Range
}

// If jumps to Then when Predicate holds and to Else otherwise.
type If struct {
	Predicate  Operand
	Then, Else Ident
	Location   source.Range
}

// Return leaves the block with the given values.
type Return struct {
	Values   []Operand
	Location source.Range
}

// End exits without a successor.
type End struct {
	Location source.Range
}

func (b *Always) INode() {} // Implements Node interface
func (b *If) INode()     {} // Implements Node interface
func (b *Return) INode() {} // Implements Node interface
func (b *End) INode()    {} // Implements Node interface

func (b *Always) Loc() *source.Range { return &b.Location }
func (b *If) Loc() *source.Range     { return &b.Location }
func (b *Return) Loc() *source.Range { return &b.Location }
func (b *End) Loc() *source.Range    { return &b.Location }

func (*Always) isBranch() {}
func (*If) isBranch()     {}
func (*Return) isBranch() {}
func (*End) isBranch()    {}

func (b *Always) Accept(v BranchVisitor) { v.VisitAlways(b) }
func (b *If) Accept(v BranchVisitor)     { v.VisitIf(b) }
func (b *Return) Accept(v BranchVisitor) { v.VisitReturn(b) }
func (b *End) Accept(v BranchVisitor)    { v.VisitEnd(b) }

// Successors returns the names of the blocks b may transfer control to.
func Successors(b Branch) []Ident {
	var c successorCollector
	b.Accept(&c)
	return c.targets
}

type successorCollector struct {
	targets []Ident
}

func (c *successorCollector) VisitAlways(b *Always) { c.targets = append(c.targets, b.Target) }
func (c *successorCollector) VisitIf(b *If)         { c.targets = append(c.targets, b.Then, b.Else) }
func (c *successorCollector) VisitReturn(*Return)   {}
func (c *successorCollector) VisitEnd(*End)         {}
