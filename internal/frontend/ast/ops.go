package ast

import (
	"github.com/zesterer/ir/internal/source"
	"github.com/zesterer/ir/internal/tokens"
)

// Operation is the closed set of right-hand sides:
// *BinaryOp, *UnaryOp, *ExternCall and *Call.
type Operation interface {
	Node
	isOperation()
	Accept(v OperationVisitor)
}

type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	Eq
	Neq
	Geq
	Leq
)

var binaryOperators = map[tokens.TOKEN]BinaryOperator{
	tokens.ADD_TOKEN: Add,
	tokens.SUB_TOKEN: Sub,
	tokens.MUL_TOKEN: Mul,
	tokens.DIV_TOKEN: Div,
	tokens.EQ_TOKEN:  Eq,
	tokens.NEQ_TOKEN: Neq,
	tokens.GEQ_TOKEN: Geq,
	tokens.LEQ_TOKEN: Leq,
}

// BinaryOperatorFor maps an operator keyword to its operator.
func BinaryOperatorFor(kind tokens.TOKEN) (BinaryOperator, bool) {
	op, ok := binaryOperators[kind]
	return op, ok
}

func (op BinaryOperator) String() string {
	switch op {
	case Add:
		return string(tokens.ADD_TOKEN)
	case Sub:
		return string(tokens.SUB_TOKEN)
	case Mul:
		return string(tokens.MUL_TOKEN)
	case Div:
		return string(tokens.DIV_TOKEN)
	case Eq:
		return string(tokens.EQ_TOKEN)
	case Neq:
		return string(tokens.NEQ_TOKEN)
	case Geq:
		return string(tokens.GEQ_TOKEN)
	case Leq:
		return string(tokens.LEQ_TOKEN)
	default:
		return "?"
	}
}

type UnaryOperator int

const (
	Neg UnaryOperator = iota
	Not
)

// UnaryOperatorFor maps an operator keyword to its operator.
func UnaryOperatorFor(kind tokens.TOKEN) (UnaryOperator, bool) {
	switch kind {
	case tokens.NEG_TOKEN:
		return Neg, true
	case tokens.NOT_TOKEN:
		return Not, true
	}
	return 0, false
}

func (op UnaryOperator) String() string {
	switch op {
	case Neg:
		return string(tokens.NEG_TOKEN)
	case Not:
		return string(tokens.NOT_TOKEN)
	default:
		return "?"
	}
}

type BinaryOp struct {
	Op          BinaryOperator
	Left, Right Operand
	Location    source.Range // the operator keyword
}

type UnaryOp struct {
	Op       UnaryOperator
	Operand  Operand
	Location source.Range
}

// ExternCall calls a symbol outside the program. Name is the symbol as
// written, without quotes when it was given as a string literal.
type ExternCall struct {
	Name     Ident
	Args     []Operand
	Location source.Range
}

// Call calls another block of the program by name. The name is not resolved.
type Call struct {
	Name     Ident
	Args     []Operand
	Location source.Range
}

func (o *BinaryOp) INode()   {} // Implements Node interface
func (o *UnaryOp) INode()    {} // Implements Node interface
func (o *ExternCall) INode() {} // Implements Node interface
func (o *Call) INode()       {} // Implements Node interface

func (o *BinaryOp) Loc() *source.Range   { return &o.Location }
func (o *UnaryOp) Loc() *source.Range    { return &o.Location }
func (o *ExternCall) Loc() *source.Range { return &o.Location }
func (o *Call) Loc() *source.Range       { return &o.Location }

func (*BinaryOp) isOperation()   {}
func (*UnaryOp) isOperation()    {}
func (*ExternCall) isOperation() {}
func (*Call) isOperation()       {}

func (o *BinaryOp) Accept(v OperationVisitor)   { v.VisitBinary(o) }
func (o *UnaryOp) Accept(v OperationVisitor)    { v.VisitUnary(o) }
func (o *ExternCall) Accept(v OperationVisitor) { v.VisitExternCall(o) }
func (o *Call) Accept(v OperationVisitor)       { v.VisitCall(o) }

// Operands returns the operands of op in source order.
func Operands(op Operation) []Operand {
	var c operandCollector
	op.Accept(&c)
	return c.operands
}

type operandCollector struct {
	operands []Operand
}

func (c *operandCollector) VisitBinary(o *BinaryOp) {
	c.operands = append(c.operands, o.Left, o.Right)
}

func (c *operandCollector) VisitUnary(o *UnaryOp) {
	c.operands = append(c.operands, o.Operand)
}

func (c *operandCollector) VisitExternCall(o *ExternCall) {
	c.operands = append(c.operands, o.Args...)
}

func (c *operandCollector) VisitCall(o *Call) {
	c.operands = append(c.operands, o.Args...)
}
