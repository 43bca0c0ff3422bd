package ast

// The visitors list one method per variant of each closed set, so adding a
// variant breaks every implementation until it handles the new case.

// TypeVisitor traverses the Type variants.
type TypeVisitor interface {
	VisitProduct(t *ProductType)
	VisitSum(t *SumType)
	VisitI32(t I32Type)
	VisitBool(t BoolType)
}

// OperationVisitor traverses the Operation variants.
type OperationVisitor interface {
	VisitBinary(op *BinaryOp)
	VisitUnary(op *UnaryOp)
	VisitExternCall(op *ExternCall)
	VisitCall(op *Call)
}

// BranchVisitor traverses the Branch variants.
type BranchVisitor interface {
	VisitAlways(b *Always)
	VisitIf(b *If)
	VisitReturn(b *Return)
	VisitEnd(b *End)
}
