package ast

import "strings"

// Type is the closed set of IR types: *ProductType, *SumType, I32Type and BoolType.
type Type interface {
	isType()
	Accept(v TypeVisitor)
	String() string
}

// ProductType holds one value of each element type.
type ProductType struct {
	Elems []Type
}

// SumType holds a value of exactly one of the variant types.
type SumType struct {
	Variants []Type
}

// I32Type is a 32-bit integer.
type I32Type struct{}

type BoolType struct{}

func (*ProductType) isType() {}
func (*SumType) isType()     {}
func (I32Type) isType()      {}
func (BoolType) isType()     {}

func (t *ProductType) Accept(v TypeVisitor) { v.VisitProduct(t) }
func (t *SumType) Accept(v TypeVisitor)     { v.VisitSum(t) }
func (t I32Type) Accept(v TypeVisitor)      { v.VisitI32(t) }
func (t BoolType) Accept(v TypeVisitor)     { v.VisitBool(t) }

func (t *ProductType) String() string { return FormatType(t) }
func (t *SumType) String() string     { return FormatType(t) }
func (t I32Type) String() string      { return FormatType(t) }
func (t BoolType) String() string     { return FormatType(t) }

// FormatType renders a type in source syntax.
func FormatType(t Type) string {
	var f typeFormatter
	t.Accept(&f)
	return f.sb.String()
}

type typeFormatter struct {
	sb strings.Builder
}

func (f *typeFormatter) list(name string, types []Type) {
	f.sb.WriteString(name)
	f.sb.WriteByte('(')
	for i, t := range types {
		if i > 0 {
			f.sb.WriteString(", ")
		}
		t.Accept(f)
	}
	f.sb.WriteByte(')')
}

func (f *typeFormatter) VisitProduct(t *ProductType) { f.list("Product", t.Elems) }
func (f *typeFormatter) VisitSum(t *SumType)         { f.list("Sum", t.Variants) }
func (f *typeFormatter) VisitI32(I32Type)            { f.sb.WriteString("I32") }
func (f *typeFormatter) VisitBool(BoolType)          { f.sb.WriteString("Bool") }

// TypesEqual reports structural equality.
func TypesEqual(a, b Type) bool {
	return FormatType(a) == FormatType(b)
}
