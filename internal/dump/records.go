package dump

import (
	"github.com/zesterer/ir/internal/frontend/ast"
)

// Serialised forms of the AST. Types are written in source syntax and
// operands by name.

type ProgramRecord struct {
	Blocks []BlockRecord `json:"blocks" yaml:"blocks"`
}

type BlockRecord struct {
	Name   string          `json:"name" yaml:"name"`
	Line   int             `json:"line" yaml:"line"`
	Tags   []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Inputs []BindingRecord `json:"inputs" yaml:"inputs"`
	Ops    []OpRecord      `json:"ops" yaml:"ops"`
	Exit   BranchRecord    `json:"exit" yaml:"exit"`
}

type BindingRecord struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type OpRecord struct {
	Result   BindingRecord `json:"result" yaml:"result"`
	Kind     string        `json:"kind" yaml:"kind"`
	Operator string        `json:"operator,omitempty" yaml:"operator,omitempty"`
	Callee   string        `json:"callee,omitempty" yaml:"callee,omitempty"`
	Operands []string      `json:"operands" yaml:"operands"`
}

type BranchRecord struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Targets []string `json:"targets,omitempty" yaml:"targets,omitempty"`
	Values  []string `json:"values,omitempty" yaml:"values,omitempty"`
}

func programRecord(program *ast.Program) ProgramRecord {
	record := ProgramRecord{Blocks: make([]BlockRecord, 0, program.Len())}
	for _, name := range program.Names() {
		block, _ := program.Get(name)
		record.Blocks = append(record.Blocks, blockRecord(block))
	}
	return record
}

func blockRecord(block *ast.Block) BlockRecord {
	record := BlockRecord{
		Name:   block.Name.Name,
		Line:   block.Location.Start.Line,
		Inputs: make([]BindingRecord, len(block.Inputs)),
		Ops:    make([]OpRecord, len(block.Ops)),
	}
	for _, tag := range block.Tags {
		record.Tags = append(record.Tags, tag.Name)
	}
	for i, in := range block.Inputs {
		record.Inputs[i] = bindingRecord(in)
	}
	for i, stmt := range block.Ops {
		op := &opRecorder{record: OpRecord{Result: bindingRecord(stmt.Result)}}
		stmt.Op.Accept(op)
		op.record.Operands = operandNames(ast.Operands(stmt.Op))
		record.Ops[i] = op.record
	}

	exit := &branchRecorder{}
	block.Exit.Accept(exit)
	for _, target := range ast.Successors(block.Exit) {
		exit.record.Targets = append(exit.record.Targets, target.Name)
	}
	record.Exit = exit.record
	return record
}

func bindingRecord(b ast.Binding) BindingRecord {
	return BindingRecord{Name: b.Name, Type: b.Type.String()}
}

func operandNames(operands []ast.Operand) []string {
	names := make([]string, len(operands))
	for i, operand := range operands {
		names[i] = operand.Name()
	}
	return names
}

type opRecorder struct {
	record OpRecord
}

func (r *opRecorder) VisitBinary(op *ast.BinaryOp) {
	r.record.Kind = "binary"
	r.record.Operator = op.Op.String()
}

func (r *opRecorder) VisitUnary(op *ast.UnaryOp) {
	r.record.Kind = "unary"
	r.record.Operator = op.Op.String()
}

func (r *opRecorder) VisitExternCall(op *ast.ExternCall) {
	r.record.Kind = "extern"
	r.record.Callee = op.Name.Name
}

func (r *opRecorder) VisitCall(op *ast.Call) {
	r.record.Kind = "call"
	r.record.Callee = op.Name.Name
}

type branchRecorder struct {
	record BranchRecord
}

func (r *branchRecorder) VisitAlways(*ast.Always) { r.record.Kind = "always" }

func (r *branchRecorder) VisitIf(br *ast.If) {
	r.record.Kind = "if"
	r.record.Values = []string{br.Predicate.Name()}
}

func (r *branchRecorder) VisitReturn(br *ast.Return) {
	r.record.Kind = "return"
	if len(br.Values) > 0 {
		r.record.Values = operandNames(br.Values)
	}
}

func (r *branchRecorder) VisitEnd(*ast.End) { r.record.Kind = "end" }
