package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/zesterer/ir/internal/frontend/ast"
)

// Program writes a parsed program in the given format. Blocks appear in
// name order so dumps are stable.
func Program(w io.Writer, program *ast.Program, format Format) error {
	switch format {
	case Text:
		_, err := io.WriteString(w, FormatProgram(program))
		return err
	case JSON:
		return encodeJSON(w, programRecord(program))
	case YAML:
		return encodeYAML(w, programRecord(program))
	}
	return errors.Errorf("format %q is not supported for programs", format)
}

// FormatProgram renders a program back into source syntax.
func FormatProgram(program *ast.Program) string {
	var b strings.Builder
	for i, name := range program.Names() {
		if i > 0 {
			b.WriteString("\n")
		}
		block, _ := program.Get(name)
		writeBlock(&b, block)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, block *ast.Block) {
	b.WriteString("BLOCK ")
	if len(block.Tags) > 0 {
		b.WriteString("(")
		for i, tag := range block.Tags {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(tag.Name)
		}
		b.WriteString(") ")
	}

	fmt.Fprintf(b, "%s(", block.Name.Name)
	for i, in := range block.Inputs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s %s", in.Name, in.Type)
	}
	b.WriteString(")\n")

	for _, stmt := range block.Ops {
		f := &opFormatter{b: b}
		fmt.Fprintf(b, "    %s %s = ", stmt.Result.Name, stmt.Result.Type)
		stmt.Op.Accept(f)
		b.WriteString("\n")
	}

	b.WriteString("    ")
	block.Exit.Accept(&branchFormatter{b: b})
	b.WriteString("\n")
}

func writeOperands(b *strings.Builder, operands []ast.Operand) {
	for i, operand := range operands {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(operand.Name())
	}
}

type opFormatter struct {
	b *strings.Builder
}

func (f *opFormatter) VisitBinary(op *ast.BinaryOp) {
	fmt.Fprintf(f.b, "%s %s, %s", op.Op, op.Left.Name(), op.Right.Name())
}

func (f *opFormatter) VisitUnary(op *ast.UnaryOp) {
	fmt.Fprintf(f.b, "%s %s", op.Op, op.Operand.Name())
}

func (f *opFormatter) VisitExternCall(op *ast.ExternCall) {
	fmt.Fprintf(f.b, "EXTERN \"%s\"(", op.Name.Name)
	writeOperands(f.b, op.Args)
	f.b.WriteString(")")
}

func (f *opFormatter) VisitCall(op *ast.Call) {
	fmt.Fprintf(f.b, "CALL %s(", op.Name.Name)
	writeOperands(f.b, op.Args)
	f.b.WriteString(")")
}

type branchFormatter struct {
	b *strings.Builder
}

func (f *branchFormatter) VisitAlways(br *ast.Always) {
	fmt.Fprintf(f.b, "ALWAYS %s", br.Target.Name)
}

func (f *branchFormatter) VisitIf(br *ast.If) {
	fmt.Fprintf(f.b, "IF %s, %s, %s", br.Predicate.Name(), br.Then.Name, br.Else.Name)
}

func (f *branchFormatter) VisitReturn(br *ast.Return) {
	f.b.WriteString("RETURN")
	if len(br.Values) > 0 {
		f.b.WriteString(" ")
		writeOperands(f.b, br.Values)
	}
}

func (f *branchFormatter) VisitEnd(*ast.End) {
	f.b.WriteString("END")
}
