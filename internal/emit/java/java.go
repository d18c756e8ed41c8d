// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package java provides the generic renderers, which produce Java surface
// syntax for every node kind.
package java

import (
	"strings"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/emit"
)

// Dialect renders Java source.
type Dialect struct{}

// Name returns the dialect identifier.
func (Dialect) Name() string { return "java" }

// FileExtension returns the extension of Java files.
func (Dialect) FileExtension() string { return ".java" }

// Registry returns the Java renderer registry.
func (Dialect) Registry() *emit.Registry { return registry }

var registry = Populate(emit.NewRegistry()).MustFreeze()

// Populate registers a generic renderer for every node kind. Instance calls
// are rendered without idioms.
func Populate(r *emit.Registry) *emit.Registry {
	r.SetInstruction(ast.KindIntConstant, emit.InstructionFunc[*ast.IntConstant](renderIntConstant))
	r.SetInstruction(ast.KindLongConstant, emit.InstructionFunc[*ast.LongConstant](renderLongConstant))
	r.SetInstruction(ast.KindStringConstant, emit.InstructionFunc[*ast.StringConstant](renderStringConstant))
	r.SetInstruction(ast.KindNullConstant, emit.InstructionFunc[*ast.NullConstant](renderNullConstant))
	r.SetInstruction(ast.KindLocalAccess, emit.InstructionFunc[*ast.LocalAccess](renderLocalAccess))
	r.SetInstruction(ast.KindInstanceFieldAccess, emit.InstructionFunc[*ast.InstanceFieldAccess](renderInstanceFieldAccess))
	r.SetInstruction(ast.KindStaticFieldAccess, emit.InstructionFunc[*ast.StaticFieldAccess](renderStaticFieldAccess))
	r.SetInstruction(ast.KindArrayAccess, emit.InstructionFunc[*ast.ArrayAccess](renderArrayAccess))
	r.SetInstruction(ast.KindInstanceMethodInvoke, InstanceInvoke(nil))
	r.SetInstruction(ast.KindStaticMethodInvoke, emit.InstructionFunc[*ast.StaticMethodInvoke](renderStaticInvoke))
	r.SetInstruction(ast.KindNew, NewInstance("new "))
	r.SetInstruction(ast.KindNewArray, emit.InstructionFunc[*ast.NewArray](renderNewArray))
	r.SetInstruction(ast.KindMultiNewArray, emit.InstructionFunc[*ast.MultiNewArray](renderMultiNewArray))
	r.SetInstruction(ast.KindCast, emit.InstructionFunc[*ast.Cast](renderCast))
	r.SetInstruction(ast.KindOperator, emit.InstructionFunc[*ast.Operator](RenderOperator))

	r.SetStatement(ast.KindLocalAssignment, emit.StatementFunc[*ast.LocalAssignment](renderLocalAssignment))
	r.SetStatement(ast.KindInstanceFieldAssignment, emit.StatementFunc[*ast.InstanceFieldAssignment](renderInstanceFieldAssignment))
	r.SetStatement(ast.KindStaticFieldAssignment, emit.StatementFunc[*ast.StaticFieldAssignment](renderStaticFieldAssignment))
	r.SetStatement(ast.KindArrayAssignment, emit.StatementFunc[*ast.ArrayAssignment](renderArrayAssignment))
	r.SetStatement(ast.KindIncrement, emit.StatementFunc[*ast.Increment](renderIncrement))
	r.SetStatement(ast.KindInvokeStatement, emit.StatementFunc[*ast.InvokeStatement](renderInvokeStatement))
	r.SetStatement(ast.KindReturn, emit.StatementFunc[*ast.Return](renderReturn))
	r.SetStatement(ast.KindIf, emit.StatementFunc[*ast.If](renderIf))
	r.SetStatement(ast.KindWhile, emit.StatementFunc[*ast.While](renderWhile))
	r.SetStatement(ast.KindFor, emit.StatementFunc[*ast.For](renderFor))
	r.SetStatement(ast.KindComment, emit.StatementFunc[*ast.Comment](renderComment))
	return r
}

var primitiveNames = map[ast.Type]string{
	ast.Void:    "void",
	ast.Boolean: "boolean",
	ast.Byte:    "byte",
	ast.Char:    "char",
	ast.Short:   "short",
	ast.Int:     "int",
	ast.Long:    "long",
	ast.Float:   "float",
	ast.Double:  "double",
}

// TypeName returns the source form of t ("int", "String", "int[][]").
func TypeName(t ast.Type) string {
	dims := t.Dimensions()
	elem := t[dims:]
	name, ok := primitiveNames[elem]
	if !ok {
		name = elem.SimpleName()
	}
	if name == "" {
		emit.Failf("invalid type descriptor %q", t)
	}
	return name + strings.Repeat("[]", dims)
}

// ownerPrefix prints "Owner." unless owner is the enclosing type.
func ownerPrefix(ctx *emit.Context, owner ast.Type) {
	if typ, ok := ctx.EnclosingType(); ok && owner.InternalName() == typ {
		return
	}
	ctx.Print(TypeName(owner))
	ctx.Print(".")
}

// needsParens reports whether insn must be parenthesized when used as the
// target of a member access, index or cast.
func needsParens(insn ast.Instruction) bool {
	switch insn.(type) {
	case *ast.Operator, *ast.Cast:
		return true
	}
	return false
}

// emitOperand renders insn as the target of a postfix construct.
func emitOperand(ctx *emit.Context, insn ast.Instruction, expected ast.Type) {
	if insn != nil && needsParens(insn) {
		ctx.Print("(")
		ctx.Emit(insn, expected)
		ctx.Print(")")
		return
	}
	ctx.Emit(insn, expected)
}

func terminate(ctx *emit.Context, semicolon bool) {
	if semicolon {
		ctx.Print(";")
	}
}
