// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package java

import (
	"strconv"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/format"
)

func printAssign(ctx *emit.Context, op string) {
	ctx.PrintIf(" ", format.SpaceBeforeAssignmentOperator)
	ctx.Print(op)
	ctx.PrintIf(" ", format.SpaceAfterAssignmentOperator)
}

func renderLocalAssignment(ctx *emit.Context, a *ast.LocalAssignment, semicolon bool) {
	if a.Declare {
		ctx.Print(TypeName(a.Local.Type))
		ctx.Print(" ")
	}
	ctx.Print(LocalName(a.Local))
	printAssign(ctx, "=")
	ctx.Emit(a.Value, a.Local.Type)
	terminate(ctx, semicolon)
}

func renderInstanceFieldAssignment(ctx *emit.Context, a *ast.InstanceFieldAssignment, semicolon bool) {
	fieldTarget(ctx, a.Receiver, a.Owner)
	ctx.Print(a.Name)
	printAssign(ctx, "=")
	ctx.Emit(a.Value, a.Type)
	terminate(ctx, semicolon)
}

func renderStaticFieldAssignment(ctx *emit.Context, a *ast.StaticFieldAssignment, semicolon bool) {
	ownerPrefix(ctx, a.Owner)
	ctx.Print(a.Name)
	printAssign(ctx, "=")
	ctx.Emit(a.Value, a.Type)
	terminate(ctx, semicolon)
}

func renderArrayAssignment(ctx *emit.Context, a *ast.ArrayAssignment, semicolon bool) {
	emitOperand(ctx, a.Array, "")
	printIndex(ctx, a.Index)
	printAssign(ctx, "=")
	var elem ast.Type
	if a.Array != nil {
		elem = a.Array.InferType().Elem()
	}
	ctx.Emit(a.Value, elem)
	terminate(ctx, semicolon)
}

func renderIncrement(ctx *emit.Context, inc *ast.Increment, semicolon bool) {
	ctx.Print(LocalName(inc.Local))
	switch {
	case inc.Delta == 1:
		ctx.Print("++")
	case inc.Delta == -1:
		ctx.Print("--")
	case inc.Delta < 0:
		printAssign(ctx, "-=")
		ctx.Print(strconv.FormatInt(-int64(inc.Delta), 10))
	default:
		printAssign(ctx, "+=")
		ctx.Print(strconv.FormatInt(int64(inc.Delta), 10))
	}
	terminate(ctx, semicolon)
}

// renderInvokeStatement renders the call with a void expectation, which marks
// statement context for idioms.
func renderInvokeStatement(ctx *emit.Context, s *ast.InvokeStatement, semicolon bool) {
	ctx.Emit(s.Call, ast.Void)
	terminate(ctx, semicolon)
}

func renderReturn(ctx *emit.Context, r *ast.Return, semicolon bool) {
	ctx.Print("return")
	if r.Value != nil {
		ctx.Print(" ")
		ctx.Emit(r.Value, ctx.ReturnType())
	}
	terminate(ctx, semicolon)
}

func renderComment(ctx *emit.Context, c *ast.Comment, _ bool) {
	for i, line := range c.Lines {
		if i > 0 {
			ctx.NewLine()
			ctx.PrintIndentation()
		}
		ctx.Print("//")
		if line != "" {
			ctx.Print(" ")
			ctx.Print(line)
		}
	}
}

// printBlock prints a braced block. An empty body closes on the next line
// with no blank line in between.
func printBlock(ctx *emit.Context, body []ast.Statement) {
	ctx.Print("{")
	ctx.NewLine()
	if len(body) > 0 {
		ctx.Indent()
		ctx.EmitBody(body)
		ctx.Dedent()
		ctx.NewLine()
	}
	ctx.PrintIndentation()
	ctx.Print("}")
}

func printCondition(ctx *emit.Context, cond ast.Instruction, before, after format.Flag) {
	ctx.PrintIf(" ", before)
	ctx.Print("(")
	ctx.PrintIf(" ", after)
	ctx.Emit(cond, ast.Boolean)
	ctx.Print(") ")
}

func renderIf(ctx *emit.Context, s *ast.If, _ bool) {
	ctx.Print("if")
	printCondition(ctx, s.Cond, format.SpaceBeforeOpeningParenInIf, format.SpaceAfterOpeningParenInIf)
	printBlock(ctx, s.Body)
	if len(s.Else) == 0 {
		return
	}
	ctx.Print(" else ")
	if chained, ok := s.Else[0].(*ast.If); ok && len(s.Else) == 1 {
		renderIf(ctx, chained, true)
		return
	}
	printBlock(ctx, s.Else)
}

func renderWhile(ctx *emit.Context, s *ast.While, _ bool) {
	ctx.Print("while")
	printCondition(ctx, s.Cond, format.SpaceBeforeOpeningParenInWhile, format.SpaceAfterOpeningParenInWhile)
	printBlock(ctx, s.Body)
}

// renderFor prints the loop header with its init and increment rendered
// without terminators. Absent parts leave their slot empty.
func renderFor(ctx *emit.Context, s *ast.For, _ bool) {
	ctx.Print("for")
	ctx.PrintIf(" ", format.SpaceBeforeOpeningParenInFor)
	ctx.Print("(")
	ctx.PrintIf(" ", format.SpaceAfterOpeningParenInFor)
	if s.Init != nil {
		ctx.EmitStatement(s.Init, false)
	}
	ctx.Print("; ")
	if s.Cond != nil {
		ctx.Emit(s.Cond, ast.Boolean)
	}
	ctx.Print("; ")
	if s.Incr != nil {
		ctx.EmitStatement(s.Incr, false)
	}
	ctx.Print(") ")
	printBlock(ctx, s.Body)
}
