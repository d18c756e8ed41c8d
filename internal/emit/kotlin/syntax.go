// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package kotlin

import (
	"strings"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/emit/java"
	"github.com/parhelia512/Despector/internal/format"
)

var primitiveNames = map[ast.Type]string{
	ast.Void:    "Unit",
	ast.Boolean: "Boolean",
	ast.Byte:    "Byte",
	ast.Char:    "Char",
	ast.Short:   "Short",
	ast.Int:     "Int",
	ast.Long:    "Long",
	ast.Float:   "Float",
	ast.Double:  "Double",
}

// TypeName returns the Kotlin form of t ("Int", "IntArray", "Array<String>").
func TypeName(t ast.Type) string {
	if t.IsArray() {
		elem := t.Elem()
		if name, ok := primitiveArray(elem); ok {
			return name
		}
		return "Array<" + TypeName(elem) + ">"
	}
	if name, ok := primitiveNames[t]; ok {
		return name
	}
	if t == ast.Object {
		return "Any"
	}
	name := t.SimpleName()
	if name == "" {
		emit.Failf("invalid type descriptor %q", t)
	}
	return name
}

// primitiveArray returns the specialised array class of a primitive element.
func primitiveArray(elem ast.Type) (string, bool) {
	if !elem.IsPrimitive() || elem == ast.Void {
		return "", false
	}
	return primitiveNames[elem] + "Array", true
}

func printAssign(ctx *emit.Context) {
	ctx.PrintIf(" ", format.SpaceBeforeAssignmentOperator)
	ctx.Print("=")
	ctx.PrintIf(" ", format.SpaceAfterAssignmentOperator)
}

// renderLocalAssignment declares locals with var and an explicit type.
func renderLocalAssignment(ctx *emit.Context, a *ast.LocalAssignment, semicolon bool) {
	if a.Declare {
		ctx.Print("var ")
		ctx.Print(java.LocalName(a.Local))
		ctx.Print(": ")
		ctx.Print(TypeName(a.Local.Type))
	} else {
		ctx.Print(java.LocalName(a.Local))
	}
	printAssign(ctx)
	ctx.Emit(a.Value, a.Local.Type)
	if semicolon {
		ctx.Print(";")
	}
}

// renderCast converts between primitives with the toX() conversions and
// casts references with as.
func renderCast(ctx *emit.Context, c *ast.Cast, _ ast.Type) {
	if c.Value == nil {
		emit.Failf("cast to %s has no operand", c.Type)
	}
	if name, ok := primitiveNames[c.Type]; ok && c.Type != ast.Void {
		operand(ctx, c.Value, c.Value.InferType())
		ctx.Print(".to" + name + "()")
		return
	}
	operand(ctx, c.Value, c.Type)
	ctx.Print(" as ")
	ctx.Print(TypeName(c.Type))
}

var infix = map[string]string{
	"&":   "and",
	"|":   "or",
	"^":   "xor",
	"<<":  "shl",
	">>":  "shr",
	">>>": "ushr",
}

// renderOperator spells bitwise and shift operators as infix functions. They
// share one precedence level, so compound operands are always parenthesized.
func renderOperator(ctx *emit.Context, o *ast.Operator, expected ast.Type) {
	name, ok := infix[o.Op]
	if !ok {
		java.RenderOperator(ctx, o, expected)
		return
	}
	if o.Left == nil || o.Right == nil {
		emit.Failf("operator %q is missing an operand", o.Op)
	}
	operand(ctx, o.Left, "")
	ctx.Print(" " + name + " ")
	operand(ctx, o.Right, "")
}

func printSize(ctx *emit.Context, size ast.Instruction) {
	ctx.Print("(")
	ctx.PrintIf(" ", format.SpaceAfterOpeningBracketInArrayAllocation)
	ctx.Emit(size, ast.Int)
	ctx.PrintIf(" ", format.SpaceBeforeClosingBracketInArrayAllocation)
	ctx.Print(")")
}

// printSized prints an array of size elements of elem: IntArray(n) for
// primitives, arrayOfNulls<T>(n) otherwise.
func printSized(ctx *emit.Context, elem ast.Type, size ast.Instruction) {
	if name, ok := primitiveArray(elem); ok {
		ctx.Print(name)
	} else {
		ctx.Print("arrayOfNulls<" + TypeName(elem) + ">")
	}
	printSize(ctx, size)
}

func renderNewArray(ctx *emit.Context, a *ast.NewArray, _ ast.Type) {
	if a.Size == nil && a.Values == nil {
		emit.Failf("array allocation of %s has neither size nor initializer", a.Elem)
	}
	if a.Size != nil {
		printSized(ctx, a.Elem, a.Size)
		return
	}

	if name, ok := primitiveArray(a.Elem); ok {
		ctx.Print(strings.ToLower(name[:1]) + name[1:] + "Of(")
	} else {
		ctx.Print("arrayOf(")
	}
	for i, v := range a.Values {
		if i > 0 {
			ctx.Print(", ")
			ctx.MarkWrapPoint()
		}
		ctx.Emit(v, a.Elem)
	}
	ctx.Print(")")
}

// renderMultiNewArray nests one Array(n) { ... } constructor per size. The
// innermost size allocates the remaining dimensions.
func renderMultiNewArray(ctx *emit.Context, a *ast.MultiNewArray, _ ast.Type) {
	if len(a.Sizes) == 0 {
		emit.Failf("multi-dimensional allocation of %s has no dimension sizes", a.Type)
	}
	if _, ok := a.Type.StripDimensions(len(a.Sizes)); !ok {
		emit.Failf("multi-dimensional allocation of %s has %d dimension sizes but only %d array markers",
			a.Type, len(a.Sizes), a.Type.Dimensions())
	}
	printNested(ctx, a.Type.Elem(), a.Sizes)
}

func printNested(ctx *emit.Context, elem ast.Type, sizes []ast.Instruction) {
	if len(sizes) == 1 {
		printSized(ctx, elem, sizes[0])
		return
	}
	ctx.Print("Array")
	printSize(ctx, sizes[0])
	ctx.Print(" { ")
	printNested(ctx, elem.Elem(), sizes[1:])
	ctx.Print(" }")
}

// renderFor lowers a counted loop to its init statement followed by a while
// loop whose body ends with the increment.
func renderFor(ctx *emit.Context, s *ast.For, _ bool) {
	if s.Init != nil {
		ctx.EmitStatement(s.Init, true)
		ctx.NewLine()
		ctx.PrintIndentation()
	}
	ctx.Print("while")
	ctx.PrintIf(" ", format.SpaceBeforeOpeningParenInFor)
	ctx.Print("(")
	ctx.PrintIf(" ", format.SpaceAfterOpeningParenInFor)
	if s.Cond != nil {
		ctx.Emit(s.Cond, ast.Boolean)
	} else {
		ctx.Print("true")
	}
	ctx.Print(") {")
	ctx.NewLine()

	body := s.Body
	if s.Incr != nil {
		body = append(append([]ast.Statement(nil), s.Body...), s.Incr)
	}
	if len(body) > 0 {
		ctx.Indent()
		ctx.EmitBody(body)
		ctx.Dedent()
		ctx.NewLine()
	}
	ctx.PrintIndentation()
	ctx.Print("}")
}
