// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package java

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/format"
)

// renderIntConstant coerces the literal to the expected type: booleans and
// chars are stored as ints in bytecode.
func renderIntConstant(ctx *emit.Context, c *ast.IntConstant, expected ast.Type) {
	switch expected {
	case ast.Boolean:
		ctx.Print(strconv.FormatBool(c.Value != 0))
	case ast.Char:
		if c.Value >= 0 && c.Value <= 0xFFFF {
			ctx.Print(QuoteChar(rune(c.Value)))
			return
		}
		ctx.Print(strconv.FormatInt(int64(c.Value), 10))
	default:
		ctx.Print(strconv.FormatInt(int64(c.Value), 10))
	}
}

func renderLongConstant(ctx *emit.Context, c *ast.LongConstant, _ ast.Type) {
	ctx.Print(strconv.FormatInt(c.Value, 10))
	ctx.Print("L")
}

func renderStringConstant(ctx *emit.Context, c *ast.StringConstant, _ ast.Type) {
	ctx.Print(Quote(c.Value))
}

func renderNullConstant(ctx *emit.Context, _ *ast.NullConstant, _ ast.Type) {
	ctx.Print("null")
}

// Quote returns s as a Java string literal.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' {
			b.WriteString(`\"`)
			continue
		}
		escape(&b, r)
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteChar returns r as a Java char literal.
func QuoteChar(r rune) string {
	var b strings.Builder
	b.WriteByte('\'')
	if r == '\'' {
		b.WriteString(`\'`)
	} else {
		escape(&b, r)
	}
	b.WriteByte('\'')
	return b.String()
}

// escape writes r with Java escapes for control characters and backslashes.
func escape(b *strings.Builder, r rune) {
	switch r {
	case '\\':
		b.WriteString(`\\`)
	case '\n':
		b.WriteString(`\n`)
	case '\t':
		b.WriteString(`\t`)
	case '\r':
		b.WriteString(`\r`)
	case '\b':
		b.WriteString(`\b`)
	case '\f':
		b.WriteString(`\f`)
	default:
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		} else if r > 0xFFFF {
			hi, lo := utf16Pair(r)
			fmt.Fprintf(b, `\u%04x\u%04x`, hi, lo)
		} else {
			fmt.Fprintf(b, `\u%04x`, r)
		}
	}
}

func utf16Pair(r rune) (rune, rune) {
	r -= 0x10000
	return 0xD800 + (r>>10)&0x3FF, 0xDC00 + r&0x3FF
}

func renderLocalAccess(ctx *emit.Context, l *ast.LocalAccess, _ ast.Type) {
	if ctx.IsReceiver(l) {
		ctx.Print("this")
		return
	}
	ctx.Print(LocalName(l.Local))
}

// LocalName returns the name of a local, inventing one for unnamed slots.
func LocalName(l ast.Local) string {
	if l.Name != "" {
		return l.Name
	}
	return "local" + strconv.Itoa(l.Index)
}

func renderInstanceFieldAccess(ctx *emit.Context, f *ast.InstanceFieldAccess, _ ast.Type) {
	fieldTarget(ctx, f.Receiver, f.Owner)
	ctx.Print(f.Name)
}

// fieldTarget prints the receiver of an instance field followed by a dot.
func fieldTarget(ctx *emit.Context, receiver ast.Instruction, owner ast.Type) {
	if ctx.IsReceiver(receiver) {
		ctx.Print("this.")
		return
	}
	emitOperand(ctx, receiver, owner)
	ctx.Print(".")
}

func renderStaticFieldAccess(ctx *emit.Context, f *ast.StaticFieldAccess, _ ast.Type) {
	ownerPrefix(ctx, f.Owner)
	ctx.Print(f.Name)
}

func renderArrayAccess(ctx *emit.Context, a *ast.ArrayAccess, _ ast.Type) {
	emitOperand(ctx, a.Array, "")
	printIndex(ctx, a.Index)
}

func printIndex(ctx *emit.Context, index ast.Instruction) {
	ctx.Print("[")
	ctx.PrintIf(" ", format.SpaceAfterOpeningBracketInArrayReference)
	ctx.Emit(index, ast.Int)
	ctx.PrintIf(" ", format.SpaceBeforeClosingBracketInArrayReference)
	ctx.Print("]")
}

func renderCast(ctx *emit.Context, c *ast.Cast, _ ast.Type) {
	ctx.Print("(")
	ctx.PrintIf(" ", format.SpaceAfterOpeningParenInCast)
	ctx.Print(TypeName(c.Type))
	ctx.PrintIf(" ", format.SpaceBeforeClosingParenInCast)
	ctx.Print(")")
	ctx.PrintIf(" ", format.SpaceAfterClosingParenInCast)
	if _, ok := c.Value.(*ast.Operator); ok {
		ctx.Print("(")
		ctx.Emit(c.Value, c.Type)
		ctx.Print(")")
		return
	}
	ctx.Emit(c.Value, c.Type)
}

var precedence = map[string]int{
	"||":  1,
	"&&":  2,
	"|":   3,
	"^":   4,
	"&":   5,
	"==":  6,
	"!=":  6,
	"<":   7,
	"<=":  7,
	">":   7,
	">=":  7,
	"<<":  8,
	">>":  8,
	">>>": 8,
	"+":   9,
	"-":   9,
	"*":   10,
	"/":   10,
	"%":   10,
}

// RenderOperator renders a binary operator, parenthesizing operands by
// precedence.
func RenderOperator(ctx *emit.Context, o *ast.Operator, _ ast.Type) {
	prec, ok := precedence[o.Op]
	if !ok {
		emit.Failf("unknown operator %q", o.Op)
	}
	if o.Left == nil || o.Right == nil {
		emit.Failf("operator %q is missing an operand", o.Op)
	}

	var leftType, rightType ast.Type
	switch o.Op {
	case "&&", "||":
		leftType, rightType = ast.Boolean, ast.Boolean
	case "==", "!=", "<", "<=", ">", ">=":
		// A constant compared against a char or boolean takes the other side's type.
		leftType, rightType = o.Right.InferType(), o.Left.InferType()
	}

	emitSide(ctx, o.Left, leftType, wraps(o.Left, func(p int) bool { return p < prec }))
	ctx.PrintIf(" ", format.SpaceBeforeBinaryOperator)
	ctx.Print(o.Op)
	ctx.PrintIf(" ", format.SpaceAfterBinaryOperator)
	// Keeps a--1 from lexing as a decrement.
	right := wraps(o.Right, func(p int) bool { return p <= prec }) ||
		((o.Op == "+" || o.Op == "-") && negativeLiteral(o.Right))
	emitSide(ctx, o.Right, rightType, right)
}

// wraps reports whether side is an operator whose precedence satisfies lower.
func wraps(side ast.Instruction, lower func(int) bool) bool {
	inner, ok := side.(*ast.Operator)
	return ok && lower(precedence[inner.Op])
}

func negativeLiteral(insn ast.Instruction) bool {
	switch c := insn.(type) {
	case *ast.IntConstant:
		return c.Value < 0
	case *ast.LongConstant:
		return c.Value < 0
	}
	return false
}

func emitSide(ctx *emit.Context, side ast.Instruction, expected ast.Type, parens bool) {
	if parens {
		ctx.Print("(")
		ctx.Emit(side, expected)
		ctx.Print(")")
		return
	}
	ctx.Emit(side, expected)
}
