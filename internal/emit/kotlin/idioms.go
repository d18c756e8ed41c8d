// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package kotlin

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/emit/java"
	"github.com/parhelia512/Despector/internal/format"
)

var (
	printStream   = ast.ClassType("java/io/PrintStream")
	stringBuilder = ast.ClassType("java/lang/StringBuilder")
	list          = ast.ClassType("java/util/List")
	hashMap       = ast.ClassType("java/util/HashMap")
	jmap          = ast.ClassType("java/util/Map")
)

func catalog() *emit.IdiomTable {
	return emit.MustIdiomTable(
		emit.IdiomRule{Signature: emit.Signature(printStream, "println"), Arity: emit.NoCallee},
		emit.IdiomRule{Signature: emit.Signature(printStream, "print"), Arity: emit.NoCallee},
		emit.IdiomRule{Signature: emit.Signature(ast.String, "length"), Arity: emit.NoParams},
		emit.IdiomRule{Signature: emit.Signature(stringBuilder, "toString"), Arity: emit.FullRewrite, Renderer: emit.IdiomFunc(renderStringConcat)},
		emit.IdiomRule{Signature: emit.Signature(list, "contains"), Arity: emit.FullRewrite, Renderer: emit.IdiomFunc(renderListContains)},
		emit.IdiomRule{Signature: emit.Signature(jmap, "get"), Arity: emit.FullRewrite, Renderer: emit.IdiomFunc(renderIndexGet)},
		emit.IdiomRule{Signature: emit.Signature(hashMap, "get"), Arity: emit.FullRewrite, Renderer: emit.IdiomFunc(renderIndexGet)},
		emit.IdiomRule{Signature: emit.Signature(ast.String, "charAt"), Arity: emit.FullRewrite, Renderer: emit.IdiomFunc(renderIndexGet)},
		emit.IdiomRule{Signature: emit.Signature(jmap, "put"), Arity: emit.FullRewrite, Renderer: emit.IdiomFunc(renderIndexPut)},
		emit.IdiomRule{Signature: emit.Signature(hashMap, "put"), Arity: emit.FullRewrite, Renderer: emit.IdiomFunc(renderIndexPut)},
	)
}

// operand renders insn where it is followed by an index or operator,
// parenthesizing compound expressions.
func operand(ctx *emit.Context, insn ast.Instruction, expected ast.Type) {
	switch insn.(type) {
	case *ast.Operator, *ast.Cast:
		ctx.Print("(")
		ctx.Emit(insn, expected)
		ctx.Print(")")
	default:
		ctx.Emit(insn, expected)
	}
}

func params(call *ast.InstanceMethodInvoke) []ast.Type {
	types, _, err := ast.SplitSignature(call.Desc)
	if err != nil {
		emit.Failf("call descriptor: %v", err)
	}
	if len(types) != len(call.Args) {
		emit.Failf("call descriptor %s declares %d parameters, got %d arguments", call.Desc, len(types), len(call.Args))
	}
	return types
}

// renderIndexGet renders m.get(k) and s.charAt(i) as m[k] and s[i].
func renderIndexGet(ctx *emit.Context, call *ast.InstanceMethodInvoke, _ ast.Type) emit.Outcome {
	types := params(call)
	if len(types) != 1 || call.Callee == nil {
		return emit.Declined
	}
	operand(ctx, call.Callee, call.Owner)
	ctx.Print("[")
	ctx.Emit(call.Args[0], types[0])
	ctx.Print("]")
	return emit.Handled
}

// renderIndexPut renders m.put(k, v) as m[k] = v. The assignment form has no
// value, so it only applies where the call is a statement.
func renderIndexPut(ctx *emit.Context, call *ast.InstanceMethodInvoke, expected ast.Type) emit.Outcome {
	if expected != ast.Void && expected != "" {
		return emit.Declined
	}
	types := params(call)
	if len(types) != 2 || call.Callee == nil {
		return emit.Declined
	}
	operand(ctx, call.Callee, call.Owner)
	ctx.Print("[")
	ctx.Emit(call.Args[0], types[0])
	ctx.Print("]")
	ctx.PrintIf(" ", format.SpaceBeforeAssignmentOperator)
	ctx.Print("=")
	ctx.PrintIf(" ", format.SpaceAfterAssignmentOperator)
	ctx.Emit(call.Args[1], types[1])
	return emit.Handled
}

// renderListContains renders list.contains(x) as x in list.
func renderListContains(ctx *emit.Context, call *ast.InstanceMethodInvoke, _ ast.Type) emit.Outcome {
	types := params(call)
	if len(types) != 1 || call.Callee == nil {
		return emit.Declined
	}
	operand(ctx, call.Args[0], types[0])
	ctx.Print(" in ")
	operand(ctx, call.Callee, call.Owner)
	return emit.Handled
}

// part is one piece of a string built with StringBuilder.append.
type part struct {
	value ast.Instruction
	typ   ast.Type
}

// concatParts unwinds new StringBuilder(s).append(a).append(b) into its
// pieces, in order. It reports false for any other receiver chain.
func concatParts(callee ast.Instruction) ([]part, bool) {
	var parts []part
	for {
		switch n := callee.(type) {
		case *ast.InstanceMethodInvoke:
			if n.Owner != stringBuilder || n.Name != "append" || len(n.Args) != 1 {
				return nil, false
			}
			types, _, err := ast.SplitSignature(n.Desc)
			if err != nil || len(types) != 1 {
				return nil, false
			}
			parts = append(parts, part{value: n.Args[0], typ: types[0]})
			callee = n.Callee
		case *ast.New:
			if n.Type != stringBuilder || len(n.Args) > 1 {
				return nil, false
			}
			if len(n.Args) == 1 {
				parts = append(parts, part{value: n.Args[0], typ: ast.String})
			}
			for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
				parts[i], parts[j] = parts[j], parts[i]
			}
			return parts, true
		default:
			return nil, false
		}
	}
}

// renderStringConcat folds a StringBuilder chain ending in toString into a
// string template.
func renderStringConcat(ctx *emit.Context, call *ast.InstanceMethodInvoke, _ ast.Type) emit.Outcome {
	parts, ok := concatParts(call.Callee)
	if !ok || len(call.Args) != 0 {
		return emit.Declined
	}

	ctx.Print(`"`)
	for i, p := range parts {
		if text, ok := literal(p); ok {
			var b strings.Builder
			writeTemplateText(&b, text)
			ctx.Print(b.String())
			continue
		}
		if l, ok := p.value.(*ast.LocalAccess); ok && !ctx.IsReceiver(l) && !identifierFollows(parts[i+1:]) {
			ctx.Print("$")
			ctx.Print(java.LocalName(l.Local))
			continue
		}
		ctx.Print("${")
		ctx.Emit(p.value, p.typ)
		ctx.Print("}")
	}
	ctx.Print(`"`)
	return emit.Handled
}

// literal returns the text of constant parts, which are inlined into the
// template.
func literal(p part) (string, bool) {
	switch v := p.value.(type) {
	case *ast.StringConstant:
		return v.Value, true
	case *ast.IntConstant:
		// Lone surrogates have no rune; they go through ${...} instead.
		if p.typ == ast.Char && v.Value >= 0 && v.Value <= 0xFFFF && !utf16.IsSurrogate(rune(v.Value)) {
			return string(rune(v.Value)), true
		}
	}
	return "", false
}

// identifierFollows reports whether the next piece starts with a character
// that would extend a bare $name reference.
func identifierFollows(rest []part) bool {
	if len(rest) == 0 {
		return false
	}
	text, ok := literal(rest[0])
	if !ok || text == "" {
		return false
	}
	r := []rune(text)[0]
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
