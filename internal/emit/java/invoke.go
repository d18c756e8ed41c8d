// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package java

import (
	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/format"
)

// InstanceInvoke returns the instance call renderer. Calls matching a rule of
// idioms are rewritten or have their receiver or argument list suppressed; a
// nil table renders every call in plain form.
func InstanceInvoke(idioms *emit.IdiomTable) emit.InstructionFunc[*ast.InstanceMethodInvoke] {
	return func(ctx *emit.Context, call *ast.InstanceMethodInvoke, expected ast.Type) {
		if idioms.Rewrite(ctx, call, expected) {
			return
		}

		key := emit.Signature(call.Owner, call.Name)
		if call.Name == ast.Constructor {
			if typ, ok := ctx.EnclosingType(); ok && call.OwnerName() == typ {
				ctx.Print("this")
			} else {
				ctx.Print("super")
			}
		} else {
			if !idioms.Has(key, emit.NoCallee) {
				callTarget(ctx, call)
			}
			ctx.Print(call.Name)
		}

		if idioms.Has(key, emit.NoParams) {
			return
		}
		PrintArgs(ctx, call.Desc, call.Args)
	}
}

// callTarget prints the receiver of call followed by a dot. A call on the
// receiver of the current member is left implicit, qualified with "super."
// when it targets an inherited member.
func callTarget(ctx *emit.Context, call *ast.InstanceMethodInvoke) {
	if ctx.IsReceiver(call.Callee) {
		if typ, ok := ctx.EnclosingType(); ok && call.OwnerName() != typ {
			ctx.Print("super.")
		}
		return
	}
	emitOperand(ctx, call.Callee, call.Owner)
	ctx.Print(".")
}

func renderStaticInvoke(ctx *emit.Context, call *ast.StaticMethodInvoke, _ ast.Type) {
	ownerPrefix(ctx, call.Owner)
	ctx.Print(call.Name)
	PrintArgs(ctx, call.Desc, call.Args)
}

// NewInstance returns the object allocation renderer. keyword precedes the
// type name ("new " in Java).
func NewInstance(keyword string) emit.InstructionFunc[*ast.New] {
	return func(ctx *emit.Context, n *ast.New, _ ast.Type) {
		ctx.Print(keyword)
		ctx.Print(TypeName(n.Type))
		PrintArgs(ctx, n.Desc, n.Args)
	}
}

// PrintArgs prints a parenthesized argument list, rendering each argument
// against the parameter type declared by desc. A trailing array initializer
// is a varargs array and its elements are spliced into the list. Every
// separator is a wrap point.
func PrintArgs(ctx *emit.Context, desc string, args []ast.Instruction) {
	params, _, err := ast.SplitSignature(desc)
	if err != nil {
		emit.Failf("call descriptor: %v", err)
	}
	if len(args) != len(params) {
		emit.Failf("call descriptor %s declares %d parameters, got %d arguments", desc, len(params), len(args))
	}

	ctx.PrintIf(" ", format.SpaceBeforeOpeningParenInMethodInvocation)
	ctx.Print("(")
	if len(args) == 0 {
		ctx.Print(")")
		return
	}
	ctx.PrintIf(" ", format.SpaceAfterOpeningParenInMethodInvocation)

	n := 0
	next := func(arg ast.Instruction, expected ast.Type) {
		if n > 0 {
			ctx.Print(", ")
			ctx.MarkWrapPoint()
		}
		ctx.Emit(arg, expected)
		n++
	}
	for i, arg := range args {
		if varargs, ok := arg.(*ast.NewArray); ok && i == len(args)-1 && varargs.Size == nil && varargs.Values != nil {
			for _, v := range varargs.Values {
				next(v, varargs.Elem)
			}
			continue
		}
		next(arg, params[i])
	}

	ctx.PrintIf(" ", format.SpaceBeforeClosingParenInMethodInvocation)
	ctx.Print(")")
}
