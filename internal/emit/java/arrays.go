// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package java

import (
	"strings"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/format"
)

func renderNewArray(ctx *emit.Context, a *ast.NewArray, _ ast.Type) {
	if a.Size == nil && a.Values == nil {
		emit.Failf("array allocation of %s has neither size nor initializer", a.Elem)
	}

	ctx.Print("new ")
	if a.Size != nil {
		dims := a.Elem.Dimensions()
		ctx.Print(TypeName(a.Elem[dims:]))
		printDimension(ctx, a.Size)
		ctx.Print(strings.Repeat("[]", dims))
		return
	}

	ctx.Print(TypeName(a.Elem))
	ctx.Print("[]")
	PrintInitializer(ctx, a.Elem, a.Values)
}

// PrintInitializer prints a brace-delimited array initializer. Every separator
// is a wrap point.
func PrintInitializer(ctx *emit.Context, elem ast.Type, values []ast.Instruction) {
	ctx.PrintIf(" ", format.SpaceBeforeOpeningBraceInArrayInitializer)
	ctx.Print("{")
	if len(values) == 0 {
		ctx.Print("}")
		return
	}
	ctx.PrintIf(" ", format.SpaceAfterOpeningBraceInArrayInitializer)
	for i, v := range values {
		if i > 0 {
			ctx.Print(", ")
			ctx.MarkWrapPoint()
		}
		ctx.Emit(v, elem)
	}
	ctx.PrintIf(" ", format.SpaceBeforeClosingBraceInArrayInitializer)
	ctx.Print("}")
}

// renderMultiNewArray prints "new", the element type and one sized bracket
// pair per dimension size. Each size strips one array marker from the
// allocated type; dimensions left unsized are printed as empty pairs.
func renderMultiNewArray(ctx *emit.Context, a *ast.MultiNewArray, _ ast.Type) {
	if len(a.Sizes) == 0 {
		emit.Failf("multi-dimensional allocation of %s has no dimension sizes", a.Type)
	}
	base, ok := a.Type.StripDimensions(len(a.Sizes))
	if !ok {
		emit.Failf("multi-dimensional allocation of %s has %d dimension sizes but only %d array markers",
			a.Type, len(a.Sizes), a.Type.Dimensions())
	}

	dims := base.Dimensions()
	ctx.Print("new ")
	ctx.Print(TypeName(base[dims:]))
	for _, size := range a.Sizes {
		printDimension(ctx, size)
	}
	ctx.Print(strings.Repeat("[]", dims))
}

func printDimension(ctx *emit.Context, size ast.Instruction) {
	ctx.Print("[")
	ctx.PrintIf(" ", format.SpaceAfterOpeningBracketInArrayAllocation)
	ctx.Emit(size, ast.Int)
	ctx.PrintIf(" ", format.SpaceBeforeClosingBracketInArrayAllocation)
	ctx.Print("]")
}
