// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import (
	"fmt"
	"strings"

	"github.com/parhelia512/Despector/internal/ast"
)

// InstructionRenderer renders instruction nodes.
type InstructionRenderer interface {
	RenderInstruction(ctx *Context, insn ast.Instruction, expected ast.Type)
}

// StatementRenderer renders statement nodes.
type StatementRenderer interface {
	RenderStatement(ctx *Context, stmt ast.Statement, terminate bool)
}

// InstructionFunc adapts a function over one concrete instruction type.
type InstructionFunc[T ast.Instruction] func(ctx *Context, insn T, expected ast.Type)

// RenderInstruction implements InstructionRenderer.
func (f InstructionFunc[T]) RenderInstruction(ctx *Context, insn ast.Instruction, expected ast.Type) {
	n, ok := insn.(T)
	if !ok {
		var want T
		Failf("renderer for %T cannot render %T", want, insn)
	}
	f(ctx, n, expected)
}

// StatementFunc adapts a function over one concrete statement type.
type StatementFunc[T ast.Statement] func(ctx *Context, stmt T, terminate bool)

// RenderStatement implements StatementRenderer.
func (f StatementFunc[T]) RenderStatement(ctx *Context, stmt ast.Statement, terminate bool) {
	n, ok := stmt.(T)
	if !ok {
		var want T
		Failf("renderer for %T cannot render %T", want, stmt)
	}
	f(ctx, n, terminate)
}

// Registry maps every node kind to exactly one renderer. A registry is
// populated once, then frozen; a frozen registry is read-only and safe for
// concurrent use.
type Registry struct {
	insns  [ast.NumKinds]InstructionRenderer
	stmts  [ast.NumKinds]StatementRenderer
	frozen bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetInstruction registers the renderer for an instruction kind, replacing any
// previous one.
func (r *Registry) SetInstruction(kind ast.Kind, renderer InstructionRenderer) {
	if r.frozen {
		panic(fmt.Sprintf("emit: registry is frozen (setting %s)", kind))
	}
	if !kind.IsInstruction() {
		panic(fmt.Sprintf("emit: %s is not an instruction kind", kind))
	}
	r.insns[kind] = renderer
}

// SetStatement registers the renderer for a statement kind, replacing any
// previous one.
func (r *Registry) SetStatement(kind ast.Kind, renderer StatementRenderer) {
	if r.frozen {
		panic(fmt.Sprintf("emit: registry is frozen (setting %s)", kind))
	}
	if !kind.IsStatement() {
		panic(fmt.Sprintf("emit: %s is not a statement kind", kind))
	}
	r.stmts[kind] = renderer
}

// Clone returns an unfrozen copy, used to derive one dialect from another.
func (r *Registry) Clone() *Registry {
	return &Registry{insns: r.insns, stmts: r.stmts}
}

// Missing returns the kinds that have no renderer.
func (r *Registry) Missing() []ast.Kind {
	var missing []ast.Kind
	for k := ast.Kind(0); k < ast.NumKinds; k++ {
		if (k.IsInstruction() && r.insns[k] == nil) || (k.IsStatement() && r.stmts[k] == nil) {
			missing = append(missing, k)
		}
	}
	return missing
}

// Freeze checks that every kind has a renderer and makes the registry read-only.
func (r *Registry) Freeze() error {
	if missing := r.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, k := range missing {
			names[i] = k.String()
		}
		return fmt.Errorf("emit: no renderer for %s", strings.Join(names, ", "))
	}
	r.frozen = true
	return nil
}

// MustFreeze is Freeze for package initialisation.
func (r *Registry) MustFreeze() *Registry {
	if err := r.Freeze(); err != nil {
		panic(err)
	}
	return r
}

// Frozen reports whether the registry is read-only.
func (r *Registry) Frozen() bool { return r.frozen }

func (r *Registry) instruction(kind ast.Kind) InstructionRenderer {
	if !kind.IsInstruction() || r.insns[kind] == nil {
		Failf("no instruction renderer registered for %s", kind)
	}
	return r.insns[kind]
}

func (r *Registry) statement(kind ast.Kind) StatementRenderer {
	if !kind.IsStatement() || r.stmts[kind] == nil {
		Failf("no statement renderer registered for %s", kind)
	}
	return r.stmts[kind]
}
