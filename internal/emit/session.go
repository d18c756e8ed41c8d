// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import (
	"context"
	"fmt"
	"runtime"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/format"
	"golang.org/x/sync/errgroup"
)

// Session renders declarations with one registry and one policy. Both are
// immutable, so a session may render declarations concurrently.
type Session struct {
	registry *Registry
	policy   format.Policy
}

// NewSession returns a session. The registry must be frozen.
func NewSession(registry *Registry, policy format.Policy) *Session {
	if !registry.Frozen() {
		panic("emit: session requires a frozen registry")
	}
	return &Session{registry: registry, policy: policy}
}

// Policy returns the session's formatting policy.
func (s *Session) Policy() format.Policy { return s.policy }

// Render renders one declaration in a fresh context. An internal-consistency
// failure aborts the declaration and is returned wrapped around
// ErrInternalConsistency; no partial output is returned.
func (s *Session) Render(scope Scope, decl *ast.Declaration) (out Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ConsistencyError)
			if !ok {
				panic(r)
			}
			out = Output{}
			err = fmt.Errorf("%s %s: %w", decl.Kind, decl.Name, ce)
		}
	}()

	ctx := NewContext(s.registry, s.policy, scope, decl.Returns)
	switch decl.Kind {
	case ast.FieldDeclaration:
		ctx.Emit(decl.Init, decl.Returns)
	default:
		ctx.EmitBody(decl.Body)
	}
	return ctx.Output(), nil
}

// Result is the outcome of rendering one declaration of a unit.
type Result struct {
	Declaration *ast.Declaration
	Output      Output
	Err         error
}

// RenderUnit renders every declaration of unit in parallel. Results keep
// declaration order; a failed declaration does not stop the others. The
// returned error is non-nil only when ctx is cancelled.
func (s *Session) RenderUnit(ctx context.Context, unit *ast.Unit) ([]Result, error) {
	results := make([]Result, len(unit.Declarations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range unit.Declarations {
		decl := &unit.Declarations[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := s.Render(ScopeFor(unit.Type, decl), decl)
			results[i] = Result{Declaration: decl, Output: out, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
