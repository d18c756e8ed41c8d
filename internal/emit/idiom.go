// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import (
	"fmt"
	"sort"

	"github.com/parhelia512/Despector/internal/ast"
)

// Arity classifies how an idiom changes a call's surface form.
type Arity int

const (
	// NoCallee omits the receiver and the member access dot.
	NoCallee Arity = iota + 1
	// NoParams omits the argument list, rendering a property access.
	NoParams
	// FullRewrite hands the whole call to an IdiomRenderer.
	FullRewrite
)

func (a Arity) String() string {
	switch a {
	case NoCallee:
		return "no-callee"
	case NoParams:
		return "no-params"
	case FullRewrite:
		return "rewrite"
	}
	return fmt.Sprintf("Arity(%d)", int(a))
}

// Outcome is the result of a full-rewrite idiom renderer.
type Outcome int

const (
	// Declined means nothing was written and the generic renderer must run.
	Declined Outcome = iota
	// Handled means the idiomatic form was written.
	Handled
)

// IdiomRenderer rewrites a call into idiomatic syntax. It writes into the
// staging context it is given and must not write anything when it declines.
type IdiomRenderer interface {
	RenderIdiom(ctx *Context, call *ast.InstanceMethodInvoke, expected ast.Type) Outcome
}

// IdiomFunc adapts a function to IdiomRenderer.
type IdiomFunc func(ctx *Context, call *ast.InstanceMethodInvoke, expected ast.Type) Outcome

// RenderIdiom implements IdiomRenderer.
func (f IdiomFunc) RenderIdiom(ctx *Context, call *ast.InstanceMethodInvoke, expected ast.Type) Outcome {
	return f(ctx, call, expected)
}

// IdiomRule binds a call signature to an idiom.
type IdiomRule struct {
	Signature string
	Arity     Arity
	Renderer  IdiomRenderer
}

// Signature returns the lookup key of a call: owner descriptor followed by the
// member name, e.g. "Ljava/util/Map;get".
func Signature(owner ast.Type, member string) string {
	return string(owner) + member
}

// IdiomTable is a read-only set of idiom rules keyed by signature. A nil table
// has no rules.
type IdiomTable struct {
	rules map[string]IdiomRule
}

// NewIdiomTable builds a table. Signatures must be unique and full rewrites
// must carry a renderer.
func NewIdiomTable(rules ...IdiomRule) (*IdiomTable, error) {
	t := &IdiomTable{rules: make(map[string]IdiomRule, len(rules))}
	for _, rule := range rules {
		if rule.Signature == "" {
			return nil, fmt.Errorf("emit: idiom rule without signature")
		}
		if _, dup := t.rules[rule.Signature]; dup {
			return nil, fmt.Errorf("emit: duplicate idiom rule for %s", rule.Signature)
		}
		switch rule.Arity {
		case NoCallee, NoParams:
		case FullRewrite:
			if rule.Renderer == nil {
				return nil, fmt.Errorf("emit: idiom rule %s has no renderer", rule.Signature)
			}
		default:
			return nil, fmt.Errorf("emit: idiom rule %s has invalid arity %s", rule.Signature, rule.Arity)
		}
		t.rules[rule.Signature] = rule
	}
	return t, nil
}

// MustIdiomTable is NewIdiomTable for package initialisation.
func MustIdiomTable(rules ...IdiomRule) *IdiomTable {
	t, err := NewIdiomTable(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the rule registered for signature.
func (t *IdiomTable) Lookup(signature string) (IdiomRule, bool) {
	if t == nil {
		return IdiomRule{}, false
	}
	rule, ok := t.rules[signature]
	return rule, ok
}

// Has reports whether signature is registered with the given arity.
func (t *IdiomTable) Has(signature string, arity Arity) bool {
	rule, ok := t.Lookup(signature)
	return ok && rule.Arity == arity
}

// Rules returns every rule sorted by signature.
func (t *IdiomTable) Rules() []IdiomRule {
	if t == nil {
		return nil
	}
	rules := make([]IdiomRule, 0, len(t.rules))
	for _, rule := range t.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Signature < rules[j].Signature })
	return rules
}

// Rewrite runs the full-rewrite idiom registered for call, if any. The idiom
// renders into a staging context which is committed to ctx when it reports
// Handled and discarded when it declines. Rewrite reports whether the call
// was rendered.
func (t *IdiomTable) Rewrite(ctx *Context, call *ast.InstanceMethodInvoke, expected ast.Type) bool {
	rule, ok := t.Lookup(Signature(call.Owner, call.Name))
	if !ok || rule.Arity != FullRewrite {
		return false
	}
	stage := ctx.Stage()
	switch rule.Renderer.RenderIdiom(stage, call, expected) {
	case Handled:
		if stage.Len() == 0 {
			Failf("idiom %s reported handled without output", rule.Signature)
		}
		ctx.Commit(stage)
		return true
	case Declined:
		if stage.Len() > 0 {
			Failf("idiom %s declined after writing %q", rule.Signature, stage.String())
		}
		return false
	default:
		Failf("idiom %s returned an invalid outcome", rule.Signature)
		return false
	}
}
