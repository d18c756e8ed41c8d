// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import "github.com/parhelia512/Despector/internal/ast"

// Scope is the resolution scope of the declaration being rendered. It is
// either NoEnclosingScope or InstanceScope.
type Scope interface {
	scope()
}

// NoEnclosingScope is used when the enclosing type is unknown.
type NoEnclosingScope struct{}

// InstanceScope identifies the enclosing type (internal name) and member.
// Member is empty for field initializers.
type InstanceScope struct {
	Type   string
	Member string
	Static bool
}

func (NoEnclosingScope) scope() {}
func (InstanceScope) scope()    {}

// ScopeFor returns the scope of decl inside a unit whose type is unitType.
func ScopeFor(unitType string, decl *ast.Declaration) Scope {
	if unitType == "" {
		return NoEnclosingScope{}
	}
	member := decl.MemberName()
	if decl.Kind == ast.FieldDeclaration {
		member = ""
	}
	return InstanceScope{Type: unitType, Member: member, Static: decl.Static}
}
