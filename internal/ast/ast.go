// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package ast defines the reconstructed syntax tree of a decompiled declaration.
//
// Nodes are produced by a front end and treated as read-only by the emitters.
// The set of node kinds is closed: every node reports one Kind, and every Kind
// is either an instruction (a node that yields a value) or a statement.
package ast

import "fmt"

// Kind identifies the variant of a node.
type Kind int

// Instruction kinds.
const (
	KindIntConstant Kind = iota
	KindLongConstant
	KindStringConstant
	KindNullConstant
	KindLocalAccess
	KindInstanceFieldAccess
	KindStaticFieldAccess
	KindArrayAccess
	KindInstanceMethodInvoke
	KindStaticMethodInvoke
	KindNew
	KindNewArray
	KindMultiNewArray
	KindCast
	KindOperator

	firstStatementKind
)

// Statement kinds.
const (
	KindLocalAssignment Kind = iota + firstStatementKind
	KindInstanceFieldAssignment
	KindStaticFieldAssignment
	KindArrayAssignment
	KindIncrement
	KindInvokeStatement
	KindReturn
	KindIf
	KindWhile
	KindFor
	KindComment

	// NumKinds is the number of node kinds.
	NumKinds
)

var kindNames = [NumKinds]string{
	KindIntConstant:             "int",
	KindLongConstant:            "long",
	KindStringConstant:          "string",
	KindNullConstant:            "null",
	KindLocalAccess:             "local",
	KindInstanceFieldAccess:     "field",
	KindStaticFieldAccess:       "static_field",
	KindArrayAccess:             "array_access",
	KindInstanceMethodInvoke:    "invoke",
	KindStaticMethodInvoke:      "invoke_static",
	KindNew:                     "new",
	KindNewArray:                "new_array",
	KindMultiNewArray:           "multi_new_array",
	KindCast:                    "cast",
	KindOperator:                "operator",
	KindLocalAssignment:         "assign_local",
	KindInstanceFieldAssignment: "assign_field",
	KindStaticFieldAssignment:   "assign_static_field",
	KindArrayAssignment:         "assign_array",
	KindIncrement:               "increment",
	KindInvokeStatement:         "call",
	KindReturn:                  "return",
	KindIf:                      "if",
	KindWhile:                   "while",
	KindFor:                     "for",
	KindComment:                 "comment",
}

// String returns the kind's document name (e.g. "multi_new_array").
func (k Kind) String() string {
	if k < 0 || k >= NumKinds || kindNames[k] == "" {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsInstruction reports whether k is an instruction kind.
func (k Kind) IsInstruction() bool {
	return k >= 0 && k < firstStatementKind
}

// IsStatement reports whether k is a statement kind.
func (k Kind) IsStatement() bool {
	return k >= firstStatementKind && k < NumKinds
}

// KindByName looks up a kind by its document name.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n != "" && n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Node is implemented by every tree node.
type Node interface {
	Kind() Kind
}

// Instruction is a node that yields a value.
type Instruction interface {
	Node
	// InferType returns the static type of the value, or "" when unknown.
	InferType() Type
	instruction()
}

// Statement is a node with no value.
type Statement interface {
	Node
	statement()
}
