// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package ast

// LocalAssignment stores Value into Local. Declare marks the first assignment,
// which is rendered as a declaration.
type LocalAssignment struct {
	Local   Local
	Value   Instruction
	Declare bool
}

// InstanceFieldAssignment stores Value into a field of Receiver.
type InstanceFieldAssignment struct {
	Owner    Type
	Name     string
	Type     Type
	Receiver Instruction
	Value    Instruction
}

// StaticFieldAssignment stores Value into a static field.
type StaticFieldAssignment struct {
	Owner Type
	Name  string
	Type  Type
	Value Instruction
}

// ArrayAssignment stores Value into Array[Index].
type ArrayAssignment struct {
	Array Instruction
	Index Instruction
	Value Instruction
}

// Increment adds Delta to an integer local.
type Increment struct {
	Local Local
	Delta int32
}

// InvokeStatement evaluates a call for its side effects.
type InvokeStatement struct {
	Call Instruction
}

// Return leaves the member, with a Value unless the member returns void.
type Return struct {
	Value Instruction
}

// If runs Body when Cond holds, Else otherwise.
type If struct {
	Cond Instruction
	Body []Statement
	Else []Statement
}

// While runs Body as long as Cond holds.
type While struct {
	Cond Instruction
	Body []Statement
}

// For is the counted loop form. Init and Incr are optional.
type For struct {
	Init Statement
	Cond Instruction
	Incr Statement
	Body []Statement
}

// Comment is a line comment block emitted verbatim.
type Comment struct {
	Lines []string
}

func (*LocalAssignment) Kind() Kind         { return KindLocalAssignment }
func (*InstanceFieldAssignment) Kind() Kind { return KindInstanceFieldAssignment }
func (*StaticFieldAssignment) Kind() Kind   { return KindStaticFieldAssignment }
func (*ArrayAssignment) Kind() Kind         { return KindArrayAssignment }
func (*Increment) Kind() Kind               { return KindIncrement }
func (*InvokeStatement) Kind() Kind         { return KindInvokeStatement }
func (*Return) Kind() Kind                  { return KindReturn }
func (*If) Kind() Kind                      { return KindIf }
func (*While) Kind() Kind                   { return KindWhile }
func (*For) Kind() Kind                     { return KindFor }
func (*Comment) Kind() Kind                 { return KindComment }

func (*LocalAssignment) statement()         {}
func (*InstanceFieldAssignment) statement() {}
func (*StaticFieldAssignment) statement()   {}
func (*ArrayAssignment) statement()         {}
func (*Increment) statement()               {}
func (*InvokeStatement) statement()         {}
func (*Return) statement()                  {}
func (*If) statement()                      {}
func (*While) statement()                   {}
func (*For) statement()                     {}
func (*Comment) statement()                 {}

// DeclarationKind distinguishes the members a Declaration can describe.
type DeclarationKind int

const (
	MethodDeclaration DeclarationKind = iota
	ConstructorDeclaration
	FieldDeclaration
)

// String returns the document name of the declaration kind.
func (k DeclarationKind) String() string {
	switch k {
	case MethodDeclaration:
		return "method"
	case ConstructorDeclaration:
		return "constructor"
	case FieldDeclaration:
		return "field"
	}
	return "unknown"
}

// Declaration is one renderable member: a method or constructor body, or a
// field initializer. Returns is the method's return type or the field's type.
type Declaration struct {
	Kind    DeclarationKind
	Name    string
	Static  bool
	Returns Type
	Body    []Statement
	Init    Instruction
}

// MemberName returns the name used for scope resolution; constructors are
// always named Constructor.
func (d *Declaration) MemberName() string {
	if d.Kind == ConstructorDeclaration {
		return Constructor
	}
	return d.Name
}

// Unit groups the declarations of one compiled type. Type is the type's
// internal name ("com/example/Foo"), or "" when there is no enclosing type.
type Unit struct {
	Type         string
	Declarations []Declaration
}
