// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package ast

// Constructor is the member name of instance initializers.
const Constructor = "<init>"

// Local is a local variable slot. Slot 0 of an instance member holds the receiver.
type Local struct {
	Index int
	Name  string
	Type  Type
}

// IntConstant is an int literal. Booleans and chars are int constants whose
// surface form depends on the expected type.
type IntConstant struct {
	Value int32
}

// LongConstant is a long literal.
type LongConstant struct {
	Value int64
}

// StringConstant is a string literal.
type StringConstant struct {
	Value string
}

// NullConstant is the null reference.
type NullConstant struct{}

// LocalAccess reads a local variable.
type LocalAccess struct {
	Local Local
}

// InstanceFieldAccess reads a field of Receiver.
type InstanceFieldAccess struct {
	Owner    Type
	Name     string
	Type     Type
	Receiver Instruction
}

// StaticFieldAccess reads a static field.
type StaticFieldAccess struct {
	Owner Type
	Name  string
	Type  Type
}

// ArrayAccess reads Array[Index].
type ArrayAccess struct {
	Array Instruction
	Index Instruction
}

// InstanceMethodInvoke calls Name on Callee. Desc is the method descriptor.
type InstanceMethodInvoke struct {
	Owner  Type
	Name   string
	Desc   string
	Callee Instruction
	Args   []Instruction
}

// OwnerName returns the internal name of the declaring type.
func (i *InstanceMethodInvoke) OwnerName() string { return i.Owner.InternalName() }

// StaticMethodInvoke calls a static method.
type StaticMethodInvoke struct {
	Owner Type
	Name  string
	Desc  string
	Args  []Instruction
}

// New allocates Type and runs the constructor described by Desc.
type New struct {
	Type Type
	Desc string
	Args []Instruction
}

// NewArray allocates a one-dimensional array of Elem. It either has a Size or
// an initializer list in Values.
type NewArray struct {
	Elem   Type
	Size   Instruction
	Values []Instruction
}

// MultiNewArray allocates a multi-dimensional array. Type is the full array
// descriptor and Sizes holds one expression per allocated dimension.
type MultiNewArray struct {
	Type  Type
	Sizes []Instruction
}

// Cast converts Value to Type.
type Cast struct {
	Type  Type
	Value Instruction
}

// Operator is a binary operation such as "+", "<" or "&&".
type Operator struct {
	Op    string
	Left  Instruction
	Right Instruction
}

// IsComparison reports whether the operator yields a boolean.
func (o *Operator) IsComparison() bool {
	switch o.Op {
	case "==", "!=", "<", "<=", ">", ">=", "&&", "||":
		return true
	}
	return false
}

func (*IntConstant) Kind() Kind          { return KindIntConstant }
func (*LongConstant) Kind() Kind         { return KindLongConstant }
func (*StringConstant) Kind() Kind       { return KindStringConstant }
func (*NullConstant) Kind() Kind         { return KindNullConstant }
func (*LocalAccess) Kind() Kind          { return KindLocalAccess }
func (*InstanceFieldAccess) Kind() Kind  { return KindInstanceFieldAccess }
func (*StaticFieldAccess) Kind() Kind    { return KindStaticFieldAccess }
func (*ArrayAccess) Kind() Kind          { return KindArrayAccess }
func (*InstanceMethodInvoke) Kind() Kind { return KindInstanceMethodInvoke }
func (*StaticMethodInvoke) Kind() Kind   { return KindStaticMethodInvoke }
func (*New) Kind() Kind                  { return KindNew }
func (*NewArray) Kind() Kind             { return KindNewArray }
func (*MultiNewArray) Kind() Kind        { return KindMultiNewArray }
func (*Cast) Kind() Kind                 { return KindCast }
func (*Operator) Kind() Kind             { return KindOperator }

func (*IntConstant) InferType() Type           { return Int }
func (*LongConstant) InferType() Type          { return Long }
func (*StringConstant) InferType() Type        { return String }
func (*NullConstant) InferType() Type          { return Object }
func (l *LocalAccess) InferType() Type         { return l.Local.Type }
func (f *InstanceFieldAccess) InferType() Type { return f.Type }
func (f *StaticFieldAccess) InferType() Type   { return f.Type }
func (n *New) InferType() Type                 { return n.Type }
func (n *NewArray) InferType() Type            { return ArrayOf(n.Elem, 1) }
func (n *MultiNewArray) InferType() Type       { return n.Type }
func (c *Cast) InferType() Type                { return c.Type }

func (a *ArrayAccess) InferType() Type {
	if a.Array == nil {
		return ""
	}
	return a.Array.InferType().Elem()
}

func (i *InstanceMethodInvoke) InferType() Type { return returnType(i.Desc) }
func (s *StaticMethodInvoke) InferType() Type   { return returnType(s.Desc) }

func (o *Operator) InferType() Type {
	if o.IsComparison() {
		return Boolean
	}
	if o.Left == nil {
		return ""
	}
	return o.Left.InferType()
}

func returnType(desc string) Type {
	_, ret, err := SplitSignature(desc)
	if err != nil {
		return ""
	}
	return ret
}

func (*IntConstant) instruction()          {}
func (*LongConstant) instruction()         {}
func (*StringConstant) instruction()       {}
func (*NullConstant) instruction()         {}
func (*LocalAccess) instruction()          {}
func (*InstanceFieldAccess) instruction()  {}
func (*StaticFieldAccess) instruction()    {}
func (*ArrayAccess) instruction()          {}
func (*InstanceMethodInvoke) instruction() {}
func (*StaticMethodInvoke) instruction()   {}
func (*New) instruction()                  {}
func (*NewArray) instruction()             {}
func (*MultiNewArray) instruction()        {}
func (*Cast) instruction()                 {}
func (*Operator) instruction()             {}
