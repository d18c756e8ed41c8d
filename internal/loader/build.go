// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package loader

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/parhelia512/Despector/internal/ast"
)

// builder converts a decoded document into a unit. The first error is kept
// and reported with the path of the offending node.
type builder struct {
	err error
}

func (b *builder) fail(path, format string, args ...any) {
	if b.err != nil {
		return
	}
	if path == "" {
		path = "document"
	}
	b.err = fmt.Errorf("%w: %s: %s", ErrInvalidDocument, path, fmt.Sprintf(format, args...))
}

func build(doc any) (*ast.Unit, error) {
	b := &builder{}
	root := b.object("", doc)
	unit := &ast.Unit{Type: root.str("type", false)}
	for i, v := range root.list("declarations", true) {
		unit.Declarations = append(unit.Declarations, b.declaration(indexed(root.child("declarations"), i), v))
	}
	root.done()
	if b.err != nil {
		return nil, b.err
	}
	return unit, nil
}

var declarationKinds = map[string]ast.DeclarationKind{
	"method":      ast.MethodDeclaration,
	"constructor": ast.ConstructorDeclaration,
	"field":       ast.FieldDeclaration,
}

func (b *builder) declaration(path string, v any) ast.Declaration {
	o := b.object(path, v)
	decl := ast.Declaration{
		Name:   o.str("name", false),
		Static: o.boolean("static"),
	}

	name := o.str("kind", false)
	if name == "" {
		name = "method"
	}
	kind, ok := declarationKinds[name]
	if !ok {
		b.fail(o.child("kind"), "unknown declaration kind %q", name)
	}
	decl.Kind = kind

	switch kind {
	case ast.FieldDeclaration:
		decl.Returns = o.typ("returns", true)
		decl.Init = o.insn("init", true)
	default:
		decl.Returns = o.typ("returns", false)
		if decl.Returns == "" {
			decl.Returns = ast.Void
		}
		decl.Body = o.stmts("body")
	}
	if kind != ast.ConstructorDeclaration && decl.Name == "" {
		b.fail(o.child("name"), "missing")
	}
	o.done()
	return decl
}

func (b *builder) insn(path string, v any) ast.Instruction {
	o := b.object(path, v)
	defer o.done()

	kind := o.kind()
	if b.err != nil {
		return nil
	}
	if !kind.IsInstruction() {
		b.fail(o.child("kind"), "%s is a statement, expected an instruction", kind)
		return nil
	}

	switch kind {
	case ast.KindIntConstant:
		return &ast.IntConstant{Value: int32(o.integer("value", math.MinInt32, math.MaxInt32))}
	case ast.KindLongConstant:
		return &ast.LongConstant{Value: o.integer("value", math.MinInt64, math.MaxInt64)}
	case ast.KindStringConstant:
		o.get("value", true)
		return &ast.StringConstant{Value: o.str("value", false)}
	case ast.KindNullConstant:
		return &ast.NullConstant{}
	case ast.KindLocalAccess:
		return &ast.LocalAccess{Local: o.local("local")}
	case ast.KindInstanceFieldAccess:
		return &ast.InstanceFieldAccess{
			Owner:    o.typ("owner", true),
			Name:     o.str("name", true),
			Type:     o.typ("type", true),
			Receiver: o.insn("receiver", true),
		}
	case ast.KindStaticFieldAccess:
		return &ast.StaticFieldAccess{Owner: o.typ("owner", true), Name: o.str("name", true), Type: o.typ("type", true)}
	case ast.KindArrayAccess:
		return &ast.ArrayAccess{Array: o.insn("array", true), Index: o.insn("index", true)}
	case ast.KindInstanceMethodInvoke:
		return &ast.InstanceMethodInvoke{
			Owner:  o.typ("owner", true),
			Name:   o.str("name", true),
			Desc:   o.desc("desc"),
			Callee: o.insn("callee", true),
			Args:   o.insns("args"),
		}
	case ast.KindStaticMethodInvoke:
		return &ast.StaticMethodInvoke{Owner: o.typ("owner", true), Name: o.str("name", true), Desc: o.desc("desc"), Args: o.insns("args")}
	case ast.KindNew:
		return &ast.New{Type: o.typ("type", true), Desc: o.desc("desc"), Args: o.insns("args")}
	case ast.KindNewArray:
		n := &ast.NewArray{Elem: o.typ("elem", true), Size: o.insn("size", false), Values: o.insns("values")}
		if n.Size == nil && n.Values == nil {
			b.fail(path, "new_array needs a size or values")
		}
		return n
	case ast.KindMultiNewArray:
		return &ast.MultiNewArray{Type: o.typ("type", true), Sizes: o.insns("sizes")}
	case ast.KindCast:
		return &ast.Cast{Type: o.typ("type", true), Value: o.insn("value", true)}
	case ast.KindOperator:
		return &ast.Operator{Op: o.str("op", true), Left: o.insn("left", true), Right: o.insn("right", true)}
	}
	b.fail(o.child("kind"), "unsupported instruction %s", kind)
	return nil
}

func (b *builder) stmt(path string, v any) ast.Statement {
	o := b.object(path, v)
	defer o.done()

	kind := o.kind()
	if b.err != nil {
		return nil
	}
	if !kind.IsStatement() {
		b.fail(o.child("kind"), "%s is an instruction, expected a statement", kind)
		return nil
	}

	switch kind {
	case ast.KindLocalAssignment:
		return &ast.LocalAssignment{Local: o.local("local"), Value: o.insn("value", true), Declare: o.boolean("declare")}
	case ast.KindInstanceFieldAssignment:
		return &ast.InstanceFieldAssignment{
			Owner:    o.typ("owner", true),
			Name:     o.str("name", true),
			Type:     o.typ("type", true),
			Receiver: o.insn("receiver", true),
			Value:    o.insn("value", true),
		}
	case ast.KindStaticFieldAssignment:
		return &ast.StaticFieldAssignment{
			Owner: o.typ("owner", true),
			Name:  o.str("name", true),
			Type:  o.typ("type", true),
			Value: o.insn("value", true),
		}
	case ast.KindArrayAssignment:
		return &ast.ArrayAssignment{Array: o.insn("array", true), Index: o.insn("index", true), Value: o.insn("value", true)}
	case ast.KindIncrement:
		return &ast.Increment{Local: o.local("local"), Delta: int32(o.integer("delta", math.MinInt32, math.MaxInt32))}
	case ast.KindInvokeStatement:
		return &ast.InvokeStatement{Call: o.insn("call", true)}
	case ast.KindReturn:
		return &ast.Return{Value: o.insn("value", false)}
	case ast.KindIf:
		return &ast.If{Cond: o.insn("cond", true), Body: o.stmts("body"), Else: o.stmts("else")}
	case ast.KindWhile:
		return &ast.While{Cond: o.insn("cond", true), Body: o.stmts("body")}
	case ast.KindFor:
		return &ast.For{Init: o.stmt("init"), Cond: o.insn("cond", false), Incr: o.stmt("incr"), Body: o.stmts("body")}
	case ast.KindComment:
		return &ast.Comment{Lines: o.strings("lines")}
	}
	b.fail(o.child("kind"), "unsupported statement %s", kind)
	return nil
}

// object is one mapping of the document. It records the keys read so that
// unknown keys can be reported.
type object struct {
	b    *builder
	path string
	m    map[string]any
	used map[string]bool
}

func (b *builder) object(path string, v any) *object {
	o := &object{b: b, path: path, used: make(map[string]bool)}
	switch m := v.(type) {
	case map[string]any:
		o.m = m
	case map[any]any:
		o.m = make(map[string]any, len(m))
		for k, val := range m {
			o.m[fmt.Sprint(k)] = val
		}
	default:
		b.fail(path, "expected a mapping, got %s", describe(v))
	}
	return o
}

func (o *object) child(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

func indexed(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func (o *object) get(key string, required bool) (any, bool) {
	o.used[key] = true
	v, ok := o.m[key]
	if !ok || v == nil {
		if required {
			o.b.fail(o.child(key), "missing")
		}
		return nil, false
	}
	return v, true
}

// done reports the first unknown key, in sorted order.
func (o *object) done() {
	var unknown []string
	for key := range o.m {
		if !o.used[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		o.b.fail(o.child(unknown[0]), "unknown key")
	}
}

func (o *object) kind() ast.Kind {
	name := o.str("kind", true)
	if name == "" {
		return ast.NumKinds
	}
	kind, ok := ast.KindByName(name)
	if !ok {
		o.b.fail(o.child("kind"), "unknown node kind %q", name)
	}
	return kind
}

func (o *object) str(key string, required bool) string {
	v, ok := o.get(key, required)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		o.b.fail(o.child(key), "expected a string, got %s", describe(v))
	}
	return s
}

func (o *object) typ(key string, required bool) ast.Type {
	t := ast.Type(o.str(key, required))
	if t != "" && !t.Valid() {
		o.b.fail(o.child(key), "%v %q", ast.ErrMalformedDescriptor, t)
	}
	return t
}

func (o *object) desc(key string) string {
	d := o.str(key, true)
	if d == "" {
		return ""
	}
	if _, _, err := ast.SplitSignature(d); err != nil {
		o.b.fail(o.child(key), "%v", err)
	}
	return d
}

func (o *object) boolean(key string) bool {
	v, ok := o.get(key, false)
	if !ok {
		return false
	}
	flag, ok := v.(bool)
	if !ok {
		o.b.fail(o.child(key), "expected a boolean, got %s", describe(v))
	}
	return flag
}

func (o *object) integer(key string, lo, hi int64) int64 {
	v, ok := o.get(key, true)
	if !ok {
		return 0
	}
	n, ok := toInt64(v)
	if !ok {
		o.b.fail(o.child(key), "expected an integer, got %s", describe(v))
		return 0
	}
	if n < lo || n > hi {
		o.b.fail(o.child(key), "%d out of range", n)
	}
	return n
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case float64:
		return int64(n), n == math.Trunc(n) && n >= math.MinInt64 && n <= math.MaxInt64
	case interface{ Int64() (int64, error) }:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

func (o *object) list(key string, required bool) []any {
	v, ok := o.get(key, required)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		o.b.fail(o.child(key), "expected a list, got %s", describe(v))
	}
	return items
}

func (o *object) strings(key string) []string {
	items := o.list(key, false)
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			o.b.fail(indexed(o.child(key), i), "expected a string, got %s", describe(item))
		}
		out[i] = s
	}
	return out
}

func (o *object) local(key string) ast.Local {
	v, ok := o.get(key, true)
	if !ok {
		return ast.Local{}
	}
	l := o.b.object(o.child(key), v)
	local := ast.Local{
		Index: int(l.integer("index", 0, math.MaxUint16)),
		Name:  l.str("name", false),
		Type:  l.typ("type", true),
	}
	l.done()
	return local
}

func (o *object) insn(key string, required bool) ast.Instruction {
	v, ok := o.get(key, required)
	if !ok {
		return nil
	}
	return o.b.insn(o.child(key), v)
}

func (o *object) stmt(key string) ast.Statement {
	v, ok := o.get(key, false)
	if !ok {
		return nil
	}
	return o.b.stmt(o.child(key), v)
}

// insns returns nil when key is absent and a non-nil slice when it is a list.
func (o *object) insns(key string) []ast.Instruction {
	items := o.list(key, false)
	if items == nil {
		return nil
	}
	out := make([]ast.Instruction, len(items))
	for i, item := range items {
		out[i] = o.b.insn(indexed(o.child(key), i), item)
	}
	return out
}

func (o *object) stmts(key string) []ast.Statement {
	items := o.list(key, false)
	if len(items) == 0 {
		return nil
	}
	out := make([]ast.Statement, len(items))
	for i, item := range items {
		out[i] = o.b.stmt(indexed(o.child(key), i), item)
	}
	return out
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case []any:
		return "a list"
	case map[string]any, map[any]any:
		return "a mapping"
	}
	if _, ok := toInt64(v); ok {
		return "a number"
	}
	return fmt.Sprintf("%T", v)
}
