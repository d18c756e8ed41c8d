// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package java

import (
	"strings"
	"testing"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widget = "com/example/Widget"

var (
	self = &ast.LocalAccess{Local: ast.Local{Index: 0, Name: "this", Type: ast.ClassType(widget)}}
	i    = ast.Local{Index: 1, Name: "i", Type: ast.Int}
	a    = &ast.LocalAccess{Local: ast.Local{Index: 2, Name: "a", Type: ast.Int}}
	b    = &ast.LocalAccess{Local: ast.Local{Index: 3, Name: "b", Type: ast.Int}}
	c    = &ast.LocalAccess{Local: ast.Local{Index: 4, Name: "c", Type: ast.Int}}
	tick = &ast.InvokeStatement{Call: &ast.StaticMethodInvoke{Owner: ast.ClassType("com/example/Log"), Name: "tick", Desc: "()V"}}
)

func method(returns ast.Type, body ...ast.Statement) *ast.Declaration {
	return &ast.Declaration{Kind: ast.MethodDeclaration, Name: "run", Returns: returns, Body: body}
}

func render(t *testing.T, policy format.Policy, decl *ast.Declaration) emit.Output {
	t.Helper()
	session := emit.NewSession(Dialect{}.Registry(), policy)
	out, err := session.Render(emit.ScopeFor(widget, decl), decl)
	require.NoError(t, err)
	return out
}

func renderErr(t *testing.T, decl *ast.Declaration) error {
	t.Helper()
	session := emit.NewSession(Dialect{}.Registry(), format.Default())
	out, err := session.Render(emit.ScopeFor(widget, decl), decl)
	require.Error(t, err)
	assert.Empty(t, out.Text)
	return err
}

func expr(t *testing.T, policy format.Policy, insn ast.Instruction, expected ast.Type) emit.Output {
	t.Helper()
	decl := &ast.Declaration{Kind: ast.FieldDeclaration, Name: "value", Returns: expected, Init: insn}
	return render(t, policy, decl)
}

func counted(body ...ast.Statement) *ast.For {
	return &ast.For{
		Init: &ast.LocalAssignment{Local: i, Value: &ast.IntConstant{Value: 0}},
		Cond: &ast.Operator{Op: "<", Left: &ast.LocalAccess{Local: i}, Right: &ast.IntConstant{Value: 10}},
		Incr: &ast.Increment{Local: i, Delta: 1},
		Body: body,
	}
}

func TestRegistry_Total(t *testing.T) {
	r := Dialect{}.Registry()
	assert.True(t, r.Frozen())
	assert.Empty(t, r.Missing())
	assert.Equal(t, "java", Dialect{}.Name())
	assert.Equal(t, ".java", Dialect{}.FileExtension())
}

func TestFor_DefaultPolicy(t *testing.T) {
	out := render(t, format.Default(), method(ast.Void, counted(tick)))
	assert.Equal(t, "for(i=0; i<10; i++) {\n    Log.tick();\n}", out.Text)
}

func TestFor_EmptyBody(t *testing.T) {
	out := render(t, format.Default(), method(ast.Void, counted()))
	assert.Equal(t, "for(i=0; i<10; i++) {\n}", out.Text)
}

func TestFor_Conventional(t *testing.T) {
	out := render(t, format.Conventional(), method(ast.Void, counted(tick)))
	assert.Equal(t, "for (i = 0; i < 10; i++) {\n    Log.tick();\n}", out.Text)
}

func TestFor_AbsentParts(t *testing.T) {
	loop := &ast.For{Cond: &ast.Operator{Op: "<", Left: &ast.LocalAccess{Local: i}, Right: &ast.IntConstant{Value: 3}}}
	out := render(t, format.Default(), method(ast.Void, loop))
	assert.Equal(t, "for(; i<3; ) {\n}", out.Text)
}

func TestFor_Nested(t *testing.T) {
	out := render(t, format.New(format.IndentWithTabs), method(ast.Void, counted(counted(tick))))
	assert.Equal(t, "for(i=0; i<10; i++) {\n\tfor(i=0; i<10; i++) {\n\t\tLog.tick();\n\t}\n}", out.Text)
}

func TestWhileAndIf(t *testing.T) {
	flag := &ast.LocalAccess{Local: ast.Local{Index: 5, Name: "done", Type: ast.Boolean}}
	tests := []struct {
		name     string
		stmt     ast.Statement
		policy   format.Policy
		expected string
	}{
		{
			name:     "while",
			stmt:     &ast.While{Cond: flag, Body: []ast.Statement{tick}},
			expected: "while(done) {\n    Log.tick();\n}",
		},
		{
			name:     "while empty",
			stmt:     &ast.While{Cond: flag},
			policy:   format.New(format.SpaceBeforeOpeningParenInWhile, format.SpaceAfterOpeningParenInWhile),
			expected: "while ( done) {\n}",
		},
		{
			name:     "if else",
			stmt:     &ast.If{Cond: flag, Body: []ast.Statement{tick}, Else: []ast.Statement{&ast.Return{}}},
			expected: "if(done) {\n    Log.tick();\n} else {\n    return;\n}",
		},
		{
			name: "else if",
			stmt: &ast.If{
				Cond: flag,
				Body: []ast.Statement{tick},
				Else: []ast.Statement{&ast.If{Cond: &ast.Operator{Op: "==", Left: a, Right: b}}},
			},
			expected: "if(done) {\n    Log.tick();\n} else if(a==b) {\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, tt.policy, method(ast.Void, tt.stmt))
			assert.Equal(t, tt.expected, out.Text)
		})
	}
}

func TestMultiNewArray(t *testing.T) {
	three, four := &ast.IntConstant{Value: 3}, &ast.IntConstant{Value: 4}

	out := expr(t, format.Default(), &ast.MultiNewArray{Type: "[[I", Sizes: []ast.Instruction{three, four}}, "[[I")
	assert.Equal(t, "new int[3][4]", out.Text)

	spaced := format.New(format.SpaceAfterOpeningBracketInArrayAllocation, format.SpaceBeforeClosingBracketInArrayAllocation)
	out = expr(t, spaced, &ast.MultiNewArray{Type: "[[I", Sizes: []ast.Instruction{three, four}}, "[[I")
	assert.Equal(t, "new int[ 3 ][ 4 ]", out.Text)

	out = expr(t, format.Default(), &ast.MultiNewArray{Type: "[[[Ljava/lang/String;", Sizes: []ast.Instruction{a}}, "")
	assert.Equal(t, "new String[a][][]", out.Text)
}

func TestMultiNewArray_MissingMarker(t *testing.T) {
	decl := &ast.Declaration{
		Kind:    ast.FieldDeclaration,
		Name:    "grid",
		Returns: "[I",
		Init:    &ast.MultiNewArray{Type: "[I", Sizes: []ast.Instruction{a, b}},
	}
	err := renderErr(t, decl)
	assert.ErrorIs(t, err, emit.ErrInternalConsistency)
	assert.Contains(t, err.Error(), "field grid")
}

func TestNewArray(t *testing.T) {
	out := expr(t, format.Default(), &ast.NewArray{Elem: ast.Int, Size: a}, "")
	assert.Equal(t, "new int[a]", out.Text)

	out = expr(t, format.Default(), &ast.NewArray{Elem: "[I", Size: a}, "")
	assert.Equal(t, "new int[a][]", out.Text)

	out = expr(t, format.Conventional(), &ast.NewArray{Elem: ast.Int, Values: []ast.Instruction{a, b, c}}, "")
	assert.Equal(t, "new int[] {a, b, c}", out.Text)
	assert.Len(t, out.WrapPoints, 2)

	out = expr(t, format.Default(), &ast.NewArray{Elem: ast.Int, Values: []ast.Instruction{}}, "")
	assert.Equal(t, "new int[]{}", out.Text)
}

func TestVarargs(t *testing.T) {
	call := &ast.StaticMethodInvoke{
		Owner: ast.String,
		Name:  "format",
		Desc:  "(Ljava/lang/String;[Ljava/lang/Object;)Ljava/lang/String;",
		Args: []ast.Instruction{
			&ast.StringConstant{Value: "%s-%s"},
			&ast.NewArray{Elem: ast.Object, Values: []ast.Instruction{a, b}},
		},
	}
	out := expr(t, format.Default(), call, ast.String)
	assert.Equal(t, `String.format("%s-%s", a, b)`, out.Text)
	require.Len(t, out.WrapPoints, 2)
	for _, wp := range out.WrapPoints {
		assert.True(t, strings.HasSuffix(out.Text[:wp], ", "))
	}

	only := &ast.StaticMethodInvoke{
		Owner: ast.ClassType("java/util/Arrays"),
		Name:  "asList",
		Desc:  "([Ljava/lang/Object;)Ljava/util/List;",
		Args:  []ast.Instruction{&ast.NewArray{Elem: ast.Object, Values: []ast.Instruction{a, b, c}}},
	}
	out = expr(t, format.Default(), only, "")
	assert.Equal(t, "Arrays.asList(a, b, c)", out.Text)
	assert.Len(t, out.WrapPoints, 2)

	only.Args = []ast.Instruction{&ast.NewArray{Elem: ast.Object, Values: []ast.Instruction{a}}}
	out = expr(t, format.Default(), only, "")
	assert.Equal(t, "Arrays.asList(a)", out.Text)
	assert.Empty(t, out.WrapPoints)
}

func TestInvoke_ArgumentMismatch(t *testing.T) {
	call := &ast.StaticMethodInvoke{Owner: ast.ClassType("com/example/Log"), Name: "tick", Desc: "(I)V"}
	err := renderErr(t, method(ast.Void, &ast.InvokeStatement{Call: call}))
	assert.ErrorIs(t, err, emit.ErrInternalConsistency)
}

func TestInvoke_Receivers(t *testing.T) {
	base := ast.ClassType("com/example/Base")
	own := ast.ClassType(widget)
	list := &ast.LocalAccess{Local: ast.Local{Index: 6, Name: "items", Type: ast.ClassType("java/util/List")}}

	tests := []struct {
		name     string
		call     *ast.InstanceMethodInvoke
		expected string
	}{
		{"own method", &ast.InstanceMethodInvoke{Owner: own, Name: "reset", Desc: "()V", Callee: self}, "reset();"},
		{"inherited method", &ast.InstanceMethodInvoke{Owner: base, Name: "reset", Desc: "()V", Callee: self}, "super.reset();"},
		{"other receiver", &ast.InstanceMethodInvoke{Owner: ast.ClassType("java/util/List"), Name: "clear", Desc: "()V", Callee: list}, "items.clear();"},
		{"this constructor", &ast.InstanceMethodInvoke{Owner: own, Name: ast.Constructor, Desc: "()V", Callee: self}, "this();"},
		{"super constructor", &ast.InstanceMethodInvoke{Owner: base, Name: ast.Constructor, Desc: "(I)V", Callee: self, Args: []ast.Instruction{&ast.IntConstant{Value: 1}}}, "super(1);"},
		{
			"cast receiver",
			&ast.InstanceMethodInvoke{Owner: base, Name: "reset", Desc: "()V", Callee: &ast.Cast{Type: base, Value: list}},
			"((Base)items).reset();",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, format.Default(), method(ast.Void, &ast.InvokeStatement{Call: tt.call}))
			assert.Equal(t, tt.expected, out.Text)
		})
	}
}

func TestInvoke_StaticMember(t *testing.T) {
	decl := method(ast.Void, &ast.InvokeStatement{Call: &ast.StaticMethodInvoke{Owner: ast.ClassType(widget), Name: "init", Desc: "()V"}})
	decl.Static = true
	out := render(t, format.Default(), decl)
	assert.Equal(t, "init();", out.Text)

	out = render(t, format.New(format.SpaceBeforeOpeningParenInMethodInvocation, format.SpaceAfterOpeningParenInMethodInvocation, format.SpaceBeforeClosingParenInMethodInvocation),
		method(ast.Void, &ast.InvokeStatement{Call: &ast.StaticMethodInvoke{Owner: ast.ClassType("java/lang/Math"), Name: "max", Desc: "(II)I", Args: []ast.Instruction{a, b}}}))
	assert.Equal(t, "Math.max ( a, b );", out.Text)
}

func TestNew(t *testing.T) {
	n := &ast.New{Type: ast.ClassType("java/util/HashMap"), Desc: "(I)V", Args: []ast.Instruction{&ast.IntConstant{Value: 16}}}
	out := expr(t, format.Default(), n, "")
	assert.Equal(t, "new HashMap(16)", out.Text)
}

func TestFields(t *testing.T) {
	own := ast.ClassType(widget)
	count := &ast.InstanceFieldAccess{Owner: own, Name: "count", Type: ast.Int, Receiver: self}
	body := []ast.Statement{
		&ast.InstanceFieldAssignment{Owner: own, Name: "count", Type: ast.Int, Receiver: self, Value: &ast.Operator{Op: "+", Left: count, Right: &ast.IntConstant{Value: 1}}},
		&ast.StaticFieldAssignment{Owner: own, Name: "LAST", Type: ast.Int, Value: count},
		&ast.LocalAssignment{Local: i, Declare: true, Value: &ast.StaticFieldAccess{Owner: ast.ClassType("java/lang/Integer"), Name: "MAX_VALUE", Type: ast.Int}},
	}
	out := render(t, format.Conventional(), method(ast.Void, body...))
	assert.Equal(t, "this.count = this.count + 1;\n"+
		"LAST = this.count;\n"+
		"int i = Integer.MAX_VALUE;", out.Text)
}

func TestConstantCoercion(t *testing.T) {
	ch := ast.Local{Index: 1, Name: "ch", Type: ast.Char}
	tests := []struct {
		name     string
		decl     *ast.Declaration
		expected string
	}{
		{"boolean return", method(ast.Boolean, &ast.Return{Value: &ast.IntConstant{Value: 1}}), "return true;"},
		{"boolean false", method(ast.Boolean, &ast.Return{Value: &ast.IntConstant{Value: 0}}), "return false;"},
		{"char local", method(ast.Void, &ast.LocalAssignment{Local: ch, Value: &ast.IntConstant{Value: 'a'}}), "ch='a';"},
		{"char quote", method(ast.Char, &ast.Return{Value: &ast.IntConstant{Value: '\''}}), `return '\'';`},
		{"char newline", method(ast.Char, &ast.Return{Value: &ast.IntConstant{Value: '\n'}}), `return '\n';`},
		{
			"char comparison",
			method(ast.Boolean, &ast.Return{Value: &ast.Operator{Op: "==", Left: &ast.LocalAccess{Local: ch}, Right: &ast.IntConstant{Value: 'x'}}}),
			"return ch=='x';",
		},
		{"long", method(ast.Long, &ast.Return{Value: &ast.LongConstant{Value: 42}}), "return 42L;"},
		{"null", method(ast.Object, &ast.Return{Value: &ast.NullConstant{}}), "return null;"},
		{"string", method(ast.String, &ast.Return{Value: &ast.StringConstant{Value: "say \"hi\"\n"}}), `return "say \"hi\"\n";`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, format.Default(), tt.decl)
			assert.Equal(t, tt.expected, out.Text)
		})
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		insn     ast.Instruction
		expected string
	}{
		{"lower left", &ast.Operator{Op: "*", Left: &ast.Operator{Op: "+", Left: a, Right: b}, Right: c}, "(a+b)*c"},
		{"higher left", &ast.Operator{Op: "+", Left: &ast.Operator{Op: "*", Left: a, Right: b}, Right: c}, "a*b+c"},
		{"same right", &ast.Operator{Op: "-", Left: a, Right: &ast.Operator{Op: "-", Left: b, Right: c}}, "a-(b-c)"},
		{"same left", &ast.Operator{Op: "-", Left: &ast.Operator{Op: "-", Left: a, Right: b}, Right: c}, "a-b-c"},
		{"cast operand", &ast.Cast{Type: ast.Long, Value: &ast.Operator{Op: "+", Left: a, Right: b}}, "(long)(a+b)"},
		{"minus negative int", &ast.Operator{Op: "-", Left: a, Right: &ast.IntConstant{Value: -1}}, "a-(-1)"},
		{"minus negative long", &ast.Operator{Op: "-", Left: a, Right: &ast.LongConstant{Value: -2}}, "a-(-2L)"},
		{"plus negative int", &ast.Operator{Op: "+", Left: a, Right: &ast.IntConstant{Value: -3}}, "a+(-3)"},
		{"times negative int", &ast.Operator{Op: "*", Left: a, Right: &ast.IntConstant{Value: -3}}, "a*-3"},
		{"negative left", &ast.Operator{Op: "-", Left: &ast.IntConstant{Value: -1}, Right: a}, "-1-a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := expr(t, format.Default(), tt.insn, "")
			assert.Equal(t, tt.expected, out.Text)
		})
	}
}

func TestOperator_Unknown(t *testing.T) {
	decl := &ast.Declaration{Kind: ast.FieldDeclaration, Name: "x", Init: &ast.Operator{Op: "**", Left: a, Right: b}}
	assert.ErrorIs(t, renderErr(t, decl), emit.ErrInternalConsistency)
}

func TestArrays(t *testing.T) {
	arr := &ast.LocalAccess{Local: ast.Local{Index: 7, Name: "xs", Type: "[C"}}
	body := []ast.Statement{
		&ast.ArrayAssignment{Array: arr, Index: a, Value: &ast.IntConstant{Value: 'z'}},
		&ast.Return{Value: &ast.ArrayAccess{Array: arr, Index: &ast.IntConstant{Value: 0}}},
	}
	out := render(t, format.New(format.SpaceAfterOpeningBracketInArrayReference, format.SpaceBeforeClosingBracketInArrayReference), method(ast.Char, body...))
	assert.Equal(t, "xs[ a ]='z';\nreturn xs[ 0 ];", out.Text)
}

func TestIncrementAndComment(t *testing.T) {
	body := []ast.Statement{
		&ast.Increment{Local: i, Delta: -1},
		&ast.Increment{Local: i, Delta: 5},
		&ast.Increment{Local: i, Delta: -3},
		&ast.Comment{Lines: []string{"first", "", "third"}},
	}
	out := render(t, format.Default(), method(ast.Void, counted(body...)))
	assert.Equal(t, "for(i=0; i<10; i++) {\n"+
		"    i--;\n"+
		"    i+=5;\n"+
		"    i-=3;\n"+
		"    // first\n"+
		"    //\n"+
		"    // third\n"+
		"}", out.Text)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "int", TypeName(ast.Int))
	assert.Equal(t, "boolean[][]", TypeName("[[Z"))
	assert.Equal(t, "Map.Entry", TypeName("Ljava/util/Map$Entry;"))
	assert.Equal(t, "String[]", TypeName("[Ljava/lang/String;"))
}

func TestLocalName(t *testing.T) {
	assert.Equal(t, "count", LocalName(ast.Local{Index: 3, Name: "count"}))
	assert.Equal(t, "local3", LocalName(ast.Local{Index: 3}))
}
