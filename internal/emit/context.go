// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package emit

import (
	"strings"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/format"
)

const indentUnit = "    "

// Output is the rendered text of one declaration together with the byte
// offsets a line-wrapping pass may break at.
type Output struct {
	Text       string
	WrapPoints []int
}

// Context is the state of one rendering pass. It is created per declaration,
// owned by a single goroutine and discarded afterwards.
type Context struct {
	registry *Registry
	policy   format.Policy
	scope    Scope
	returns  ast.Type

	buf    strings.Builder
	indent int
	column int
	wraps  []int
}

// NewContext returns a context rendering with registry and policy inside scope.
// returns is the declared type of the member (return type or field type).
func NewContext(registry *Registry, policy format.Policy, scope Scope, returns ast.Type) *Context {
	if scope == nil {
		scope = NoEnclosingScope{}
	}
	return &Context{
		registry: registry,
		policy:   policy,
		scope:    scope,
		returns:  returns,
	}
}

// Policy returns the formatting policy.
func (c *Context) Policy() format.Policy { return c.policy }

// Scope returns the resolution scope.
func (c *Context) Scope() Scope { return c.scope }

// ReturnType returns the declared type of the member being rendered.
func (c *Context) ReturnType() ast.Type { return c.returns }

// EnclosingType returns the internal name of the enclosing type, if any.
func (c *Context) EnclosingType() (string, bool) {
	s, ok := c.scope.(InstanceScope)
	if !ok || s.Type == "" {
		return "", false
	}
	return s.Type, true
}

// InInstanceMember reports whether rendering happens inside a non-static
// member, where local slot 0 is the receiver.
func (c *Context) InInstanceMember() bool {
	s, ok := c.scope.(InstanceScope)
	return ok && !s.Static
}

// IsReceiver reports whether insn reads the receiver of the current member.
func (c *Context) IsReceiver(insn ast.Instruction) bool {
	local, ok := insn.(*ast.LocalAccess)
	return ok && local.Local.Index == 0 && c.InInstanceMember()
}

// Print appends literal text.
func (c *Context) Print(s string) {
	c.buf.WriteString(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		c.column = len(s) - i - 1
	} else {
		c.column += len(s)
	}
}

// PrintIf appends s only when flag is enabled. It is used at whitespace sites.
func (c *Context) PrintIf(s string, flag format.Flag) {
	if c.policy.Enabled(flag) {
		c.Print(s)
	}
}

// NewLine terminates the current line.
func (c *Context) NewLine() {
	c.buf.WriteByte('\n')
	c.column = 0
}

// Indent raises the indentation level.
func (c *Context) Indent() {
	c.indent++
}

// Dedent lowers the indentation level.
func (c *Context) Dedent() {
	if c.indent == 0 {
		Failf("dedent below zero")
	}
	c.indent--
}

// IndentLevel returns the current indentation level.
func (c *Context) IndentLevel() int { return c.indent }

// PrintIndentation writes the indentation of the current level.
func (c *Context) PrintIndentation() {
	unit := indentUnit
	if c.policy.Enabled(format.IndentWithTabs) {
		unit = "\t"
	}
	for i := 0; i < c.indent; i++ {
		c.Print(unit)
	}
}

// MarkWrapPoint records the current position as a candidate line break.
func (c *Context) MarkWrapPoint() {
	c.wraps = append(c.wraps, c.buf.Len())
}

// Column returns the byte column on the current line.
func (c *Context) Column() int { return c.column }

// Len returns the number of bytes written so far.
func (c *Context) Len() int { return c.buf.Len() }

// String returns the text written so far.
func (c *Context) String() string { return c.buf.String() }

// Output returns the rendered text and wrap points.
func (c *Context) Output() Output {
	wraps := make([]int, len(c.wraps))
	copy(wraps, c.wraps)
	return Output{Text: c.buf.String(), WrapPoints: wraps}
}

// Emit renders insn, telling its renderer the type the surrounding code expects.
// expected may be "" when nothing is known.
func (c *Context) Emit(insn ast.Instruction, expected ast.Type) {
	if insn == nil {
		Failf("missing instruction (expected %q)", expected)
	}
	c.registry.instruction(insn.Kind()).RenderInstruction(c, insn, expected)
}

// EmitStatement renders stmt. terminate controls the trailing semicolon of
// simple statements; loop headers render their parts without it.
func (c *Context) EmitStatement(stmt ast.Statement, terminate bool) {
	if stmt == nil {
		Failf("missing statement")
	}
	c.registry.statement(stmt.Kind()).RenderStatement(c, stmt, terminate)
}

// EmitBody renders stmts one per line at the current indentation. No newline
// follows the last statement.
func (c *Context) EmitBody(stmts []ast.Statement) {
	for i, stmt := range stmts {
		if i > 0 {
			c.NewLine()
		}
		c.PrintIndentation()
		c.EmitStatement(stmt, true)
	}
}

// Stage returns an empty context sharing c's configuration, scope and
// indentation. Text written to it reaches c only through Commit.
func (c *Context) Stage() *Context {
	return &Context{
		registry: c.registry,
		policy:   c.policy,
		scope:    c.scope,
		returns:  c.returns,
		indent:   c.indent,
		column:   c.column,
	}
}

// Commit appends the text and wrap points of a staged context.
func (c *Context) Commit(stage *Context) {
	base := c.buf.Len()
	for _, w := range stage.wraps {
		c.wraps = append(c.wraps, base+w)
	}
	c.buf.WriteString(stage.buf.String())
	c.column = stage.column
}
