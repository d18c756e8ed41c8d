// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package kotlin derives the Kotlin dialect from the Java renderers. It
// replaces the constructs whose Kotlin syntax differs: local declarations,
// casts, bitwise operators, array and object allocation, counted loops,
// string literals and instance calls, the latter consulting a catalog of
// idioms for common library calls.
package kotlin

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/emit/java"
)

// Dialect renders Kotlin source.
type Dialect struct{}

// Name returns the dialect identifier.
func (Dialect) Name() string { return "kotlin" }

// FileExtension returns the extension of Kotlin files.
func (Dialect) FileExtension() string { return ".kt" }

// Registry returns the Kotlin renderer registry.
func (Dialect) Registry() *emit.Registry { return registry }

// Idioms returns the idiom catalog used for instance calls.
func Idioms() *emit.IdiomTable { return idioms }

var (
	idioms   = catalog()
	registry = newRegistry()
)

func newRegistry() *emit.Registry {
	r := java.Dialect{}.Registry().Clone()
	r.SetInstruction(ast.KindInstanceMethodInvoke, java.InstanceInvoke(idioms))
	r.SetInstruction(ast.KindNew, java.NewInstance(""))
	r.SetInstruction(ast.KindStringConstant, emit.InstructionFunc[*ast.StringConstant](renderString))
	r.SetInstruction(ast.KindCast, emit.InstructionFunc[*ast.Cast](renderCast))
	r.SetInstruction(ast.KindOperator, emit.InstructionFunc[*ast.Operator](renderOperator))
	r.SetInstruction(ast.KindNewArray, emit.InstructionFunc[*ast.NewArray](renderNewArray))
	r.SetInstruction(ast.KindMultiNewArray, emit.InstructionFunc[*ast.MultiNewArray](renderMultiNewArray))
	r.SetStatement(ast.KindLocalAssignment, emit.StatementFunc[*ast.LocalAssignment](renderLocalAssignment))
	r.SetStatement(ast.KindFor, emit.StatementFunc[*ast.For](renderFor))
	return r.MustFreeze()
}

func renderString(ctx *emit.Context, c *ast.StringConstant, _ ast.Type) {
	ctx.Print(Quote(c.Value))
}

// Quote returns s as a Kotlin string literal.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	writeTemplateText(&b, s)
	b.WriteByte('"')
	return b.String()
}

// writeTemplateText writes s escaped for use inside a string literal.
func writeTemplateText(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		default:
			if unicode.IsPrint(r) {
				b.WriteRune(r)
				continue
			}
			// Kotlin has no \f or \x escapes.
			for _, unit := range utf16.Encode([]rune{r}) {
				b.WriteString(`\u`)
				b.WriteString(hex4(rune(unit)))
			}
		}
	}
}

func hex4(r rune) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[r>>12&0xF], digits[r>>8&0xF], digits[r>>4&0xF], digits[r&0xF]})
}
