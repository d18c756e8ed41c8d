// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package format defines the formatting policy: the fixed set of whitespace
// switches consulted by the emitters at every syntactic joint.
package format

import (
	"fmt"
	"sort"
)

// Flag names one whitespace decision site.
type Flag int

const (
	SpaceBeforeOpeningParenInFor Flag = iota
	SpaceAfterOpeningParenInFor
	SpaceBeforeOpeningParenInWhile
	SpaceAfterOpeningParenInWhile
	SpaceBeforeOpeningParenInIf
	SpaceAfterOpeningParenInIf
	SpaceAfterOpeningBracketInArrayAllocation
	SpaceBeforeClosingBracketInArrayAllocation
	SpaceBeforeOpeningBraceInArrayInitializer
	SpaceAfterOpeningBraceInArrayInitializer
	SpaceBeforeClosingBraceInArrayInitializer
	SpaceAfterOpeningBracketInArrayReference
	SpaceBeforeClosingBracketInArrayReference
	SpaceBeforeOpeningParenInMethodInvocation
	SpaceAfterOpeningParenInMethodInvocation
	SpaceBeforeClosingParenInMethodInvocation
	SpaceAfterOpeningParenInCast
	SpaceBeforeClosingParenInCast
	SpaceAfterClosingParenInCast
	SpaceBeforeAssignmentOperator
	SpaceAfterAssignmentOperator
	SpaceBeforeBinaryOperator
	SpaceAfterBinaryOperator
	IndentWithTabs

	numFlags
)

var flagNames = [numFlags]string{
	SpaceBeforeOpeningParenInFor:               "insert_space_before_opening_paren_in_for",
	SpaceAfterOpeningParenInFor:                "insert_space_after_opening_paren_in_for",
	SpaceBeforeOpeningParenInWhile:             "insert_space_before_opening_paren_in_while",
	SpaceAfterOpeningParenInWhile:              "insert_space_after_opening_paren_in_while",
	SpaceBeforeOpeningParenInIf:                "insert_space_before_opening_paren_in_if",
	SpaceAfterOpeningParenInIf:                 "insert_space_after_opening_paren_in_if",
	SpaceAfterOpeningBracketInArrayAllocation:  "insert_space_after_opening_bracket_in_array_allocation_expression",
	SpaceBeforeClosingBracketInArrayAllocation: "insert_space_before_closing_bracket_in_array_allocation_expression",
	SpaceBeforeOpeningBraceInArrayInitializer:  "insert_space_before_opening_brace_in_array_initializer",
	SpaceAfterOpeningBraceInArrayInitializer:   "insert_space_after_opening_brace_in_array_initializer",
	SpaceBeforeClosingBraceInArrayInitializer:  "insert_space_before_closing_brace_in_array_initializer",
	SpaceAfterOpeningBracketInArrayReference:   "insert_space_after_opening_bracket_in_array_reference",
	SpaceBeforeClosingBracketInArrayReference:  "insert_space_before_closing_bracket_in_array_reference",
	SpaceBeforeOpeningParenInMethodInvocation:  "insert_space_before_opening_paren_in_method_invocation",
	SpaceAfterOpeningParenInMethodInvocation:   "insert_space_after_opening_paren_in_method_invocation",
	SpaceBeforeClosingParenInMethodInvocation:  "insert_space_before_closing_paren_in_method_invocation",
	SpaceAfterOpeningParenInCast:               "insert_space_after_opening_paren_in_cast",
	SpaceBeforeClosingParenInCast:              "insert_space_before_closing_paren_in_cast",
	SpaceAfterClosingParenInCast:               "insert_space_after_closing_paren_in_cast",
	SpaceBeforeAssignmentOperator:              "insert_space_before_assignment_operator",
	SpaceAfterAssignmentOperator:               "insert_space_after_assignment_operator",
	SpaceBeforeBinaryOperator:                  "insert_space_before_binary_operator",
	SpaceAfterBinaryOperator:                   "insert_space_after_binary_operator",
	IndentWithTabs:                             "indent_with_tabs",
}

// String returns the flag's policy file key.
func (f Flag) String() string {
	if f < 0 || f >= numFlags {
		return fmt.Sprintf("Flag(%d)", int(f))
	}
	return flagNames[f]
}

// Flags returns every flag in declaration order.
func Flags() []Flag {
	flags := make([]Flag, numFlags)
	for i := range flags {
		flags[i] = Flag(i)
	}
	return flags
}

// FlagByName looks up a flag by its policy file key.
func FlagByName(name string) (Flag, bool) {
	for f, n := range flagNames {
		if n == name {
			return Flag(f), true
		}
	}
	return 0, false
}

// Policy is an immutable set of switches. The zero value is the default
// policy: every switch off, so no optional whitespace is inserted.
type Policy struct {
	flags [numFlags]bool
}

// Default returns the policy with every switch off.
func Default() Policy {
	return Policy{}
}

// Conventional returns a policy with keyword and operator spacing enabled, the
// layout most Java code is written in.
func Conventional() Policy {
	return New(
		SpaceBeforeOpeningParenInFor,
		SpaceBeforeOpeningParenInWhile,
		SpaceBeforeOpeningParenInIf,
		SpaceBeforeAssignmentOperator,
		SpaceAfterAssignmentOperator,
		SpaceBeforeBinaryOperator,
		SpaceAfterBinaryOperator,
		SpaceAfterClosingParenInCast,
		SpaceBeforeOpeningBraceInArrayInitializer,
	)
}

// New returns a policy with exactly the given switches on.
func New(enabled ...Flag) Policy {
	var p Policy
	for _, f := range enabled {
		if f >= 0 && f < numFlags {
			p.flags[f] = true
		}
	}
	return p
}

// With returns a copy of p with the given switches set to value.
func (p Policy) With(value bool, flags ...Flag) Policy {
	for _, f := range flags {
		if f >= 0 && f < numFlags {
			p.flags[f] = value
		}
	}
	return p
}

// Enabled reports whether f is on.
func (p Policy) Enabled(f Flag) bool {
	if f < 0 || f >= numFlags {
		return false
	}
	return p.flags[f]
}

// Map returns the policy as flag name to value, covering every flag.
func (p Policy) Map() map[string]bool {
	m := make(map[string]bool, numFlags)
	for f, on := range p.flags {
		m[flagNames[f]] = on
	}
	return m
}

// FromMap builds a policy from flag names. Flags missing from m default to
// off; unknown names are an error.
func FromMap(m map[string]bool) (Policy, error) {
	var p Policy
	var unknown []string
	for name, on := range m {
		f, ok := FlagByName(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		p.flags[f] = on
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Policy{}, fmt.Errorf("%w: %v", ErrUnknownFlag, unknown)
	}
	return p, nil
}

// Styles lists the named presets accepted by Style.
func Styles() []string {
	return []string{"default", "conventional"}
}

// Style returns a named preset.
func Style(name string) (Policy, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "conventional":
		return Conventional(), nil
	}
	return Policy{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}
