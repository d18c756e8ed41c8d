// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package ast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDescriptor is returned when a type or method descriptor cannot be parsed.
var ErrMalformedDescriptor = errors.New("malformed descriptor")

// ArrayMarker is the descriptor prefix for one array dimension.
const ArrayMarker = '['

// Type is a type in descriptor form: a primitive token ("I"), a class
// ("Ljava/util/Map;"), or an array ("[[I") made of one ArrayMarker per dimension
// followed by the element token.
type Type string

// Well-known types.
const (
	Void    Type = "V"
	Boolean Type = "Z"
	Byte    Type = "B"
	Char    Type = "C"
	Short   Type = "S"
	Int     Type = "I"
	Long    Type = "J"
	Float   Type = "F"
	Double  Type = "D"
	Object  Type = "Ljava/lang/Object;"
	String  Type = "Ljava/lang/String;"
)

// ClassType returns the descriptor of a class given its internal name
// (e.g. "java/util/Map").
func ClassType(internalName string) Type {
	return Type("L" + internalName + ";")
}

// ArrayOf returns the descriptor of a dims-dimensional array of elem.
func ArrayOf(elem Type, dims int) Type {
	return Type(strings.Repeat(string(ArrayMarker), dims)) + elem
}

// IsArray reports whether t is an array type.
func (t Type) IsArray() bool {
	return len(t) > 0 && t[0] == ArrayMarker
}

// Dimensions returns the number of leading array markers.
func (t Type) Dimensions() int {
	n := 0
	for n < len(t) && t[n] == ArrayMarker {
		n++
	}
	return n
}

// Elem returns the component type of an array, or "" if t is not an array.
func (t Type) Elem() Type {
	if !t.IsArray() {
		return ""
	}
	return t[1:]
}

// StripDimensions removes exactly k array markers. It reports false, and
// returns t unchanged, when fewer than k markers are present.
func (t Type) StripDimensions(k int) (Type, bool) {
	if k < 0 || t.Dimensions() < k {
		return t, false
	}
	return t[k:], true
}

// IsPrimitive reports whether t is a primitive type (void included).
func (t Type) IsPrimitive() bool {
	if len(t) != 1 {
		return false
	}
	switch t {
	case Void, Boolean, Byte, Char, Short, Int, Long, Float, Double:
		return true
	}
	return false
}

// IsClass reports whether t is a class type.
func (t Type) IsClass() bool {
	return len(t) > 2 && t[0] == 'L' && t[len(t)-1] == ';'
}

// InternalName returns the slash-separated class name of a class type
// ("java/util/Map"), or "" for any other type.
func (t Type) InternalName() string {
	if !t.IsClass() {
		return ""
	}
	return string(t[1 : len(t)-1])
}

// SimpleName returns the unqualified class name, with nested class separators
// rendered as dots ("Map", "Map.Entry"). It returns "" for non-class types.
func (t Type) SimpleName() string {
	name := t.InternalName()
	if name == "" {
		return ""
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, "$", ".")
}

// Valid reports whether t is exactly one well-formed type descriptor.
func (t Type) Valid() bool {
	_, n, err := parseType(string(t), 0)
	return err == nil && n == len(t)
}

// SplitSignature splits a method descriptor such as "(I[Ljava/lang/Object;)V"
// into its parameter types and return type.
func SplitSignature(desc string) ([]Type, Type, error) {
	if len(desc) == 0 || desc[0] != '(' {
		return nil, "", fmt.Errorf("%w: %q: missing parameter list", ErrMalformedDescriptor, desc)
	}
	var params []Type
	i := 1
	for {
		if i >= len(desc) {
			return nil, "", fmt.Errorf("%w: %q: unterminated parameter list", ErrMalformedDescriptor, desc)
		}
		if desc[i] == ')' {
			i++
			break
		}
		t, next, err := parseType(desc, i)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %q: %v", ErrMalformedDescriptor, desc, err)
		}
		if t == Void {
			return nil, "", fmt.Errorf("%w: %q: void parameter", ErrMalformedDescriptor, desc)
		}
		params = append(params, t)
		i = next
	}
	ret, next, err := parseType(desc, i)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q: %v", ErrMalformedDescriptor, desc, err)
	}
	if next != len(desc) {
		return nil, "", fmt.Errorf("%w: %q: trailing characters", ErrMalformedDescriptor, desc)
	}
	return params, ret, nil
}

func parseType(s string, i int) (Type, int, error) {
	start := i
	for i < len(s) && s[i] == ArrayMarker {
		i++
	}
	if i >= len(s) {
		return "", 0, errors.New("missing element type")
	}
	switch s[i] {
	case 'V':
		if i != start {
			return "", 0, errors.New("array of void")
		}
		return Void, i + 1, nil
	case 'Z', 'B', 'C', 'S', 'I', 'J', 'F', 'D':
		return Type(s[start : i+1]), i + 1, nil
	case 'L':
		end := strings.IndexByte(s[i:], ';')
		if end <= 1 {
			return "", 0, errors.New("unterminated class name")
		}
		return Type(s[start : i+end+1]), i + end + 1, nil
	}
	return "", 0, fmt.Errorf("unexpected %q at offset %d", s[i], i)
}
