// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package emit is the emission engine: it walks a decompiled tree and renders
// it as source text through a per-dialect registry of renderers.
package emit

import (
	"fmt"
	"sort"
)

// Dialect is a target surface language.
type Dialect interface {
	// Name returns the dialect's identifier (e.g., "java", "kotlin")
	Name() string

	// FileExtension returns the extension of rendered files (e.g., ".java")
	FileExtension() string

	// Registry returns the frozen renderer registry of the dialect
	Registry() *Registry
}

// Dialects maps dialect names to dialects.
type Dialects map[string]Dialect

// Add registers d under its name.
func (d Dialects) Add(dialect Dialect) {
	d[dialect.Name()] = dialect
}

// Get retrieves a dialect by name.
func (d Dialects) Get(name string) (Dialect, error) {
	dialect, ok := d[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, name)
	}
	return dialect, nil
}

// Available returns all registered dialect names, sorted.
func (d Dialects) Available() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
