// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package loader decodes decompiled units from JSON or YAML AST documents.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"
	"github.com/parhelia512/Despector/internal/ast"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDocument indicates a document that does not describe a unit.
	ErrInvalidDocument = errors.New("invalid AST document")

	// ErrUnsupportedFormat indicates a file extension with no parser.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Parser decodes a unit from an io.Reader.
type Parser struct {
	decode func(io.Reader) (any, error)
}

var (
	// JSON parses AST documents from JSON.
	JSON = Parser{decodeJSON}
	// YAML parses AST documents from YAML.
	YAML = Parser{decodeYAML}
)

// Parse decodes a unit from r.
func (p Parser) Parse(r io.Reader) (*ast.Unit, error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}
	doc, err := p.decode(r)
	if err != nil {
		return nil, err
	}
	return build(doc)
}

// ParserFor returns the parser for a file, chosen by extension.
func ParserFor(filePath string) (Parser, error) {
	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		return YAML, nil
	case strings.HasSuffix(filePath, ".json"):
		return JSON, nil
	default:
		return Parser{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}
}

// Loader loads AST documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and decodes one document.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*ast.Unit, error) {
	parser, err := ParserFor(filePath)
	if err != nil {
		return nil, err
	}

	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	unit, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return unit, nil
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeYAML(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
