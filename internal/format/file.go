// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package format

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFlag indicates a policy names a switch that does not exist.
	ErrUnknownFlag = errors.New("unknown formatting flag")

	// ErrUnknownStyle indicates an unknown preset name.
	ErrUnknownStyle = errors.New("unknown formatting style")

	// ErrInvalidPolicy indicates a policy file failed schema validation.
	ErrInvalidPolicy = errors.New("invalid policy file")
)

// Schema returns the JSON Schema every policy file must satisfy: an object
// whose keys are flag names and whose values are booleans.
func Schema() *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, numFlags)
	for _, f := range Flags() {
		props[f.String()] = &jsonschema.Schema{Type: "boolean"}
	}
	return &jsonschema.Schema{
		Description:          "despector formatting policy; omitted switches are off",
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

var resolvedSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return Schema().Resolve(nil)
})

// Validate checks a decoded policy document against Schema.
func Validate(doc map[string]any) error {
	rs, err := resolvedSchema()
	if err != nil {
		return fmt.Errorf("failed to resolve policy schema: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := rs.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	return nil
}

// UnmarshalYAML decodes a policy from a mapping of flag names to booleans.
func (p *Policy) UnmarshalYAML(value *yaml.Node) error {
	var doc map[string]any
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	if err := Validate(doc); err != nil {
		return err
	}

	m := make(map[string]bool, len(doc))
	for name, v := range doc {
		b, _ := v.(bool) // validated above
		m[name] = b
	}
	decoded, err := FromMap(m)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// MarshalYAML encodes every flag, in declaration order.
func (p Policy) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range Flags() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(p.Enabled(f))},
		)
	}
	return node, nil
}

// Decode reads a policy document. An empty document is the default policy.
func Decode(r io.Reader) (Policy, error) {
	var p Policy
	if err := yaml.NewDecoder(r).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, err
	}
	return p, nil
}

// Encode writes p as YAML.
func (p Policy) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}

// Load reads a policy file.
func Load(path string) (Policy, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return Policy{}, err
	}
	defer f.Close() //nolint:errcheck

	p, err := Decode(f)
	if err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Save writes p to a policy file.
func (p Policy) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	return p.Encode(f)
}
