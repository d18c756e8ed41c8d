// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles despector project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/parhelia512/Despector/internal/format"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "despector.yaml"

var (
	// ErrUnsupportedVersion indicates a config file written by a newer or older format.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrPolicyConflict indicates both a policy file and a named style are set.
	ErrPolicyConflict = errors.New("policy and style are mutually exclusive")
)

// Config represents the despector.yaml project configuration file.
type Config struct {
	Version int    `yaml:"version"`
	Dialect string `yaml:"dialect,omitempty"`
	// Policy is the path of a formatting policy file, relative to the config file.
	Policy string `yaml:"policy,omitempty"`
	// Style names a built-in policy; it is used when Policy is empty.
	Style  string `yaml:"style,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
// dialects lists the registered dialect names; an empty dialect is allowed
// and chosen at render time.
func (c *Config) Validate(dialects []string) error {
	if c.Version != CurrentConfigVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}
	if c.Dialect != "" && !slices.Contains(dialects, c.Dialect) {
		return fmt.Errorf("unknown dialect %q", c.Dialect)
	}
	if c.Policy != "" && c.Style != "" {
		return ErrPolicyConflict
	}
	if c.Style != "" {
		if _, err := format.Style(c.Style); err != nil {
			return err
		}
	}
	return nil
}
