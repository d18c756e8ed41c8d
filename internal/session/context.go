// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parhelia512/Despector/internal/config"
	"github.com/parhelia512/Despector/internal/format"
)

var (
	// ErrNotInitialized indicates no despector.yaml was found in the directory.
	ErrNotInitialized = errors.New("not in a despector project (despector.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPolicyNotFound indicates the policy file referenced by config doesn't exist.
	ErrPolicyNotFound = errors.New("policy file not found")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the project configuration and the resolved formatting policy.
type Context struct {
	// Config is the loaded configuration. Projects without a config file get
	// an empty one at the current version.
	Config *config.Config

	// Dir is the directory relative paths in Config are resolved against.
	Dir string

	// Policy is the formatting policy named by Config.
	Policy format.Policy

	// Initialized reports whether Config was read from a file.
	Initialized bool
}

// Load loads the project context from dir and returns a new context.Context
// with the despector Context stored in it. dialects lists the registered
// dialect names used to validate the configuration.
func Load(ctx context.Context, dir string, dialects []string) (context.Context, error) {
	configPath := filepath.Join(dir, config.FileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(dialects); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	policy, err := resolvePolicy(dir, cfg)
	if err != nil {
		return nil, err
	}

	return context.WithValue(ctx, contextKey{}, &Context{
		Config:      cfg,
		Dir:         dir,
		Policy:      policy,
		Initialized: true,
	}), nil
}

// LoadOptional is Load for commands that also run outside a project: a
// missing config file yields the default configuration.
func LoadOptional(ctx context.Context, dir string, dialects []string) (context.Context, error) {
	loaded, err := Load(ctx, dir, dialects)
	if errors.Is(err, ErrNotInitialized) {
		return context.WithValue(ctx, contextKey{}, &Context{
			Config: &config.Config{Version: config.CurrentConfigVersion},
			Dir:    dir,
			Policy: format.Default(),
		}), nil
	}
	return loaded, err
}

func resolvePolicy(dir string, cfg *config.Config) (format.Policy, error) {
	if cfg.Policy == "" {
		return format.Style(cfg.Style)
	}

	policyPath := cfg.Policy
	if !filepath.IsAbs(policyPath) {
		policyPath = filepath.Join(dir, policyPath)
	}
	if _, err := os.Stat(policyPath); err != nil {
		return format.Policy{}, fmt.Errorf("%w: %s", ErrPolicyNotFound, cfg.Policy)
	}
	return format.Load(policyPath)
}

// From extracts the despector Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}
