// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/parhelia512/Despector/internal/commands"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/emit/java"
	"github.com/parhelia512/Despector/internal/emit/kotlin"
)

// Dialects returns every dialect the CLI can render.
func Dialects() emit.Dialects {
	dialects := make(emit.Dialects)
	dialects.Add(java.Dialect{})
	dialects.Add(kotlin.Dialect{})
	return dialects
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
// DESPECTOR_DIALECT, when set, is the default of the render --dialect flag.
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(Dialects())
	if dialect := getenv("DESPECTOR_DIALECT"); dialect != "" {
		if render, _, err := rootCmd.Find([]string{"render"}); err == nil {
			if f := render.Flags().Lookup("dialect"); f != nil {
				f.DefValue = dialect
				_ = f.Value.Set(dialect)
			}
		}
	}
	return rootCmd.ExecuteContext(ctx)
}
