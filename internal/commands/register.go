// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/session"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(dialects emit.Dialects) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "despector",
		Short: "Render decompiled syntax trees as Java or Kotlin source",
		Long: `despector renders decompiled syntax trees as source code. Each declaration
is rendered through the renderer registry of a target dialect, under a
formatting policy that controls optional whitespace.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCmd(dialects))
	rootCmd.AddCommand(newRenderCmd(dialects))
	rootCmd.AddCommand(newDialectsCmd(dialects))
	rootCmd.AddCommand(newVersionCmd())
	registerPolicyCmd(rootCmd, dialects)

	return rootCmd
}

func registerPolicyCmd(parent *cobra.Command, dialects emit.Dialects) {
	cmd := &cobra.Command{
		Use:               "policy",
		Short:             "Inspect and create formatting policies",
		PersistentPreRunE: session.PreRunLoad(dialects.Available()),
	}

	cmd.AddCommand(newPolicyShowCmd())
	cmd.AddCommand(newPolicySchemaCmd())
	cmd.AddCommand(newPolicyInitCmd())

	parent.AddCommand(cmd)
}
