// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/parhelia512/Despector/internal/format"
	"github.com/parhelia512/Despector/internal/prompts"
	"github.com/parhelia512/Despector/internal/session"
	"github.com/spf13/cobra"
)

func newPolicyShowCmd() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective formatting policy",
		Long: `Print the formatting policy used by render, as YAML. Without --style this is
the policy resolved from despector.yaml, or the default policy when the
directory has no configuration.`,
		Example: `  # Show the project policy
  despector policy show

  # Show a built-in style
  despector policy show --style conventional`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			policy := ctx.Policy
			if style != "" {
				if policy, err = format.Style(style); err != nil {
					return err
				}
			}
			return policy.Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", "Built-in formatting style (default or conventional)")
	return cmd
}

func newPolicySchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of policy files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(format.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	return cmd
}

func newPolicyInitCmd() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write a policy file with every switch spelled out",
		Example: `  # Start from the default policy
  despector policy init policy.yaml

  # Start from the conventional style
  despector policy init --style conventional policy.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				return errors.New(path + " already exists")
			}
			policy := format.Default()
			if style != "" {
				var err error
				if policy, err = format.Style(style); err != nil {
					return err
				}
			}
			if err := policy.Save(path); err != nil {
				return err
			}
			prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
				{Label: "Policy", Value: path},
			}, "Policy file created")
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", "Built-in formatting style to start from")
	return cmd
}
