// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parhelia512/Despector/internal/config"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/format"
	"github.com/parhelia512/Despector/internal/prompts"
	"github.com/spf13/cobra"
)

type initOptions struct {
	dialect        string
	style          string
	policy         string
	output         string
	nonInteractive bool
}

func newInitCmd(dialects emit.Dialects) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new despector project",
		Long: `Initialize a new despector project with a despector.yaml configuration file.
When a policy file is named and does not exist yet, it is created with every
formatting switch written out.`,
		Example: `  # Interactive mode
  despector init

  # Non-interactive
  despector init --dialect kotlin --style conventional --non-interactive
  despector init --dialect java --policy policy.yaml --output src --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, dialects, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", "java", "Target dialect")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "Built-in formatting style (default or conventional)")
	cmd.Flags().StringVarP(&opts.policy, "policy", "p", "", "Path to a formatting policy file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory for rendered files")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")
	cmd.MarkFlagsMutuallyExclusive("style", "policy")

	return cmd
}

func runInit(cmd *cobra.Command, dialects emit.Dialects, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("despector.yaml already exists; project already initialized")
	}

	answers := prompts.InitAnswers{
		Dialect: opts.dialect,
		Style:   opts.style,
		Policy:  opts.policy,
		Output:  opts.output,
	}
	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&answers, dialects.Available(), format.Styles()); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Dialect: answers.Dialect,
		Style:   answers.Style,
		Policy:  answers.Policy,
		Output:  answers.Output,
	}
	if cfg.Policy != "" {
		cfg.Style = ""
	}
	if err := cfg.Validate(dialects.Available()); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fields := []prompts.ResultField{{Label: "Dialect", Value: cfg.Dialect}}
	if cfg.Policy != "" {
		policyPath := cfg.Policy
		if !filepath.IsAbs(policyPath) {
			policyPath = filepath.Join(cwd, policyPath)
		}
		if _, err := os.Stat(policyPath); os.IsNotExist(err) {
			if err := format.Default().Save(policyPath); err != nil {
				return fmt.Errorf("failed to write policy file: %w", err)
			}
		}
		fields = append(fields, prompts.ResultField{Label: "Policy", Value: cfg.Policy})
	} else if cfg.Style != "" {
		fields = append(fields, prompts.ResultField{Label: "Style", Value: cfg.Style})
	}
	if cfg.Output != "" {
		fields = append(fields, prompts.ResultField{Label: "Output", Value: cfg.Output})
	}

	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}
	prompts.PrintResult(cmd.OutOrStdout(), fields, "Initialization completed")

	return nil
}
