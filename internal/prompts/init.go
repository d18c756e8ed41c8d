// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// InitAnswers holds the values collected by the init form.
type InitAnswers struct {
	Dialect string
	Style   string
	Policy  string
	Output  string
}

// RunInitForm runs the interactive form for the init command.
// It fills answers with user input; existing values are used as defaults.
func RunInitForm(answers *InitAnswers, dialects, styles []string) error {
	usePolicyFile := answers.Policy != ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Target dialect").
				Options(stringOptions(dialects)...).
				Value(&answers.Dialect),
		),
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Formatting").
				Options(
					huh.NewOption("Built-in style", false),
					huh.NewOption("Policy file", true),
				).
				Value(&usePolicyFile),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Style").
				Options(stringOptions(styles)...).
				Value(&answers.Style),
		).WithHideFunc(func() bool { return usePolicyFile }),
		huh.NewGroup(
			huh.NewInput().
				Title("Policy file").
				Placeholder("despector-policy.yaml").
				Validate(requiredValidator("policy file")).
				Value(&answers.Policy),
		).WithHideFunc(func() bool { return !usePolicyFile }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder("leave empty to print to stdout").
				Value(&answers.Output),
		),
	).WithTheme(Theme()).Run()
}
