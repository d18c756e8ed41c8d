// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// DialectSelect returns a select field for choosing the target dialect.
func DialectSelect(value *string, dialects []string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Target dialect").
		Options(stringOptions(dialects)...).
		Value(value)
}

// RunDialectForm prompts for the target dialect.
func RunDialectForm(value *string, dialects []string) error {
	return huh.NewForm(huh.NewGroup(DialectSelect(value, dialects))).WithTheme(Theme()).Run()
}
