// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/parhelia512/Despector/internal/emit"
	"github.com/spf13/cobra"
)

func newDialectsCmd(dialects emit.Dialects) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List the available target dialects",
		Example: `  # List dialects
  despector dialects`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDialects(cmd, dialects)
		},
	}
	return cmd
}

func runDialects(cmd *cobra.Command, dialects emit.Dialects) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEXTENSION")
	for _, name := range dialects.Available() {
		d := dialects[name]
		_, _ = fmt.Fprintf(w, "%s\t%s\n", d.Name(), d.FileExtension())
	}
	return w.Flush()
}
