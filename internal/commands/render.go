// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parhelia512/Despector/internal/ast"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/format"
	"github.com/parhelia512/Despector/internal/loader"
	"github.com/parhelia512/Despector/internal/prompts"
	"github.com/parhelia512/Despector/internal/session"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	dialect        string
	policy         string
	style          string
	output         string
	nonInteractive bool
}

func newRenderCmd(dialects emit.Dialects) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Render AST documents as source code",
		Long: fmt.Sprintf(`Render every declaration of one or more AST documents (JSON or YAML) as
source code in the target dialect. Declarations that fail to render are
reported and skipped; the command fails if any did.

Available dialects: %s`, strings.Join(dialects.Available(), ", ")),
		Example: `  # Print to stdout using the project configuration
  despector render widget.yaml

  # Render to Kotlin files under out/
  despector render --dialect kotlin --output out units/*.json

  # Override the formatting
  despector render --style conventional widget.yaml
  despector render --policy tight.yaml widget.yaml`,
		Args:              cobra.MinimumNArgs(1),
		PersistentPreRunE: session.PreRunLoad(dialects.Available()),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, dialects, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", "", fmt.Sprintf("Target dialect (%s)", strings.Join(dialects.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.policy, "policy", "p", "", "Formatting policy file")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "Built-in formatting style (default or conventional)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (prints to stdout when empty)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Fail instead of prompting for missing values")
	cmd.MarkFlagsMutuallyExclusive("policy", "style")

	return cmd
}

func runRender(cmd *cobra.Command, dialects emit.Dialects, opts *renderOptions, files []string) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	name := opts.dialect
	if name == "" {
		name = ctx.Config.Dialect
	}
	if name == "" {
		if opts.nonInteractive {
			return errors.New("no dialect configured; pass --dialect")
		}
		if err := prompts.RunDialectForm(&name, dialects.Available()); err != nil {
			return err
		}
	}
	dialect, err := dialects.Get(name)
	if err != nil {
		return fmt.Errorf("%w. Available dialects: %s", err, strings.Join(dialects.Available(), ", "))
	}

	policy, err := renderPolicy(ctx, opts)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" && ctx.Config.Output != "" {
		output = ctx.Config.Output
		if !filepath.IsAbs(output) {
			output = filepath.Join(ctx.Dir, output)
		}
	}
	if output != "" {
		if err := os.MkdirAll(output, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	renderer := emit.NewSession(dialect.Registry(), policy)
	out := cmd.OutOrStdout()

	var failures []string
	rendered := 0
	for _, file := range files {
		unit, err := loadUnit(file)
		if err != nil {
			failures = append(failures, err.Error())
			continue
		}

		results, err := renderer.RenderUnit(cmd.Context(), unit)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		for _, res := range results {
			if res.Err != nil {
				failures = append(failures, fmt.Sprintf("%s: %v", file, res.Err))
				continue
			}
			writeDeclaration(&buf, res)
			rendered++
		}

		if output == "" {
			if _, err := out.Write(buf.Bytes()); err != nil {
				return err
			}
			continue
		}
		outFile := filepath.Join(output, unitFileName(unit, file)+dialect.FileExtension())
		if err := os.WriteFile(outFile, buf.Bytes(), 0o600); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", file, err))
			continue
		}
		fmt.Fprintf(out, "  %s\n", outFile)
	}

	if output != "" {
		prompts.PrintResult(out, []prompts.ResultField{
			{Label: "Dialect", Value: dialect.Name()},
			{Label: "Declarations", Value: strconv.Itoa(rendered)},
			{Label: "Output", Value: output},
		}, "Rendering completed")
	}

	if len(failures) > 0 {
		prompts.PrintFailures(cmd.ErrOrStderr(), failures)
		return fmt.Errorf("failed to render %d item(s)", len(failures))
	}
	return nil
}

func renderPolicy(ctx *session.Context, opts *renderOptions) (format.Policy, error) {
	switch {
	case opts.policy != "":
		return format.Load(opts.policy)
	case opts.style != "":
		return format.Style(opts.style)
	default:
		return ctx.Policy, nil
	}
}

// loadUnit loads a document given relative to the working directory or as
// an absolute path.
func loadUnit(file string) (*ast.Unit, error) {
	root, name := ".", filepath.ToSlash(filepath.Clean(file))
	if !fs.ValidPath(name) {
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, err
		}
		root, name = filepath.Dir(abs), filepath.Base(abs)
	}
	return loader.NewLoader(os.DirFS(root)).LoadFile(name)
}

// writeDeclaration writes one rendered declaration under a comment naming it.
func writeDeclaration(w io.Writer, res emit.Result) {
	decl := res.Declaration
	fmt.Fprintf(w, "// %s %s\n%s\n\n", decl.Kind, decl.MemberName(), res.Output.Text)
}

// unitFileName names the output file of a unit after its type, falling back
// to the document name.
func unitFileName(unit *ast.Unit, file string) string {
	if unit.Type != "" {
		if name := ast.ClassType(unit.Type).SimpleName(); name != "" {
			return name
		}
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
