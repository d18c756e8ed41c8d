// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/parhelia512/Despector/internal/config"
	"github.com/parhelia512/Despector/internal/emit"
	"github.com/parhelia512/Despector/internal/emit/java"
	"github.com/parhelia512/Despector/internal/emit/kotlin"
	"github.com/parhelia512/Despector/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widget = `type: com/example/Widget
declarations:
  - kind: method
    name: count
    body:
      - kind: for
        init:
          kind: assign_local
          local: {index: 1, name: i, type: I}
          value: {kind: int, value: 0}
        cond:
          kind: operator
          op: "<"
          left: {kind: local, local: {index: 1, name: i, type: I}}
          right: {kind: int, value: 10}
        incr:
          kind: increment
          local: {index: 1, name: i, type: I}
          delta: 1
        body:
          - kind: call
            call:
              kind: invoke
              owner: Ljava/io/PrintStream;
              name: println
              desc: (I)V
              callee:
                kind: static_field
                owner: Ljava/lang/System;
                name: out
                type: Ljava/io/PrintStream;
              args:
                - {kind: local, local: {index: 1, name: i, type: I}}
  - kind: field
    name: grid
    static: true
    returns: "[[I"
    init:
      kind: multi_new_array
      type: "[[I"
      sizes:
        - {kind: int, value: 3}
        - {kind: int, value: 4}
`

const broken = `type: com/example/Broken
declarations:
  - kind: method
    name: compare
    returns: Z
    body:
      - kind: return
        value:
          kind: operator
          op: "<=>"
          left: {kind: int, value: 1}
          right: {kind: int, value: 2}
  - kind: field
    name: size
    returns: I
    init: {kind: int, value: 8}
`

func testDialects() emit.Dialects {
	dialects := make(emit.Dialects)
	dialects.Add(java.Dialect{})
	dialects.Add(kotlin.Dialect{})
	return dialects
}

// inProject creates a temporary directory holding files and makes it the
// working directory for the rest of the test.
func inProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(testDialects())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestDialectsCmd(t *testing.T) {
	stdout, _, err := execute(t, "dialects")
	require.NoError(t, err)
	assert.Equal(t, "NAME    EXTENSION\njava    .java\nkotlin  .kt\n", stdout)
}

func TestRenderCmd_Stdout(t *testing.T) {
	inProject(t, map[string]string{"widget.yaml": widget})

	stdout, _, err := execute(t, "render", "--dialect", "java", "widget.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "// method count\nfor(i=0; i<10; i++) {\n")
	assert.Contains(t, stdout, "System.out.println(i);")
	assert.Contains(t, stdout, "// field grid\nnew int[3][4]\n")
}

func TestRenderCmd_KotlinIdioms(t *testing.T) {
	inProject(t, map[string]string{"widget.yaml": widget})

	stdout, _, err := execute(t, "render", "-d", "kotlin", "widget.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "println(i);")
	assert.NotContains(t, stdout, "System.out")
}

func TestRenderCmd_Style(t *testing.T) {
	inProject(t, map[string]string{"widget.yaml": widget})

	stdout, _, err := execute(t, "render", "--dialect", "java", "--style", "conventional", "widget.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "for (i = 0; i < 10; i++) {")
}

func TestRenderCmd_ConfigDefaults(t *testing.T) {
	dir := inProject(t, map[string]string{
		"widget.yaml":   widget,
		config.FileName: "version: 1\ndialect: kotlin\nstyle: conventional\noutput: out\n",
	})

	stdout, _, err := execute(t, "render", "widget.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Rendering completed")

	data, err := os.ReadFile(filepath.Join(dir, "out", "Widget.kt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "i = 0;\nwhile (i < 10) {\n    println(i);\n    i++;\n}")
	assert.Contains(t, string(data), "Array(3) { IntArray(4) }")
}

func TestRenderCmd_PolicyFile(t *testing.T) {
	inProject(t, map[string]string{
		"widget.yaml": widget,
		"tight.yaml":  "insert_space_before_opening_paren_in_for: true\n",
	})

	stdout, _, err := execute(t, "render", "-d", "java", "-p", "tight.yaml", "widget.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "for (i=0; i<10; i++) {")
}

func TestRenderCmd_Failures(t *testing.T) {
	inProject(t, map[string]string{"broken.yaml": broken})

	stdout, stderr, err := execute(t, "render", "-d", "java", "broken.yaml", "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render 2 item(s)")

	// the healthy declaration of a unit is still rendered
	assert.Contains(t, stdout, "// field size\n8\n")
	assert.NotContains(t, stdout, "compare")
	assert.Contains(t, stderr, `broken.yaml: method compare: internal consistency failure: unknown operator "<=>"`)
	assert.Contains(t, stderr, "missing.yaml")
}

func TestRenderCmd_DialectErrors(t *testing.T) {
	inProject(t, map[string]string{"widget.yaml": widget})

	_, _, err := execute(t, "render", "--non-interactive", "widget.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dialect configured")

	_, _, err = execute(t, "render", "-d", "cobol", "widget.yaml")
	require.ErrorIs(t, err, emit.ErrUnknownDialect)
	assert.Contains(t, err.Error(), "Available dialects: java, kotlin")
}

func TestRenderCmd_ExclusiveFlags(t *testing.T) {
	inProject(t, map[string]string{"widget.yaml": widget})

	_, _, err := execute(t, "render", "-d", "java", "--style", "conventional", "--policy", "p.yaml", "widget.yaml")
	assert.Error(t, err)
}

func TestInitCmd(t *testing.T) {
	dir := inProject(t, nil)

	stdout, _, err := execute(t, "init", "--dialect", "kotlin", "--style", "conventional", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Initialization completed")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "kotlin", cfg.Dialect)
	assert.Equal(t, "conventional", cfg.Style)
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)

	_, _, err = execute(t, "init", "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestInitCmd_WritesPolicy(t *testing.T) {
	dir := inProject(t, nil)

	_, _, err := execute(t, "init", "--policy", "policy.yaml", "--output", "src", "--non-interactive")
	require.NoError(t, err)

	policy, err := format.Load(filepath.Join(dir, "policy.yaml"))
	require.NoError(t, err)
	assert.Equal(t, format.Default(), policy)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "java", cfg.Dialect)
	assert.Equal(t, "policy.yaml", cfg.Policy)
	assert.Equal(t, "src", cfg.Output)
}

func TestInitCmd_InvalidDialect(t *testing.T) {
	dir := inProject(t, nil)

	_, _, err := execute(t, "init", "--dialect", "cobol", "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	_, statErr := os.Stat(filepath.Join(dir, config.FileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPolicyShowCmd(t *testing.T) {
	inProject(t, map[string]string{
		config.FileName: "version: 1\npolicy: policy.yaml\n",
		"policy.yaml":    "insert_space_before_opening_paren_in_while: true\n",
	})

	stdout, _, err := execute(t, "policy", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "insert_space_before_opening_paren_in_while: true\n")
	assert.Contains(t, stdout, "insert_space_before_opening_paren_in_for: false\n")

	stdout, _, err = execute(t, "policy", "show", "--style", "conventional")
	require.NoError(t, err)
	assert.Contains(t, stdout, "insert_space_before_opening_paren_in_for: true\n")

	_, _, err = execute(t, "policy", "show", "--style", "loose")
	assert.ErrorIs(t, err, format.ErrUnknownStyle)
}

func TestPolicySchemaCmd(t *testing.T) {
	inProject(t, nil)

	stdout, _, err := execute(t, "policy", "schema")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"object"`)
	assert.Contains(t, stdout, `"insert_space_before_opening_paren_in_for"`)
}

func TestPolicyInitCmd(t *testing.T) {
	dir := inProject(t, nil)

	_, _, err := execute(t, "policy", "init", "--style", "conventional", "mine.yaml")
	require.NoError(t, err)

	policy, err := format.Load(filepath.Join(dir, "mine.yaml"))
	require.NoError(t, err)
	assert.Equal(t, format.Conventional(), policy)

	_, _, err = execute(t, "policy", "init", "mine.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "despector version ")

	stdout, _, err = execute(t, "version", "--short")
	require.NoError(t, err)
	assert.NotEmpty(t, stdout)
	assert.NotContains(t, stdout, "despector")
}
