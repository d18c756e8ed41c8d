// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package format

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AllOff(t *testing.T) {
	p := Default()
	for _, f := range Flags() {
		assert.False(t, p.Enabled(f), f.String())
	}
	assert.Equal(t, Policy{}, p)
}

func TestFlags_NamesUniqueAndRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Flags() {
		name := f.String()
		require.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate flag name %s", name)
		seen[name] = true

		back, ok := FlagByName(name)
		require.True(t, ok)
		assert.Equal(t, f, back)
	}
	assert.Equal(t, "insert_space_after_opening_bracket_in_array_allocation_expression",
		SpaceAfterOpeningBracketInArrayAllocation.String())
	assert.Equal(t, "insert_space_before_opening_paren_in_for", SpaceBeforeOpeningParenInFor.String())
}

func TestPolicy_WithDoesNotMutate(t *testing.T) {
	base := New(SpaceBeforeOpeningParenInFor)
	changed := base.With(true, SpaceAfterOpeningParenInFor).With(false, SpaceBeforeOpeningParenInFor)

	assert.True(t, base.Enabled(SpaceBeforeOpeningParenInFor))
	assert.False(t, base.Enabled(SpaceAfterOpeningParenInFor))
	assert.False(t, changed.Enabled(SpaceBeforeOpeningParenInFor))
	assert.True(t, changed.Enabled(SpaceAfterOpeningParenInFor))
}

func TestPolicy_EnabledOutOfRange(t *testing.T) {
	p := New(Flags()...)
	assert.False(t, p.Enabled(Flag(-1)))
	assert.False(t, p.Enabled(numFlags))
}

func TestFromMap(t *testing.T) {
	p, err := FromMap(map[string]bool{"insert_space_before_opening_paren_in_for": true})
	require.NoError(t, err)
	assert.True(t, p.Enabled(SpaceBeforeOpeningParenInFor))
	assert.False(t, p.Enabled(SpaceAfterOpeningParenInFor))

	_, err = FromMap(map[string]bool{"insert_space_everywhere": true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFlag))
}

func TestStyle(t *testing.T) {
	p, err := Style("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	p, err = Style("conventional")
	require.NoError(t, err)
	assert.True(t, p.Enabled(SpaceBeforeBinaryOperator))

	_, err = Style("gnu")
	assert.True(t, errors.Is(err, ErrUnknownStyle))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Policy
		wantErr error
	}{
		{
			name: "empty document",
			doc:  "",
			want: Default(),
		},
		{
			name: "partial policy",
			doc:  "insert_space_before_opening_paren_in_for: true\nindent_with_tabs: false\n",
			want: New(SpaceBeforeOpeningParenInFor),
		},
		{
			name:    "unknown key",
			doc:     "insert_space_in_goto: true\n",
			wantErr: ErrInvalidPolicy,
		},
		{
			name:    "non boolean value",
			doc:     "indent_with_tabs: sometimes\n",
			wantErr: ErrInvalidPolicy,
		},
		{
			name:    "not a mapping",
			doc:     "- indent_with_tabs\n",
			wantErr: ErrInvalidPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.doc))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_AllFlagsInOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(IndentWithTabs).Encode(&buf))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(Flags()))
	assert.Equal(t, "insert_space_before_opening_paren_in_for: false", lines[0])
	assert.Equal(t, "indent_with_tabs: true", lines[len(lines)-1])
}

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	want := Conventional().With(true, SpaceAfterOpeningBracketInArrayAllocation)

	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want.Map(), got.Map())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSchema_CoversEveryFlag(t *testing.T) {
	s := Schema()
	assert.Equal(t, "object", s.Type)
	require.Len(t, s.Properties, len(Flags()))
	for _, f := range Flags() {
		prop, ok := s.Properties[f.String()]
		require.True(t, ok, f.String())
		assert.Equal(t, "boolean", prop.Type)
	}
}
