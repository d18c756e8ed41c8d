// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialects(t *testing.T) {
	dialects := Dialects()
	assert.Equal(t, []string{"java", "kotlin"}, dialects.Available())

	kt, err := dialects.Get("kotlin")
	require.NoError(t, err)
	assert.Equal(t, ".kt", kt.FileExtension())
	assert.True(t, kt.Registry().Frozen())
}
