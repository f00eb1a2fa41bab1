// SPDX-License-Identifier: MIT
// Package field_test contains test helpers shared by the field tests.

package field_test

import (
	"testing"

	"github.com/katalvlaran/terra/field"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a Field from rows or fails the test immediately.
func mustFromRows(t *testing.T, rows [][]float64) *field.Field {
	t.Helper()
	f, err := field.FromRows(rows)
	require.NoError(t, err)

	return f
}
