package operator_test

import (
	"testing"

	"github.com/katalvlaran/vibron/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSubspace_Valid covers every canonical label and its round-trip
// through String.
func TestParseSubspace_Valid(t *testing.T) {
	for _, label := range []string{"g", "e", "f", "ge", "gf", "ef", "gef"} {
		ss, err := operator.ParseSubspace(label)
		require.NoError(t, err, "label %q must parse", label)
		assert.Equal(t, label, ss.String(), "String must round-trip %q", label)
	}
}

// TestParseSubspace_Invalid verifies that empty, unknown, duplicated and
// out-of-order labels all return ErrBadSubspace.
func TestParseSubspace_Invalid(t *testing.T) {
	for _, label := range []string{"", "x", "eg", "fe", "gg", "gfe", "gex"} {
		_, err := operator.ParseSubspace(label)
		assert.ErrorIs(t, err, operator.ErrBadSubspace, "label %q must be rejected", label)
	}
}

// TestSubspace_Has exercises the bitmask membership helper.
func TestSubspace_Has(t *testing.T) {
	ss, err := operator.ParseSubspace("ge")
	require.NoError(t, err)

	assert.True(t, ss.Has(operator.Ground))
	assert.True(t, ss.Has(operator.Single))
	assert.False(t, ss.Has(operator.Double))
	assert.True(t, ss.Has(operator.Ground|operator.Single))
	assert.False(t, ss.Has(operator.Ground|operator.Double))
}

// TestSubspace_NStates pins the manifold dimensions: 1 ground state,
// n singly-excited states and n(n-1)/2 doubly-excited pair states.
func TestSubspace_NStates(t *testing.T) {
	cases := []struct {
		label  string
		nSites int
		want   int
	}{
		{"g", 2, 1},
		{"e", 2, 2},
		{"f", 2, 1},
		{"ge", 2, 3},
		{"gef", 2, 4},
		{"f", 3, 3},
		{"gef", 3, 7},
		{"gef", 4, 11},
	}
	for _, tc := range cases {
		ss, err := operator.ParseSubspace(tc.label)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ss.NStates(tc.nSites),
			"NStates(%q, %d sites)", tc.label, tc.nSites)
	}
}
