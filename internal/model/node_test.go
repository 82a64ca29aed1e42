package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john-livingston/DNest4/internal/dist"
)

func TestNewNode(t *testing.T) {
	t.Run("scalar keeps its bare name", func(t *testing.T) {
		n, err := NewNode(TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, 0)
		require.NoError(t, err)
		assert.Equal(t, "x", n.Name())
		assert.Equal(t, "x", n.Base())
		assert.Equal(t, 0, n.Index())
	})

	t.Run("positive index appends a suffix", func(t *testing.T) {
		n, err := NewNode(TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, 3)
		require.NoError(t, err)
		assert.Equal(t, "x[3]", n.Name())
		assert.Equal(t, "x", n.Base())
		assert.Equal(t, 3, n.Index())
	})

	t.Run("prior_info with a prior is a construction error", func(t *testing.T) {
		_, err := NewNode(TypeInt, "N", dist.NewUniform("0", "1"), PriorInfo, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPriorInfoPrior)
	})

	t.Run("prior_info without a prior is fine", func(t *testing.T) {
		n, err := NewNode(TypeInt, "N", nil, PriorInfo, 0)
		require.NoError(t, err)
		assert.Equal(t, PriorInfo, n.Role())
	})

	t.Run("negative index is rejected", func(t *testing.T) {
		_, err := NewNode(TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, -1)
		assert.Error(t, err)
	})
}

func TestNodeSubstitutesItsName(t *testing.T) {
	n, err := NewNode(TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, 0)
	require.NoError(t, err)
	assert.Equal(t, "x = 0 + (1 - (0))*rng.rand();\n", n.FromPrior())
	assert.NotContains(t, n.Perturb(), dist.Placeholder)
	assert.NotContains(t, n.LogDensity(), dist.Placeholder)

	indexed, err := NewNode(TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, 2)
	require.NoError(t, err)
	assert.Equal(t, "x[2] = 0 + (1 - (0))*rng.rand();\n", indexed.FromPrior())
}

func TestNodeWithoutPriorPanicsOnGeneration(t *testing.T) {
	n, err := NewNode(TypeInt, "N", nil, PriorInfo, 0)
	require.NoError(t, err)
	assert.Panics(t, func() { n.FromPrior() })
}

func TestElemTypeString(t *testing.T) {
	assert.Equal(t, "double", TypeReal.String())
	assert.Equal(t, "int", TypeInt.String())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "coordinate", Coordinate.String())
	assert.Equal(t, "derived", Derived.String())
	assert.Equal(t, "data", Data.String())
	assert.Equal(t, "prior_info", PriorInfo.String())
}
