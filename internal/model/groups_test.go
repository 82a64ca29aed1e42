package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john-livingston/DNest4/internal/dist"
)

func TestVectorGrouping(t *testing.T) {
	m := New()
	for i := 1; i <= 3; i++ {
		m.Add(mustNode(t, TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, i))
	}
	m.Add(mustNode(t, TypeReal, "s", dist.NewLogUniform("1", "2"), Coordinate, 0))

	vecs := m.VectorNames(Coordinate)
	assert.Equal(t, []string{"x"}, vecs)
	assert.Equal(t, 3, m.VectorSize("x"))

	// The vector's base must not show up as a scalar.
	scalars := m.ScalarNames(Coordinate)
	assert.Equal(t, []string{"s"}, scalars)
}

func TestVectorNamesAreRolePartitioned(t *testing.T) {
	m := New()
	m.Add(mustNode(t, TypeReal, "x", dist.NewUniform("0", "1"), Coordinate, 1))
	m.Add(mustNode(t, TypeReal, "y", dist.NewNormal("0", "1"), Data, 1))
	m.Add(mustNode(t, TypeInt, "N", nil, PriorInfo, 0))

	assert.Equal(t, []string{"x"}, m.VectorNames(Coordinate))
	assert.Equal(t, []string{"y"}, m.VectorNames(Data))
	assert.Empty(t, m.VectorNames(PriorInfo))
	assert.Equal(t, []string{"N"}, m.ScalarNames(PriorInfo))
}

func TestVectorElemType(t *testing.T) {
	m := New()
	m.Add(mustNode(t, TypeInt, "k", dist.NewUniform("0", "10"), Coordinate, 1))

	et, err := m.VectorElemType("k")
	require.NoError(t, err)
	assert.Equal(t, TypeInt, et)

	_, err = m.VectorElemType("unregistered")
	assert.Error(t, err)
}
