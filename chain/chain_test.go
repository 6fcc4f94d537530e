package chain_test

import (
	"testing"

	"github.com/katalvlaran/cubhom/chain"
	"github.com/katalvlaran/cubhom/cube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCube(t *testing.T, ivs ...cube.Interval) cube.Cube {
	t.Helper()
	q, err := cube.New(ivs...)
	require.NoError(t, err)
	return q
}

func TestChain_SetGetDelete(t *testing.T) {
	c := chain.New()
	q := mustCube(t, cube.NewInterval(0))

	assert.Equal(t, int64(0), c.Get(q))
	assert.False(t, c.Has(q))

	c.Set(q, 3)
	assert.Equal(t, int64(3), c.Get(q))
	assert.True(t, c.Has(q))
	assert.Equal(t, 1, c.Len())

	c.Set(q, 0)
	assert.False(t, c.Has(q))
	assert.Equal(t, 0, c.Len())
}

func TestChain_Add_AccumulatesAndZeroesOut(t *testing.T) {
	c := chain.New()
	q := mustCube(t, cube.NewInterval(1))

	c.Add(q, 2)
	c.Add(q, -2)
	assert.False(t, c.Has(q), "coefficient hitting 0 must remove the key")

	c.Add(q, 5)
	assert.Equal(t, int64(5), c.Get(q))
}

func TestChain_Support_And_Clone_AreIndependent(t *testing.T) {
	c := chain.New()
	a := mustCube(t, cube.NewInterval(0))
	b := mustCube(t, cube.NewInterval(1))
	c.Set(a, 1)
	c.Set(b, -1)

	support := c.Support()
	assert.Len(t, support, 2)

	clone := c.Clone()
	clone.Set(a, 99)
	assert.Equal(t, int64(1), c.Get(a), "mutating the clone must not affect the original")
	assert.Equal(t, int64(99), clone.Get(a))
}

func TestChain_IsZero(t *testing.T) {
	c := chain.New()
	assert.True(t, c.IsZero())
	c.Set(mustCube(t, cube.NewInterval(0)), 1)
	assert.False(t, c.IsZero())
}
