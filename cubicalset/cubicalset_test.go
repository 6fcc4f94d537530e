package cubicalset_test

import (
	"testing"

	"github.com/katalvlaran/cubhom/cube"
	"github.com/katalvlaran/cubhom/cubicalset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicalSet_InsertPopDrain(t *testing.T) {
	k := cubicalset.New()
	assert.True(t, k.IsEmpty())

	a, err := cube.New(cube.NewInterval(0), cube.NewInterval(0))
	require.NoError(t, err)
	b, err := cube.New(cube.NewInterval(1), cube.NewInterval(0))
	require.NoError(t, err)

	require.NoError(t, k.Insert(a))
	require.NoError(t, k.Insert(b))
	assert.Equal(t, 2, k.Len())
	assert.Equal(t, 2, k.Dimension())

	seen := map[string]bool{}
	for !k.IsEmpty() {
		q, ok := k.Pop()
		require.True(t, ok)
		seen[q.Key()] = true
	}
	assert.Len(t, seen, 2)

	_, ok := k.Pop()
	assert.False(t, ok)
}

func TestCubicalSet_Insert_Dedup(t *testing.T) {
	k := cubicalset.New()
	a, _ := cube.New(cube.NewInterval(0))
	require.NoError(t, k.Insert(a))
	require.NoError(t, k.Insert(a))
	assert.Equal(t, 1, k.Len())
}

func TestCubicalSet_Insert_EmbeddingMismatch(t *testing.T) {
	k := cubicalset.New()
	a, _ := cube.New(cube.NewInterval(0))
	b, _ := cube.New(cube.NewInterval(0), cube.NewInterval(1))

	require.NoError(t, k.Insert(a))
	err := k.Insert(b)
	assert.ErrorIs(t, err, cubicalset.ErrEmbeddingMismatch)
}
