package assembler_test

import (
	"testing"

	"github.com/katalvlaran/cubhom/assembler"
	"github.com/katalvlaran/cubhom/chain"
	"github.com/katalvlaran/cubhom/chaincomplex"
	"github.com/katalvlaran/cubhom/cube"
	"github.com/katalvlaran/cubhom/cubicalset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntMatrix_SetAtRoundTrip(t *testing.T) {
	m, err := assembler.NewIntMatrix(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	_, err = m.At(5, 5)
	assert.Error(t, err)
}

func TestIntMatrix_CombineRowsUnimodular(t *testing.T) {
	m, err := assembler.NewIntMatrix(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(1, 0, 3))
	require.NoError(t, m.Set(1, 1, 4))

	// identity combination should be a no-op
	m.CombineRows(0, 1, 1, 0, 0, 1)
	v00, _ := m.At(0, 0)
	v11, _ := m.At(1, 1)
	assert.Equal(t, int64(1), v00)
	assert.Equal(t, int64(4), v11)
}

func TestCanonicalCoordinates_RoundTrip(t *testing.T) {
	a, _ := cube.New(cube.NewDegenerateInterval(0))
	b, _ := cube.New(cube.NewDegenerateInterval(1))
	basis := []cube.Cube{a, b}

	c := chain.New()
	c.Set(a, 3)
	c.Set(b, -5)

	coords := assembler.CanonicalCoordinates(c, basis)
	assert.Equal(t, []int64{3, -5}, coords)

	back := assembler.ChainFromCanonicalCoordinates(coords, basis)
	assert.Equal(t, int64(3), back.Get(a))
	assert.Equal(t, int64(-5), back.Get(b))
	assert.True(t, equalChains(back, c))
}

func equalChains(a, b *chain.Chain) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, q := range a.Support() {
		if a.Get(q) != b.Get(q) {
			return false
		}
	}
	return true
}

func TestBuildBoundaryMatrices_SingleSquare(t *testing.T) {
	k := cubicalset.New()
	q, err := cube.New(cube.NewInterval(0), cube.NewInterval(0))
	require.NoError(t, err)
	require.NoError(t, k.Insert(q))

	cc, err := chaincomplex.BuildChainGroups(k)
	require.NoError(t, err)
	require.NoError(t, chaincomplex.BuildBoundaries(cc))

	matrices, err := assembler.BuildBoundaryMatrices(cc)
	require.NoError(t, err)
	require.Len(t, matrices, 2)

	m1 := matrices[0] // rows=|E[0]|=4, cols=|E[1]|=4
	assert.Equal(t, 4, m1.Rows())
	assert.Equal(t, 4, m1.Cols())

	m2 := matrices[1] // rows=|E[1]|=4, cols=|E[2]|=1
	assert.Equal(t, 4, m2.Rows())
	assert.Equal(t, 1, m2.Cols())

	// each column of m1 (an edge's boundary) has entries summing to 0
	for j := 0; j < m1.Cols(); j++ {
		var sum int64
		for i := 0; i < m1.Rows(); i++ {
			v, _ := m1.At(i, j)
			sum += v
		}
		assert.Equal(t, int64(0), sum)
	}
}

func TestBuildBoundaryMatrices_NilChainComplex(t *testing.T) {
	_, err := assembler.BuildBoundaryMatrices(nil)
	assert.Error(t, err)
}
