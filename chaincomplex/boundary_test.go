package chaincomplex_test

import (
	"testing"

	"github.com/katalvlaran/cubhom/chaincomplex"
	"github.com/katalvlaran/cubhom/cube"
	"github.com/katalvlaran/cubhom/cubicalset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBoundaryOperator_SingleEdge checks the elementary case: a single
// 1-cube [n, n+1] has boundary [n+1] - [n].
func TestBoundaryOperator_SingleEdge(t *testing.T) {
	edge, err := cube.New(cube.NewInterval(5))
	require.NoError(t, err)

	bd := chaincomplex.BoundaryOperator(edge)

	left, _ := cube.New(cube.NewDegenerateInterval(5))
	right, _ := cube.New(cube.NewDegenerateInterval(6))

	assert.Equal(t, int64(-1), bd.Get(left))
	assert.Equal(t, int64(1), bd.Get(right))
	assert.Len(t, bd.Support(), 2)
}

// TestBoundaryOperator_UnitSquare checks the four-face, alternating-sign
// structure of a 2-cube's boundary: each of the two non-degenerate
// coordinates contributes one face with coefficient -1 and one with +1, with
// the sign convention flipping between coordinates.
func TestBoundaryOperator_UnitSquare(t *testing.T) {
	sq, err := cube.New(cube.NewInterval(0), cube.NewInterval(2))
	require.NoError(t, err)

	bd := chaincomplex.BoundaryOperator(sq)
	require.Len(t, bd.Support(), 4)

	fx0, _ := cube.New(cube.NewDegenerateInterval(0), cube.NewInterval(2))
	fx1, _ := cube.New(cube.NewDegenerateInterval(1), cube.NewInterval(2))
	fy0, _ := cube.New(cube.NewInterval(0), cube.NewDegenerateInterval(2))
	fy1, _ := cube.New(cube.NewInterval(0), cube.NewDegenerateInterval(3))

	assert.Equal(t, int64(-1), bd.Get(fx0))
	assert.Equal(t, int64(1), bd.Get(fx1))
	assert.Equal(t, int64(1), bd.Get(fy0))
	assert.Equal(t, int64(-1), bd.Get(fy1))

	var sum int64
	for _, c := range bd.Support() {
		sum += bd.Get(c)
	}
	assert.Equal(t, int64(0), sum, "signed face counts must cancel")
}

// TestBuildBoundaries_CheckBoundarySquare_SingleSquare validates ∂∘∂ = 0 on
// the full closure of a single unit square.
func TestBuildBoundaries_CheckBoundarySquare_SingleSquare(t *testing.T) {
	k := cubicalset.New()
	q, err := cube.New(cube.NewInterval(0), cube.NewInterval(0))
	require.NoError(t, err)
	require.NoError(t, k.Insert(q))

	cc, err := chaincomplex.BuildChainGroups(k)
	require.NoError(t, err)
	require.NoError(t, chaincomplex.BuildBoundaries(cc))

	assert.NoError(t, chaincomplex.CheckBoundarySquare(cc))
}

// TestBuildBoundaries_CheckBoundarySquare_Annulus validates ∂∘∂ = 0 on a
// multi-square complex shaped like an annulus ring (a 3x3 block of squares
// with the center one removed), exercising shared-face accumulation.
func TestBuildBoundaries_CheckBoundarySquare_Annulus(t *testing.T) {
	k := cubicalset.New()
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if x == 1 && y == 1 {
				continue
			}
			q, err := cube.New(cube.NewInterval(x), cube.NewInterval(y))
			require.NoError(t, err)
			require.NoError(t, k.Insert(q))
		}
	}

	cc, err := chaincomplex.BuildChainGroups(k)
	require.NoError(t, err)
	require.NoError(t, chaincomplex.BuildBoundaries(cc))

	assert.NoError(t, chaincomplex.CheckBoundarySquare(cc))
}

func TestBuildBoundaries_NilChainComplex(t *testing.T) {
	err := chaincomplex.BuildBoundaries(nil)
	assert.Error(t, err)
}
