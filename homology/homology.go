package homology

import (
	"github.com/katalvlaran/cubhom/assembler"
	"github.com/katalvlaran/cubhom/chaincomplex"
	"github.com/katalvlaran/cubhom/cubicalset"
	"github.com/katalvlaran/cubhom/reducer"
)

// ComputeHomology computes the integer homology of the cubical set k,
// returning invariant-factor lists for H_0(k), ..., H_d(k). k is consumed
// (drained) as a side effect of chain-group construction.
//
// When useReduction is true, the chain complex is reduced via reducer.Reduce
// before assembly; the result is identical either way.
//
// The special case d = 0 (every cube in k is a point) is handled directly:
// no boundary matrices exist to hand a Solver, so H_0 is read off as one
// zero per connected point, and there is no H_k for k > 0.
func ComputeHomology(k *cubicalset.CubicalSet, useReduction bool, opts ...Option) ([][]int64, error) {
	cc, err := chaincomplex.BuildChainGroups(k)
	if err != nil {
		return nil, err
	}
	if err := chaincomplex.BuildBoundaries(cc); err != nil {
		return nil, err
	}

	if cc.Dim == 0 {
		return [][]int64{make([]int64, len(cc.Basis[0]))}, nil
	}

	if useReduction {
		if _, err := reducer.Reduce(cc); err != nil {
			return nil, err
		}
	}

	if err := chaincomplex.CheckBoundarySquare(cc); err != nil {
		return nil, err
	}

	matrices, err := assembler.BuildBoundaryMatrices(cc)
	if err != nil {
		return nil, err
	}

	cfg := gatherOptions(opts...)
	return cfg.solver.Solve(matrices)
}
