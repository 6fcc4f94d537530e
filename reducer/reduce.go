package reducer

import (
	"fmt"

	"github.com/katalvlaran/cubhom/chaincomplex"
	"github.com/katalvlaran/cubhom/cube"
)

// Stats summarizes a Reduce run: how many elementary collapses were applied
// and how Σ_k|E[k]| shrank as a result.
type Stats struct {
	Reductions  int
	InitialSize int
	FinalSize   int
}

// Reduce drives chain-complex reduction to a fixed point: repeated sweeps
// from k = cc.Dim downward, each collapsing the first eligible pair found
// and restarting the scan at the same k, until a full sweep makes no
// reduction. cc is mutated in place.
//
// By default a pair is eligible at k = cc.Dim unconditionally, and at
// k < cc.Dim only when a is a free face of E[k]; WithTopDimensionOnly
// restricts the whole loop to k = cc.Dim, reproducing the source's
// conservative behavior.
func Reduce(cc *chaincomplex.ChainComplex, opts ...Option) (Stats, error) {
	cfg := gatherOptions(opts...)
	initial := cc.TotalCubes()
	reductions := 0

	for {
		progressed := false
		minK := 1
		if cfg.topDimensionOnly {
			minK = cc.Dim
		}
		for k := cc.Dim; k >= minK; k-- {
			for {
				a, b, alpha, found := findPair(cc, k, cfg)
				if !found {
					break
				}
				reducePair(cc, k, a, b, alpha)
				reductions++
				progressed = true
				if cfg.validateAfterEachStep {
					if err := chaincomplex.CheckBoundarySquare(cc); err != nil {
						return Stats{}, fmt.Errorf("%w: %v", ErrInvariantViolated, err)
					}
				}
			}
		}
		if !progressed {
			break
		}
	}

	return Stats{
		Reductions:  reductions,
		InitialSize: initial,
		FinalSize:   cc.TotalCubes(),
	}, nil
}

// findPair scans E[k] x E[k-1] in current basis order (canonical until the
// first removal reorders a basis) for the first eligible
// collapse pair (a, b) with |⟨∂b, a⟩| = 1, returning ⟨∂b, a⟩ as alpha.
func findPair(cc *chaincomplex.ChainComplex, k int, cfg config) (a, b cube.Cube, alpha int64, found bool) {
	if k < 1 || k > cc.Dim {
		return cube.Cube{}, cube.Cube{}, 0, false
	}
	for _, candB := range cc.Basis[k] {
		bd, ok := cc.BoundaryOf(k, candB)
		if !ok {
			continue
		}
		for _, candA := range cc.Basis[k-1] {
			coeff := bd.Get(candA)
			if coeff != 1 && coeff != -1 {
				continue
			}
			if k == cc.Dim || (!cfg.topDimensionOnly && isFreeFace(cc, k, candA, candB)) {
				return candA, candB, coeff, true
			}
		}
	}
	return cube.Cube{}, cube.Cube{}, 0, false
}

// isFreeFace reports whether a appears in the boundary support of exactly
// one cube of E[k]: b itself, and no other.
func isFreeFace(cc *chaincomplex.ChainComplex, k int, a, b cube.Cube) bool {
	for _, c := range cc.Basis[k] {
		if c.Key() == b.Key() {
			continue
		}
		bdc, ok := cc.BoundaryOf(k, c)
		if !ok {
			continue
		}
		if bdc.Has(a) {
			return false
		}
	}
	return true
}

// reducePair applies the three-step rewrite for the collapse pair (a, b) at
// dimension k, with alpha = ⟨∂b, a⟩.
func reducePair(cc *chaincomplex.ChainComplex, k int, a, b cube.Cube, alpha int64) {
	bd, _ := cc.BoundaryOf(k, b) // ∂b over E[k-1]

	// Step 1: b is disappearing; erase it from every coboundary above.
	if k < cc.Dim {
		for _, c := range cc.Basis[k+1] {
			if bdc, ok := cc.BoundaryOf(k+1, c); ok {
				bdc.Delete(b)
			}
		}
	}

	// Step 2: rewrite every sibling c of E[k] whose boundary touches a.
	for _, c := range cc.Basis[k] {
		if c.Key() == b.Key() {
			continue
		}
		bdc, ok := cc.BoundaryOf(k, c)
		if !ok {
			continue
		}
		beta := bdc.Get(a)
		if beta == 0 {
			continue
		}
		for _, x := range bd.Support() {
			bdc.Add(x, -beta*alpha*bd.Get(x))
		}
	}

	// Step 3: delete the pair and its stored boundaries.
	cc.RemoveFromBasis(k, b)
	cc.RemoveFromBasis(k-1, a)
	delete(cc.Boundary[k-1], b.Key())
	if k >= 2 {
		delete(cc.Boundary[k-2], a.Key())
	}
}
