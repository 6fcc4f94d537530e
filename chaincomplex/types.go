package chaincomplex

import (
	"github.com/katalvlaran/cubhom/chain"
	"github.com/katalvlaran/cubhom/cube"
)

// ChainComplex holds the chain-group bases E[0..Dim] and the sparse integer
// boundary operators ∂[0..Dim-1] of a cubical set.
//
// Basis[k] is E[k]: the ordered, canonically-sorted basis of C_k. Boundary[k]
// maps a (k+1)-cube's Key() to its signed boundary chain over Basis[k], for
// k in [0, Dim-1]. Before any Reduce, Basis and Boundary are read-only
// outside this package; reducer.Reduce mutates them in place.
type ChainComplex struct {
	Dim      int
	Basis    [][]cube.Cube
	Boundary []map[string]*chain.Chain
}

// BoundaryOf returns the stored boundary chain of cube b, which must be a
// member of Basis[k] for some k in [1, Dim]. Returns nil, false if no
// boundary is stored for b (e.g. b is 0-dimensional, or Boundary has not yet
// been built).
func (cc *ChainComplex) BoundaryOf(k int, b cube.Cube) (*chain.Chain, bool) {
	if k < 1 || k > cc.Dim {
		return nil, false
	}
	bd, ok := cc.Boundary[k-1][b.Key()]
	return bd, ok
}

// RemoveFromBasis removes the cube with q's key from Basis[k] via a
// swap-to-back-and-pop, reporting whether q was present. The last cube moves
// into the vacated slot, so Basis[k] is no longer in canonical order
// afterwards.
// Complexity: O(len(Basis[k])).
func (cc *ChainComplex) RemoveFromBasis(k int, q cube.Cube) bool {
	if k < 0 || k > cc.Dim {
		return false
	}
	basis := cc.Basis[k]
	key := q.Key()
	for i, c := range basis {
		if c.Key() == key {
			last := len(basis) - 1
			basis[i] = basis[last]
			cc.Basis[k] = basis[:last]
			return true
		}
	}
	return false
}

// Sizes returns len(Basis[k]) for k in [0, Dim]: the per-dimension terms of
// the Σ_k|E[k]| count that TotalCubes sums.
func (cc *ChainComplex) Sizes() []int {
	sizes := make([]int, len(cc.Basis))
	for k, b := range cc.Basis {
		sizes[k] = len(b)
	}
	return sizes
}

// TotalCubes returns Σ_k len(Basis[k]).
func (cc *ChainComplex) TotalCubes() int {
	total := 0
	for _, b := range cc.Basis {
		total += len(b)
	}
	return total
}
