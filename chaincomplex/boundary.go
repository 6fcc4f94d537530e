package chaincomplex

import (
	"fmt"

	"github.com/katalvlaran/cubhom/chain"
	"github.com/katalvlaran/cubhom/cube"
)

// BoundaryOperator computes the signed boundary ∂Q of §4.1. It reuses
// cube.Cube.PrimaryFaces, which enumerates non-degenerate coordinates in
// ascending order and, for each, appends the left-collapse face followed by
// the right-collapse face — exactly the pairing the alternating-sign rule
// needs: for the j-th non-degenerate coordinate, contribute -sign to the
// left-collapse face and +sign to the right-collapse face, then flip sign.
// Structurally coincident faces (possible when some coordinates are
// degenerate) accumulate via Chain.Add rather than overwrite.
// Complexity: O(dim(Q)).
func BoundaryOperator(q cube.Cube) *chain.Chain {
	faces := q.PrimaryFaces()
	c := chain.New()
	sign := int64(1)
	for j := 0; 2*j+1 < len(faces); j++ {
		left := faces[2*j]
		right := faces[2*j+1]
		c.Add(left, -sign)
		c.Add(right, sign)
		sign = -sign
	}
	return c
}

// BuildBoundaries evaluates BoundaryOperator on every cube of every basis
// E[1..Dim] and stores the result at Boundary[k-1]. cc.Basis
// must already be populated (via BuildChainGroups); cc.Boundary is
// (re)allocated here.
// Complexity: O(Σ_k len(E[k]) * avg-dimension).
func BuildBoundaries(cc *ChainComplex) error {
	if cc == nil {
		return fmt.Errorf("chaincomplex: nil chain complex")
	}
	cc.Boundary = make([]map[string]*chain.Chain, cc.Dim)
	for k := 1; k <= cc.Dim; k++ {
		m := make(map[string]*chain.Chain, len(cc.Basis[k]))
		for _, b := range cc.Basis[k] {
			m[b.Key()] = BoundaryOperator(b)
		}
		cc.Boundary[k-1] = m
	}
	return nil
}

// CheckBoundarySquare validates ∂_{k-1} ∘ ∂_k = 0 for every k in [2, Dim].
// Returns ErrBoundarySquareViolated,
// wrapped with the offending dimension and cube, on the first violation.
// Complexity: O(Σ_k len(E[k]) * avg-boundary-size^2).
func CheckBoundarySquare(cc *ChainComplex) error {
	for k := 2; k <= cc.Dim; k++ {
		for _, b := range cc.Basis[k] {
			bd, ok := cc.BoundaryOf(k, b)
			if !ok {
				continue
			}
			composed := chain.New()
			for _, x := range bd.Support() {
				coeffX := bd.Get(x)
				xBd, ok := cc.BoundaryOf(k-1, x)
				if !ok {
					continue
				}
				for _, y := range xBd.Support() {
					composed.Add(y, coeffX*xBd.Get(y))
				}
			}
			if !composed.IsZero() {
				return fmt.Errorf("%w: dimension %d, cube %s", ErrBoundarySquareViolated, k, b.String())
			}
		}
	}
	return nil
}
