package assembler

import "github.com/katalvlaran/cubhom/chaincomplex"

// BuildBoundaryMatrices returns the dense integer boundary matrices
// M_1, ..., M_Dim of cc. M_k has shape len(E[k-1]) x len(E[k]); column j is
// the canonical coordinates of ∂(E[k][j]) relative to E[k-1], following the
// deterministic column-per-generator convention: columns follow Basis[k]'s
// stable order, rows follow Basis[k-1]'s stable order.
// Complexity: O(Σ_k len(E[k-1]) * len(E[k])).
func BuildBoundaryMatrices(cc *chaincomplex.ChainComplex) ([]*IntMatrix, error) {
	if cc == nil {
		return nil, ErrNilChainComplex
	}

	matrices := make([]*IntMatrix, cc.Dim)
	for k := 1; k <= cc.Dim; k++ {
		rows := len(cc.Basis[k-1])
		cols := len(cc.Basis[k])
		m, err := NewIntMatrix(rows, cols)
		if err != nil {
			return nil, err
		}
		for j, b := range cc.Basis[k] {
			bd, ok := cc.BoundaryOf(k, b)
			if !ok {
				continue
			}
			coords := CanonicalCoordinates(bd, cc.Basis[k-1])
			for i, v := range coords {
				if v != 0 {
					_ = m.Set(i, j, v)
				}
			}
		}
		matrices[k-1] = m
	}
	return matrices, nil
}
