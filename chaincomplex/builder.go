package chaincomplex

import (
	"sort"

	"github.com/katalvlaran/cubhom/chain"
	"github.com/katalvlaran/cubhom/cube"
	"github.com/katalvlaran/cubhom/cubicalset"
)

// BuildChainGroups performs the downward face closure: repeatedly pop a
// cube Q from k, inserting its primary faces into both k and the
// (dim(Q)-1)-basis, until k is drained. Each resulting basis is then sorted
// into canonical lexicographic order (cube.Cube.Less) so that matrix
// column/row indices are reproducible across runs.
//
// k is consumed: it is empty when BuildChainGroups returns.
// Complexity: O(N log N) where N = Σ_k len(E[k]), dominated by the final sort.
func BuildChainGroups(k *cubicalset.CubicalSet) (*ChainComplex, error) {
	d := k.Dimension()
	basisSets := make([]map[string]cube.Cube, d+1)
	for i := range basisSets {
		basisSets[i] = make(map[string]cube.Cube)
	}

	for !k.IsEmpty() {
		q, ok := k.Pop()
		if !ok {
			break
		}
		dim := q.Dimension()
		if dim > 0 {
			for _, face := range q.PrimaryFaces() {
				if err := k.Insert(face); err != nil {
					return nil, err
				}
				basisSets[dim-1][face.Key()] = face
			}
		}
		basisSets[dim][q.Key()] = q
	}

	basis := make([][]cube.Cube, d+1)
	for i, set := range basisSets {
		ordered := make([]cube.Cube, 0, len(set))
		for _, q := range set {
			ordered = append(ordered, q)
		}
		sort.Slice(ordered, func(a, b int) bool { return ordered[a].Less(ordered[b]) })
		basis[i] = ordered
	}

	return &ChainComplex{
		Dim:      d,
		Basis:    basis,
		Boundary: make([]map[string]*chain.Chain, d),
	}, nil
}
