package cubicalset

import "github.com/katalvlaran/cubhom/cube"

// CubicalSet is a finite, unordered collection of elementary cubes, keyed by
// structural equality (cube.Cube.Key()). It is consumed (drained) by
// chaincomplex.BuildChainGroups: cubes are popped one at a time until empty.
//
// Invariant: every cube inserted into one CubicalSet shares the same
// embedding number; a mismatched Insert returns ErrEmbeddingMismatch.
type CubicalSet struct {
	cubes           map[string]cube.Cube
	embeddingNumber int
	hasEmbedding    bool
	maxDim          int
}

// New returns an empty CubicalSet.
func New() *CubicalSet {
	return &CubicalSet{cubes: make(map[string]cube.Cube)}
}

// Insert adds q to the set (a no-op if a structurally equal cube is already
// present). Returns ErrEmbeddingMismatch if q's embedding number differs
// from cubes already in the set.
// Complexity: O(1).
func (k *CubicalSet) Insert(q cube.Cube) error {
	if k.hasEmbedding && q.EmbeddingNumber() != k.embeddingNumber {
		return ErrEmbeddingMismatch
	}
	if !k.hasEmbedding {
		k.embeddingNumber = q.EmbeddingNumber()
		k.hasEmbedding = true
	}
	key := q.Key()
	if _, exists := k.cubes[key]; !exists {
		k.cubes[key] = q
		if d := q.Dimension(); d > k.maxDim {
			k.maxDim = d
		}
	}
	return nil
}

// Pop removes and returns an arbitrary cube from the set (Go map iteration
// order, unspecified but fixed within one call). The second return is false
// if the set is empty.
// Complexity: O(1) amortized.
func (k *CubicalSet) Pop() (cube.Cube, bool) {
	for key, q := range k.cubes {
		delete(k.cubes, key)
		return q, true
	}
	return cube.Cube{}, false
}

// IsEmpty reports whether the set has no remaining cubes.
func (k *CubicalSet) IsEmpty() bool { return len(k.cubes) == 0 }

// Len returns the number of cubes currently in the set.
func (k *CubicalSet) Len() int { return len(k.cubes) }

// Dimension returns the maximum dimension among cubes ever inserted into the
// set (cubes already popped still count). Used to pre-size E[0..d] before
// draining, mirroring the original CubicalChainGroups' use of K.Dimension().
func (k *CubicalSet) Dimension() int { return k.maxDim }

// EmbeddingNumber returns the ambient embedding number shared by all cubes
// in the set, or 0 if the set has never held a cube.
func (k *CubicalSet) EmbeddingNumber() int { return k.embeddingNumber }
