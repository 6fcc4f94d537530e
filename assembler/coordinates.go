package assembler

import (
	"github.com/katalvlaran/cubhom/chain"
	"github.com/katalvlaran/cubhom/cube"
)

// CanonicalCoordinates returns c's coefficient vector relative to the
// ordered basis, i.e. v[i] = c.Get(basis[i]). Complexity: O(len(basis)).
func CanonicalCoordinates(c *chain.Chain, basis []cube.Cube) []int64 {
	v := make([]int64, len(basis))
	for i, b := range basis {
		v[i] = c.Get(b)
	}
	return v
}

// ChainFromCanonicalCoordinates is the inverse of CanonicalCoordinates: it
// builds a chain.Chain from a coefficient vector over the given basis.
// len(v) must equal len(basis); entries beyond either slice's length are
// ignored.
func ChainFromCanonicalCoordinates(v []int64, basis []cube.Cube) *chain.Chain {
	c := chain.New()
	n := len(v)
	if len(basis) < n {
		n = len(basis)
	}
	for i := 0; i < n; i++ {
		c.Set(basis[i], v[i])
	}
	return c
}
