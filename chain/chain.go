// SPDX-License-Identifier: MIT
package chain

import "github.com/katalvlaran/cubhom/cube"

// Chain maps cube.Cube to nonzero integer coefficients. Invariant: no key
// maps to 0 after any public operation — Set/Add remove the key outright
// when the resulting coefficient is 0.
type Chain struct {
	coeffs map[string]int64
	cubes  map[string]cube.Cube
}

// New returns an empty Chain.
func New() *Chain {
	return &Chain{
		coeffs: make(map[string]int64),
		cubes:  make(map[string]cube.Cube),
	}
}

// Get returns the coefficient of q, or 0 if q is absent from the support.
// Complexity: O(1).
func (c *Chain) Get(q cube.Cube) int64 {
	return c.coeffs[q.Key()]
}

// Set assigns q's coefficient to coeff. A coeff of 0 removes q from the
// support entirely (invariant: no stored zero coefficients).
// Complexity: O(1).
func (c *Chain) Set(q cube.Cube, coeff int64) {
	key := q.Key()
	if coeff == 0 {
		delete(c.coeffs, key)
		delete(c.cubes, key)
		return
	}
	c.coeffs[key] = coeff
	c.cubes[key] = q
}

// Add accumulates delta into q's coefficient (c[q] += delta), removing the
// key if the result is 0.
// Complexity: O(1).
func (c *Chain) Add(q cube.Cube, delta int64) {
	if delta == 0 {
		return
	}
	c.Set(q, c.Get(q)+delta)
}

// Delete removes q from the support unconditionally.
// Complexity: O(1).
func (c *Chain) Delete(q cube.Cube) {
	key := q.Key()
	delete(c.coeffs, key)
	delete(c.cubes, key)
}

// Has reports whether q has a nonzero coefficient in c.
// Complexity: O(1).
func (c *Chain) Has(q cube.Cube) bool {
	_, ok := c.coeffs[q.Key()]
	return ok
}

// Len returns the number of cubes with nonzero coefficient.
// Complexity: O(1).
func (c *Chain) Len() int {
	return len(c.coeffs)
}

// Support returns the (unordered) cubes with nonzero coefficient. The
// returned slice is a fresh copy; mutating it does not affect c.
// Complexity: O(len(c)).
func (c *Chain) Support() []cube.Cube {
	out := make([]cube.Cube, 0, len(c.cubes))
	for _, q := range c.cubes {
		out = append(out, q)
	}
	return out
}

// Clone returns a deep copy of c.
// Complexity: O(len(c)).
func (c *Chain) Clone() *Chain {
	out := New()
	for key, coeff := range c.coeffs {
		out.coeffs[key] = coeff
		out.cubes[key] = c.cubes[key]
	}
	return out
}

// IsZero reports whether the chain has empty support.
// Complexity: O(1).
func (c *Chain) IsZero() bool {
	return len(c.coeffs) == 0
}
