// Package chain implements Chain: a finite formal ℤ-linear combination of
// cube.Cube values, the generator of a chain group C_k.
//
// A Chain is a mapping from Cube to nonzero integer coefficient; absent keys
// denote zero. Because cube.Cube carries a slice and cannot itself be a Go
// map key, Chain keys internally by cube.Cube.Key() and keeps the Cube value
// alongside for iteration.
package chain
