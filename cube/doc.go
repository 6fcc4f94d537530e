// Package cube implements elementary-cube algebra: unit-length intervals,
// their products, and the primary-face operator used throughout cubhom to
// build and reduce chain complexes.
//
// An elementary interval is either degenerate [n, n] (a point) or
// non-degenerate [n, n+1] (a unit edge). An elementary cube is an ordered
// product of intervals; its dimension is the count of non-degenerate
// factors. Cubes are value types: every operation that would "modify" a
// cube returns a fresh one.
package cube
