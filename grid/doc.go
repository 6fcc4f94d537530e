// Package grid provides the external pixel/voxel-grid collaborators that
// turn a boolean 2-D or 3-D grid into a cubicalset.CubicalSet.
// This is the sole geometric collaborator of the module: it contains no
// chain-complex or homology logic, only grid validation and cube emission.
//
// Element (x,y) = true yields the cube I(x) x I(y), where I(n) is the
// non-degenerate interval [n, n+1]; the whole grid is checked for emptiness
// and rectangular shape before any cube is emitted, the same discipline as
// this module's other structural validators.
package grid
