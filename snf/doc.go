// Package snf computes the Smith normal form of a dense integer matrix via
// iterative extended-Euclid row/column elimination, and exposes a
// homology.Solver built on top of it. This concretizes the "external,
// opaque" solver seam with a runnable default: no matrix library in the
// reference corpus does integer Smith normal form, so the elimination loop
// here is adapted from the float64 Gaussian-elimination pivot/fixup idiom to
// unimodular integer row/column operations.
package snf
