// Package homology is the public entry point of the engine: ComputeHomology
// wires cubicalset -> chaincomplex -> (optionally) reducer -> assembler ->
// a pluggable Solver, producing the per-dimension invariant-factor lists of
// H_0(K), ..., H_Dim(K) over ℤ.
//
// The Solver interface is the documented external seam: the default is
// snf.Solver, a concrete Smith-normal-form implementation, but any
// collaborator satisfying the interface (e.g. a LinBox-backed solver) can be
// substituted via WithSolver.
package homology
