// Package cubhom computes integer homology groups H_k(K; ℤ) of a finite
// cubical set K built from a pixel/voxel grid, returning the invariant-factor
// decomposition (free rank + torsion coefficients) for each dimension k.
//
// 🚀 What is cubhom?
//
//	A small, zero-runtime-dependency library that brings together:
//		• Cube algebra: elementary intervals, cubes, faces, signed boundary
//		• Chain complex construction: basis closure + sparse ∂ operators
//		• Elementary collapse reduction (CCR): shrink the complex in place
//		  while preserving homology
//		• Integer boundary-matrix assembly, ready for Smith normal form
//		• A built-in Smith-normal-form solver, or plug in your own
//
// ✨ Why choose cubhom?
//
//   - Exact — integer arithmetic throughout, no floating-point homology
//   - Pure Go – no cgo, no hidden deps (testify only, test-only)
//   - Deterministic — canonical cube ordering, reproducible matrix layouts
//   - Pluggable — bring your own homology.Solver (e.g. a LinBox bridge)
//
// Under the hood, everything is organized under focused subpackages:
//
//	cube/         — Interval, Cube: elementary-cube algebra and primary faces
//	chain/        — Chain: sparse ℤ-linear combination of cubes
//	cubicalset/   — CubicalSet: drainable bag of top cubes
//	grid/         — 2-D/3-D boolean-grid loaders producing a CubicalSet
//	chaincomplex/ — ChainGroupBuilder + BoundaryBuilder: E[0..d] and ∂
//	reducer/      — CCR: elementary collapse reduction of (E, ∂)
//	assembler/    — IntMatrix + MatrixAssembler: (E, ∂) → boundary matrices
//	snf/          — Smith normal form: default homology.Solver
//	homology/     — ComputeHomology: the public entry point
//
// Quick example: a 3×3 grid with every cell active except the center
// (an annulus) has H_0=[0], H_1=[0] (one independent loop), H_2=[] — see
// homology's package tests for the full scenario table.
//
//	go get github.com/katalvlaran/cubhom/homology
package cubhom
