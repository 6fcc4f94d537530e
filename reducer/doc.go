// Package reducer implements chain-complex reduction (CCR): the elementary
// collapse of free-face pairs (a, b), a ∈ E[k-1], b ∈ E[k], ⟨∂b, a⟩ = ±1,
// which deformation-retracts the chain complex without changing its
// homology. Reduce drives the per-pair rewrite to a fixed point, shrinking
// Σ_k|E[k]| before the boundary matrices ever reach assembler/snf.
package reducer
