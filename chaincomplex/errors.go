package chaincomplex

import "errors"

// Sentinel errors for chaincomplex operations.
var (
	// ErrBoundarySquareViolated indicates ∂_{k-1} ∘ ∂_k ≠ 0 was detected,
	// signaling a bug in construction or in a reducer rewrite.
	ErrBoundarySquareViolated = errors.New("chaincomplex: boundary-of-boundary is nonzero")
)
