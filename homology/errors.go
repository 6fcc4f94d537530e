package homology

import (
	"github.com/katalvlaran/cubhom/chaincomplex"
	"github.com/katalvlaran/cubhom/cubicalset"
	"github.com/katalvlaran/cubhom/reducer"
)

// Re-exported sentinels, aliased at the package a caller is most likely to
// import directly, so errors.Is works without reaching into internal
// packages.
var (
	// ErrEmbeddingMismatch is cubicalset.ErrEmbeddingMismatch.
	ErrEmbeddingMismatch = cubicalset.ErrEmbeddingMismatch

	// ErrBoundarySquareViolated is chaincomplex.ErrBoundarySquareViolated.
	ErrBoundarySquareViolated = chaincomplex.ErrBoundarySquareViolated

	// ErrInvariantViolated is reducer.ErrInvariantViolated.
	ErrInvariantViolated = reducer.ErrInvariantViolated
)
