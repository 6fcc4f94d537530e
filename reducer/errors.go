package reducer

import "errors"

// Sentinel errors for reducer operations.
var (
	// ErrInvariantViolated indicates a reduction broke ∂∘∂ = 0, detected by
	// WithValidateAfterEachStep. Surfacing this distinguishes a genuine
	// algorithm defect from ordinary input errors.
	ErrInvariantViolated = errors.New("reducer: reduction violated boundary-of-boundary invariant")
)
