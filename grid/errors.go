package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows (or columns, for the 3-D case) of
	// differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)
