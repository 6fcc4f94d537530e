package assembler

import "errors"

// Sentinel errors for assembler operations.
var (
	// ErrInvalidDimensions indicates a requested matrix shape was negative.
	ErrInvalidDimensions = errors.New("assembler: dimensions must be >= 0")

	// ErrOutOfRange indicates an At/Set index fell outside the matrix shape.
	ErrOutOfRange = errors.New("assembler: index out of range")

	// ErrNilChainComplex indicates BuildBoundaryMatrices received a nil
	// *chaincomplex.ChainComplex.
	ErrNilChainComplex = errors.New("assembler: nil chain complex")
)
