package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// ErrEmptyCube indicates a Cube was constructed with zero intervals.
	ErrEmptyCube = errors.New("cube: cube must have at least one interval factor")

	// ErrIndexOutOfRange indicates a coordinate index outside [0, EmbeddingNumber).
	ErrIndexOutOfRange = errors.New("cube: coordinate index out of range")
)
