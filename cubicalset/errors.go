package cubicalset

import "errors"

// Sentinel errors for cubicalset operations.
var (
	// ErrEmbeddingMismatch indicates a cube with a different embedding number
	// than earlier cubes was inserted into the same CubicalSet.
	ErrEmbeddingMismatch = errors.New("cubicalset: inconsistent embedding number across cubes")
)
