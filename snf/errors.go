package snf

import "errors"

// Sentinel errors for snf operations.
var (
	// ErrNilMatrix indicates SmithNormalForm received a nil *assembler.IntMatrix.
	ErrNilMatrix = errors.New("snf: nil matrix")
)
