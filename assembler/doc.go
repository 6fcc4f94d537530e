// Package assembler turns a chaincomplex.ChainComplex's sparse boundary
// chains into dense integer matrices suitable for Smith normal form, and
// back: CanonicalCoordinates/ChainFromCanonicalCoordinates convert between a
// chain.Chain and its coefficient vector relative to a fixed ordered basis.
//
// IntMatrix is dense row-major storage with bounds-checked accessors,
// specialized to int64 since every coefficient here is an exact integer.
package assembler
