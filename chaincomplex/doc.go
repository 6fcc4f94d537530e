// Package chaincomplex builds the chain groups C_0..C_d of a cubical set and
// their integer boundary operators ∂_k : C_k → C_{k-1}.
//
// ChainGroupBuilder (BuildChainGroups) performs the downward face closure:
// repeatedly popping a cube from the input CubicalSet, inserting its primary
// faces back into the set and into the next-lower basis, until the set is
// drained; each basis E[k] is then sorted into the canonical lexicographic
// order so that matrix column/row indices are reproducible across runs.
//
// BoundaryBuilder (BuildBoundaries) evaluates the signed boundary operator
// on every cube of every basis and stores it as a sparse Chain, ready for
// reducer.Reduce or assembler.BuildBoundaryMatrices.
package chaincomplex
