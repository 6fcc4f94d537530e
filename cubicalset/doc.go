// Package cubicalset defines sentinel errors for the cubicalset subpackage
// of github.com/katalvlaran/cubhom and implements CubicalSet: a finite,
// drainable, unordered collection of elementary cubes. It is the input
// container consumed by chaincomplex.BuildChainGroups during the downward
// face closure (§4.2).
package cubicalset
