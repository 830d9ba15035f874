// Package field provides the board primitive the search package operates
// on: a fixed-size grid of integer labels, in-place square-region rotation,
// pair detection (matched/unmatched counts, Manhattan distances, an
// unmatched-cell mask), and a deterministic 64-bit hash.
//
// A Board is a value that owns its cell array. Mutation happens only
// through Set, which writes one cell, and Apply, which rewrites a k×k
// sub-square in place; Applied clones
// first so the receiver is left untouched. Every other query
// (EvaluatePairs, Hash, PositionsOf, …) is a pure read over the current
// cells.
package field
