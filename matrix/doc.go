// Package matrix provides a minimal dense 2-D float64 grid: row-major
// storage, safe bounds-checked accessors, and a prefix-sum helper used by
// the search package to rank candidate rotations by how much unmatched-pair
// mass falls inside their footprint.
package matrix
