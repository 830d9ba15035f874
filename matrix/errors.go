package matrix

import "errors"

// Sentinel errors for the matrix package. Public accessors return these
// instead of panicking; callers branch with errors.Is.
var (
	// ErrBadShape indicates a non-positive row or column count at construction.
	ErrBadShape = errors.New("matrix: invalid shape")
	// ErrOutOfRange indicates an At/Set/RegionSum query outside the grid.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
