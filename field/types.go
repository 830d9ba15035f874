package field

import "errors"

// Sentinel errors for the field package. Callers branch with errors.Is;
// sentinels are never wrapped with formatted strings at the definition
// site — context is attached with %w at the call site instead.
var (
	// ErrInvalidBoard indicates a zero size, or a cell count that does not
	// equal size*size.
	ErrInvalidBoard = errors.New("field: invalid board")
	// ErrOutOfBounds indicates a read or write at a position outside the
	// board. Operations whose footprint leaves the board are reported with
	// ErrInvalidOperation instead.
	ErrOutOfBounds = errors.New("field: position out of bounds")
	// ErrInvalidOperation indicates an operation whose k is <2 or >size, or
	// whose footprint would extend past the board edge.
	ErrInvalidOperation = errors.New("field: invalid operation")
)

// Position is a zero-based (x, y) cell coordinate.
type Position struct {
	X, Y int
}

// Operation describes a 90° clockwise rotation of the k×k sub-square whose
// top-left corner is (X, Y).
type Operation struct {
	X, Y, K int
}

// IsValid reports whether the operation's footprint fits within a board of
// the given size: K must be in [2, size], and the footprint must not cross
// the board edge.
func (op Operation) IsValid(size int) bool {
	if op.K < 2 || op.K > size {
		return false
	}
	if op.X < 0 || op.Y < 0 {
		return false
	}
	if op.X+op.K > size || op.Y+op.K > size {
		return false
	}
	return true
}

// Equal reports whether two operations describe the same rotation.
func (op Operation) Equal(other Operation) bool {
	return op.X == other.X && op.Y == other.Y && op.K == other.K
}

// PairStatus is the summary-only pair-detection result: how many label
// pairs are already adjacent (matched) versus not (unmatched).
type PairStatus struct {
	Matched   int
	Unmatched int
}

// PairMetrics is the full pair-detection result, including the distance
// aggregates and mask the move generator and evaluator depend on.
//
// Invariant: Matched + Unmatched == len(mask)/2 for a well-formed board.
type PairMetrics struct {
	Status                 PairStatus
	TotalUnmatchedDistance int
	MaxUnmatchedDistance   int
	// UnmatchedMask has one byte per cell (row-major); 1 marks a cell that
	// belongs to an unmatched pair, 0 otherwise.
	UnmatchedMask []byte
}
