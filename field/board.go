package field

import (
	"fmt"
	"strings"
)

// splitmix64Const is the canonical SplitMix64 golden-gamma constant used by
// both the finaliser mix and the classical hash-combiner step.
const splitmix64Const uint64 = 0x9E3779B97F4A7C15

// hashLabelMultiplier spaces label contributions out before mixing so that
// two different (label, index) pairs rarely collide after the finaliser.
const hashLabelMultiplier uint64 = 1_000_003

// Board is a fixed-size N×N grid of integer labels, stored row-major
// (index = y*size + x). It is a value that can be cloned cheaply — Applied
// and Clone both copy the backing cell slice.
type Board struct {
	size  int
	cells []int
}

// New constructs a Board from a row-major cell slice. It returns
// ErrInvalidBoard if size is not positive or len(cells) != size*size.
//
// The precondition that every label in [0, size*size/2) appears exactly
// twice is the caller's responsibility (spec: honoured by the input
// layer, not enforced by the primitive).
func New(size int, cells []int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("field.New: size=%d: %w", size, ErrInvalidBoard)
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("field.New: got %d cells, want %d: %w", len(cells), size*size, ErrInvalidBoard)
	}
	owned := make([]int, len(cells))
	copy(owned, cells)
	return &Board{size: size, cells: owned}, nil
}

// Size returns the board's side length.
func (b *Board) Size() int { return b.size }

// CellCount returns size*size.
func (b *Board) CellCount() int { return len(b.cells) }

// InBounds reports whether (x, y) lies within the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

func (b *Board) index(x, y int) int { return y*b.size + x }

// At returns the label at (x, y). It returns ErrOutOfBounds if the
// position is outside the board.
func (b *Board) At(x, y int) (int, error) {
	if !b.InBounds(x, y) {
		return 0, fmt.Errorf("field.At(%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return b.cells[b.index(x, y)], nil
}

// Set writes value at (x, y). It returns ErrOutOfBounds if the position is
// outside the board.
func (b *Board) Set(x, y, value int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("field.Set(%d,%d): %w", x, y, ErrOutOfBounds)
	}
	b.cells[b.index(x, y)] = value
	return nil
}

// IsValidOp reports whether op's footprint fits within this board.
func (b *Board) IsValidOp(op Operation) bool {
	return op.IsValid(b.size)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Apply performs an in-place 90° clockwise rotation of the k×k sub-square
// at (op.X, op.Y): for each (dx, dy) in [0, k)^2, the new cell at
// (x+dx, y+dy) takes the old cell at (x+dy, y+k-1-dx). It returns
// ErrInvalidOperation if op does not fit the board; Apply never aliases
// the source and destination by reading through a fresh k*k buffer first.
func (b *Board) Apply(op Operation) error {
	if !b.IsValidOp(op) {
		return fmt.Errorf("field.Apply(%+v): %w", op, ErrInvalidOperation)
	}
	k := op.K
	original := make([]int, k*k)
	for dy := 0; dy < k; dy++ {
		for dx := 0; dx < k; dx++ {
			original[dy*k+dx] = b.cells[b.index(op.X+dx, op.Y+dy)]
		}
	}
	for dy := 0; dy < k; dy++ {
		for dx := 0; dx < k; dx++ {
			srcRow := k - 1 - dx
			srcCol := dy
			b.cells[b.index(op.X+dx, op.Y+dy)] = original[srcRow*k+srcCol]
		}
	}
	return nil
}

// Applied returns a clone of b with op applied, leaving b untouched. It
// returns ErrInvalidOperation if op does not fit the board.
func (b *Board) Applied(op Operation) (*Board, error) {
	next := b.Clone()
	if err := next.Apply(op); err != nil {
		return nil, err
	}
	return next, nil
}

// PositionsOf returns every coordinate holding the given label, in
// row-major order. For a well-formed board this slice has length 0 or 2.
func (b *Board) PositionsOf(value int) []Position {
	var res []Position
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.cells[b.index(x, y)] == value {
				res = append(res, Position{X: x, Y: y})
			}
		}
	}
	return res
}

// EvaluatePairs returns the matched/unmatched pair counts. It is derived
// from evaluatePairMetrics rather than a separate traversal: the mask is not
// built, and the distance aggregates that traversal computes are discarded.
func (b *Board) EvaluatePairs() PairStatus {
	return b.evaluatePairMetrics(false).Status
}

// EvaluatePairMetrics returns the full pair-detection result: counts,
// total and maximum Manhattan distance among unmatched pairs, and the
// unmatched-cell mask.
func (b *Board) EvaluatePairMetrics() PairMetrics {
	return b.evaluatePairMetrics(true)
}

// evaluatePairMetrics is the single traversal shared by EvaluatePairs and
// EvaluatePairMetrics (spec §9: avoid duplicate traversals). withMask
// controls only whether the mask is allocated and populated; the distance
// aggregates are accumulated either way, and every caller pays the same
// O(N²) scan.
func (b *Board) evaluatePairMetrics(withMask bool) PairMetrics {
	var metrics PairMetrics
	if withMask {
		metrics.UnmatchedMask = make([]byte, len(b.cells))
	}

	firstIndex := make(map[int]int)

	for idx, value := range b.cells {
		if value < 0 {
			continue // ignore invalid negatives defensively
		}
		first, seen := firstIndex[value]
		if !seen {
			firstIndex[value] = idx
			continue
		}
		x, y := idx%b.size, idx/b.size
		fx, fy := first%b.size, first/b.size
		distance := abs(fx-x) + abs(fy-y)

		if distance == 1 {
			metrics.Status.Matched++
			continue
		}
		metrics.Status.Unmatched++
		metrics.TotalUnmatchedDistance += distance
		if distance > metrics.MaxUnmatchedDistance {
			metrics.MaxUnmatchedDistance = distance
		}
		if withMask {
			metrics.UnmatchedMask[first] = 1
			metrics.UnmatchedMask[idx] = 1
		}
	}

	return metrics
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// IsGoal reports whether every pair on the board is matched.
func (b *Board) IsGoal() bool {
	status := b.EvaluatePairs()
	return status.Unmatched == 0 && status.Matched*2 == len(b.cells)
}

// splitmix64 is the canonical 64-bit mixing finaliser (Steele, Lea &
// Flood 2014), used here to scramble each (label, index) contribution
// before folding it into the running hash.
func splitmix64(x uint64) uint64 {
	x += splitmix64Const
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

// Hash returns a deterministic, order-sensitive 64-bit digest of the
// board's cells: each (label, index) pair is mixed with splitmix64, then
// folded into the running hash with the classical combiner
// h ^= mixed + 0x9E3779B97F4A7C15 + (h<<6) + (h>>2). Collisions only cost
// extra search work; they are not a correctness hazard.
func (b *Board) Hash() uint64 {
	var h uint64
	for idx, value := range b.cells {
		mixed := splitmix64(uint64(value)*hashLabelMultiplier + uint64(idx))
		h ^= mixed + splitmix64Const + (h << 6) + (h >> 2)
	}
	return h
}

// Render returns a printable debug form: rows separated by newlines,
// cells within a row separated by single spaces.
func (b *Board) Render() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", b.cells[b.index(x, y)])
		}
	}
	return sb.String()
}

// Cells returns a copy of the board's row-major cell slice. Callers must
// not rely on mutating the returned slice to affect the board.
func (b *Board) Cells() []int {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return cells
}
