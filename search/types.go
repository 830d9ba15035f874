package search

import (
	"errors"
	"time"

	"github.com/proc36/pairfield/field"
)

// ErrInvalidConfig names a Config whose numeric fields cannot produce a
// usable search (non-positive base limits, empty rotation range, etc.). No
// function in this package validates a Config or returns this error.
var ErrInvalidConfig = errors.New("search: invalid configuration")

// Weights are the evaluator's tunable coefficients (spec §4.3 defaults).
type Weights struct {
	Match     float64
	Unmatched float64
	TotalDist float64
	MaxDist   float64
	Depth     float64
	Op        float64
	Epsilon   float64
}

// DefaultWeights returns the tuned defaults: w_match=11, w_unmatched=13,
// w_total_dist=0.26, w_max_dist=0.075, w_depth=0.025, w_op=0.05, eps=1e-3.
func DefaultWeights() Weights {
	return Weights{
		Match:     11,
		Unmatched: 13,
		TotalDist: 0.26,
		MaxDist:   0.075,
		Depth:     0.025,
		Op:        0.05,
		Epsilon:   1e-3,
	}
}

// solvedBonus dominates the score of any node whose board is a goal state.
const solvedBonus = 1e6

// Config is the base, board-size-independent configuration a Solver plans
// its per-iteration SearchLimits from. It is a plain struct (not a
// functional-options pipeline) because every field is a fixed tunable
// number, not an optional construction knob.
type Config struct {
	// RotationSizes lists the k values the move generator enumerates. A nil
	// or empty slice means "every k in [2, board size]".
	RotationSizes []int

	// Base limits, scaled per board size by PlanLimits.
	BeamWidth          int
	BeamWidthCap       int
	MaxDepth           int
	MaxNodes           int
	MaxChildrenPerNode int

	MaxIterations int
	TimeLimit     time.Duration
	UseGlobalHash bool

	Weights Weights

	ShakeMaxLength              int
	ShakeTimeRatio              float64
	ShakeAcceptEqualProbability float64
	MaxShakesPerRoot            int

	RefinementAttempts   int
	RefinementSample     int
	RefinementTimeBudget time.Duration

	// MaxParallelTasks is reserved, unused: spec §9 records it as a field
	// from a historical parallel-fan-out variant that the committed,
	// single-threaded driver never wires up.
	MaxParallelTasks int

	// Seed, if non-zero, makes a Solver's PRNG stream reproducible. Zero
	// means "seed from the clock at construction".
	Seed int64
}

// DefaultConfig returns the richest variant spec §9 commits to: a
// distance-aware evaluator, adaptive per-iteration limits, shake escape, and
// greedy refinement, all enabled.
func DefaultConfig() Config {
	return Config{
		RotationSizes:               nil,
		BeamWidth:                   24,
		BeamWidthCap:                4096,
		MaxDepth:                    40,
		MaxNodes:                    20000,
		MaxChildrenPerNode:          24,
		MaxIterations:               24,
		TimeLimit:                   10 * time.Second,
		UseGlobalHash:               true,
		Weights:                     DefaultWeights(),
		ShakeMaxLength:              6,
		ShakeTimeRatio:              0.85,
		ShakeAcceptEqualProbability: 0.2,
		MaxShakesPerRoot:            5,
		RefinementAttempts:          200,
		RefinementSample:            48,
		RefinementTimeBudget:        2 * time.Second,
		MaxParallelTasks:            0,
	}
}

// SearchLimits are the per-iteration caps the limits planner derives from a
// Config and a board size.
type SearchLimits struct {
	BeamWidth          int
	MaxDepth           int
	MaxNodes           int
	MaxChildrenPerNode int
}

// Node owns a board, the full operation path that produced it, its cached
// pair metrics, its depth, and its evaluator score. Nodes are ephemeral
// values; they never form a persistent tree, since each carries its own
// path instead of a parent link.
type Node struct {
	Board   *field.Board
	Ops     []field.Operation
	Metrics field.PairMetrics
	Depth   int
	Score   float64
}

// Solved reports whether Node's board has zero unmatched pairs.
func (n *Node) Solved() bool { return n.Metrics.Status.Unmatched == 0 }

// lexKey is the (unmatched, total+max distance) tuple the driver, shake,
// and refinement passes compare nodes by when picking the strictly better
// of two candidates.
func (n *Node) lexKey() (int, int) {
	return n.Metrics.Status.Unmatched, n.Metrics.TotalUnmatchedDistance + n.Metrics.MaxUnmatchedDistance
}

// strictlyBetter reports whether a's lexKey is strictly smaller than b's.
func strictlyBetter(a, b *Node) bool {
	au, ad := a.lexKey()
	bu, bd := b.lexKey()
	if au != bu {
		return au < bu
	}
	return ad < bd
}

// equalLex reports whether a and b have identical lexKeys.
func equalLex(a, b *Node) bool {
	au, ad := a.lexKey()
	bu, bd := b.lexKey()
	return au == bu && ad == bd
}

// Result is the mutable accumulator the driver returns: the best operation
// path found, its pair status, whether it is a goal state, the total
// explored-node counter, and elapsed wall-clock time.
type Result struct {
	Ops           []field.Operation
	Status        field.PairStatus
	Solved        bool
	ExploredNodes int
	ElapsedMs     int64
}
