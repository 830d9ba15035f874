package search

import (
	"math/rand"

	"github.com/proc36/pairfield/field"
)

// Evaluate computes a node's scalar score from its weights, metrics, depth,
// and path length, per spec §4.3:
//
//	score = w_match*matched - w_unmatched*unmatched - w_total_dist*totalDist
//	      - w_max_dist*maxDist - w_depth*depth - w_op*len(ops)
//	      + eps*U(0,1) + (1e6 if unmatched==0 else 0)
//
// Higher is better. rng supplies the tie-breaking jitter; it must be the
// Solver's own owned stream, never a process-global source.
func Evaluate(w Weights, metrics field.PairMetrics, depth, opsLen int, rng *rand.Rand) float64 {
	score := w.Match*float64(metrics.Status.Matched) -
		w.Unmatched*float64(metrics.Status.Unmatched) -
		w.TotalDist*float64(metrics.TotalUnmatchedDistance) -
		w.MaxDist*float64(metrics.MaxUnmatchedDistance) -
		w.Depth*float64(depth) -
		w.Op*float64(opsLen)

	score += w.Epsilon * rng.Float64()

	if metrics.Status.Unmatched == 0 {
		score += solvedBonus
	}

	return score
}
