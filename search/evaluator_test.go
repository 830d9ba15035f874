package search_test

import (
	"math/rand"
	"testing"

	"github.com/proc36/pairfield/field"
	"github.com/proc36/pairfield/search"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_SolvedBonusDominates(t *testing.T) {
	w := search.DefaultWeights()
	rng := rand.New(rand.NewSource(1))

	solved := field.PairMetrics{Status: field.PairStatus{Matched: 8, Unmatched: 0}}
	unsolved := field.PairMetrics{Status: field.PairStatus{Matched: 0, Unmatched: 8}, TotalUnmatchedDistance: 100, MaxUnmatchedDistance: 20}

	solvedScore := search.Evaluate(w, solved, 50, 50, rng)
	unsolvedScore := search.Evaluate(w, unsolved, 0, 0, rng)

	assert.Greater(t, solvedScore, unsolvedScore)
}

func TestEvaluate_HigherMatchedIsBetter(t *testing.T) {
	w := search.DefaultWeights()

	better := field.PairMetrics{Status: field.PairStatus{Matched: 5, Unmatched: 3}}
	worse := field.PairMetrics{Status: field.PairStatus{Matched: 3, Unmatched: 5}}

	// Same depth/ops/rng state so only the metrics differ.
	rng1 := rand.New(rand.NewSource(7))
	rng2 := rand.New(rand.NewSource(7))
	assert.Greater(t, search.Evaluate(w, better, 3, 3, rng1), search.Evaluate(w, worse, 3, 3, rng2))
}

func TestEvaluate_DeeperPathScoresLower(t *testing.T) {
	w := search.DefaultWeights()
	metrics := field.PairMetrics{Status: field.PairStatus{Matched: 2, Unmatched: 2}}

	shallow := search.Evaluate(w, metrics, 1, 1, rand.New(rand.NewSource(3)))
	deep := search.Evaluate(w, metrics, 50, 50, rand.New(rand.NewSource(3)))
	assert.Greater(t, shallow, deep)
}
