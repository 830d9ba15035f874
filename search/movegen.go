package search

import (
	"sort"

	"github.com/proc36/pairfield/field"
	"github.com/proc36/pairfield/matrix"
)

// rankedOp pairs a candidate operation with its prefix-sum impact, so the
// generator can sort by impact while keeping the op it belongs to.
type rankedOp struct {
	op     field.Operation
	impact float64
}

// GenerateCandidates enumerates and orders the candidate operations for a
// node, per spec §4.2.
//
// Enumeration: every in-bounds (x, y, k) for k in cfg.RotationSizes (or
// every k in [2, size] if unset).
//
// Filtering: an op identical to node's most recent op is skipped outright
// (prevents trivial re-rotation). If the node has unmatched pairs and a
// mask of the right length, each remaining op's impact is the sum of the
// unmatched-cell mask over its k×k footprint (via a 2-D prefix sum);
// zero-impact ops are dropped and the rest are sorted by impact descending
// (stable). With no usable mask, every op keeps enumeration order and an
// impact of 1.
func GenerateCandidates(cfg Config, node *Node) []field.Operation {
	size := node.Board.Size()
	sizes := cfg.RotationSizes
	if len(sizes) == 0 {
		sizes = make([]int, 0, size-1)
		for k := 2; k <= size; k++ {
			sizes = append(sizes, k)
		}
	}

	var previous field.Operation
	hasPrevious := len(node.Ops) > 0
	if hasPrevious {
		previous = node.Ops[len(node.Ops)-1]
	}

	ranked := make([]rankedOp, 0, size*size*len(sizes))
	for _, k := range sizes {
		if k < 2 || k > size {
			continue
		}
		for y := 0; y+k <= size; y++ {
			for x := 0; x+k <= size; x++ {
				op := field.Operation{X: x, Y: y, K: k}
				if hasPrevious && op.Equal(previous) {
					continue
				}
				ranked = append(ranked, rankedOp{op: op, impact: 1})
			}
		}
	}

	mask := node.Metrics.UnmatchedMask
	if node.Metrics.Status.Unmatched > 0 && len(mask) == size*size {
		ranked = rankByImpact(ranked, mask, size)
	}

	ops := make([]field.Operation, len(ranked))
	for i, r := range ranked {
		ops[i] = r.op
	}
	return ops
}

// rankByImpact computes each candidate's footprint sum over mask via a
// prefix-sum table, drops zero-impact candidates, and stable-sorts the
// survivors by descending impact.
func rankByImpact(ranked []rankedOp, mask []byte, size int) []rankedOp {
	grid, _ := matrix.NewDense(size, size)
	for idx, m := range mask {
		if m != 0 {
			_ = grid.Set(idx/size, idx%size, 1)
		}
	}
	prefix := matrix.PrefixSumOf(grid)

	survivors := make([]rankedOp, 0, len(ranked))
	for _, r := range ranked {
		sum, err := matrix.RegionSum(prefix, r.op.Y, r.op.X, r.op.Y+r.op.K-1, r.op.X+r.op.K-1)
		if err != nil || sum <= 0 {
			continue
		}
		r.impact = sum
		survivors = append(survivors, r)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].impact > survivors[j].impact
	})

	return survivors
}
