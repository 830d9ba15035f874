package search

import "math"

// floorDepthSmallBoard, floorNodesSmallBoard, and floorChildrenSmallBoard are
// the minimum limits spec §4.4 enforces for boards with N <= 8, where the
// power-law scaling alone would otherwise under-provision the search.
const (
	smallBoardThreshold     = 8
	floorDepthSmallBoard    = 48
	floorNodesSmallBoard    = 280_000
	floorChildrenSmallBoard = 64
)

// PlanLimits derives the base SearchLimits for a board of the given size
// from cfg, per spec §4.4: s = max(1, size/8), then each base limit is
// scaled by a power of s and rounded up. Boards with size <= 8 additionally
// receive absolute floors on depth, nodes, and children.
func PlanLimits(cfg Config, size int) SearchLimits {
	s := float64(size) / 8.0
	if s < 1 {
		s = 1
	}

	beamWidth := int(math.Ceil(float64(cfg.BeamWidth) * math.Pow(s, 1.35)))
	if cfg.BeamWidthCap > 0 && beamWidth > cfg.BeamWidthCap {
		beamWidth = cfg.BeamWidthCap
	}
	if beamWidth < 1 {
		beamWidth = 1
	}

	maxDepth := int(math.Ceil(float64(cfg.MaxDepth) * math.Pow(s, 1.25)))
	maxNodes := int(math.Ceil(float64(cfg.MaxNodes) * math.Pow(s, 3.0)))
	maxChildren := int(math.Ceil(float64(cfg.MaxChildrenPerNode) * math.Pow(s, 1.1)))

	if size <= smallBoardThreshold {
		if maxDepth < floorDepthSmallBoard {
			maxDepth = floorDepthSmallBoard
		}
		if maxNodes < floorNodesSmallBoard {
			maxNodes = floorNodesSmallBoard
		}
		if maxChildren < floorChildrenSmallBoard {
			maxChildren = floorChildrenSmallBoard
		}
	}

	return SearchLimits{
		BeamWidth:          beamWidth,
		MaxDepth:           maxDepth,
		MaxNodes:           maxNodes,
		MaxChildrenPerNode: maxChildren,
	}
}

// widenForIteration applies the cross-iteration widening spec §4.4
// describes: on iteration i>0, beam width grows by a factor of
// (1+0.45i), node budget by (1+0.6i), depth by +10i, and the per-parent
// child cap by +max(8, 5i).
func widenForIteration(base SearchLimits, iteration int) SearchLimits {
	if iteration <= 0 {
		return base
	}
	i := float64(iteration)

	childBump := int(math.Ceil(5 * i))
	if childBump < 8 {
		childBump = 8
	}

	return SearchLimits{
		BeamWidth:          int(math.Ceil(float64(base.BeamWidth) * (1 + 0.45*i))),
		MaxDepth:           base.MaxDepth + int(math.Ceil(10*i)),
		MaxNodes:           int(math.Ceil(float64(base.MaxNodes) * (1 + 0.6*i))),
		MaxChildrenPerNode: base.MaxChildrenPerNode + childBump,
	}
}

// perParentChildCap returns the adaptive cap on how many children a single
// parent node may contribute to the next layer, per spec §4.5:
// min(children, base_cap + 2*unmatched + max(1, beam_width/8), 1.5*beam_width + 32).
func perParentChildCap(limits SearchLimits, unmatched int) int {
	dynamic := limits.MaxChildrenPerNode + 2*unmatched + maxInt(1, limits.BeamWidth/8)
	hardCap := int(math.Ceil(1.5*float64(limits.BeamWidth))) + 32
	return minInt(dynamic, hardCap)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
