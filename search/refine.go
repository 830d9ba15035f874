package search

import "time"

// refine runs the final greedy descent (spec §4.7): repeatedly sample the
// generator's top candidates from the current node, keep the best child
// that strictly improves the (unmatched, distance) lexKey, and commit. It
// stops on a solved state, on running out of attempts or its own time
// budget, or when no sampled candidate improves on the current node.
func (s *Solver) refine(start *Node) *Node {
	current := start
	deadline := time.Now().Add(s.cfg.RefinementTimeBudget)

	for attempt := 0; attempt < s.cfg.RefinementAttempts; attempt++ {
		if time.Now().After(deadline) || s.deadlineExceeded() {
			break
		}

		candidates := GenerateCandidates(s.cfg, current)
		if len(candidates) > s.cfg.RefinementSample {
			candidates = candidates[:s.cfg.RefinementSample]
		}

		var best *Node
		for _, op := range candidates {
			child, err := s.buildChild(current, op)
			if err != nil {
				continue
			}
			s.exploredTotal++
			if !strictlyBetter(child, current) {
				continue
			}
			if best == nil || strictlyBetter(child, best) {
				best = child
			}
		}

		if best == nil {
			break
		}
		current = best
		if current.Solved() {
			break
		}
	}

	return current
}
