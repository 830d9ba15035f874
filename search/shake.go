package search

// shake attempts to escape a plateau by a bounded random walk from root,
// per spec §4.6. It returns the accepted node and true, or root and false
// if the walk is rejected.
func (s *Solver) shake(root *Node) (*Node, bool) {
	length := 1 + s.rng.Intn(maxInt(1, s.cfg.ShakeMaxLength))
	walkRNG := deriveRNG(s.rng, 0xA5A5A5A5)

	current := root
	for step := 0; step < length; step++ {
		if s.deadlineExceeded() {
			break
		}

		candidates := GenerateCandidates(s.cfg, current)
		if len(candidates) == 0 {
			break
		}
		pool := candidates
		if len(pool) > 64 {
			pool = pool[:64]
		}

		order := make([]int, len(pool))
		for i := range order {
			order[i] = i
		}
		shuffleInts(order, walkRNG)

		var child *Node
		for _, idx := range order {
			c, err := s.buildChild(current, pool[idx])
			if err == nil {
				child = c
				break
			}
		}
		if child == nil {
			continue
		}
		s.exploredTotal++
		current = child

		if current.Solved() {
			return current, true
		}
	}

	if strictlyBetter(current, root) {
		return current, true
	}
	if equalLex(current, root) && s.rng.Float64() < s.cfg.ShakeAcceptEqualProbability {
		return current, true
	}
	return root, false
}
