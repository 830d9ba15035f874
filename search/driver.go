package search

import (
	"math/rand"
	"sort"
	"time"

	"github.com/proc36/pairfield/field"
)

// outcomeKind classifies how a single beam iteration ended. Go has no
// labelled-jump idiom for breaking nested loops on a structured condition
// (spec §9), so runIteration returns one of these instead of signalling via
// control flow.
type outcomeKind int

const (
	outcomeContinued outcomeKind = iota
	outcomeSolved
	outcomeHitLimit
)

// iterationOutcome is runIteration's structured result.
type iterationOutcome struct {
	kind         outcomeKind
	solvedNode   *Node
	bestNode     *Node // highest score seen this iteration
	bestUnsolved *Node // smallest (unmatched, distance) lexKey seen this iteration
}

// Solver owns a search run's mutable state: its PRNG, its visited-hash set,
// and its wall-clock deadline. Construct one per Solve call (or reuse via
// WithSeed for reproducible back-to-back runs) — never share a Solver
// across goroutines.
type Solver struct {
	cfg Config
	rng *rand.Rand

	visited       map[uint64]struct{}
	useDeadline   bool
	deadline      time.Time
	exploredTotal int
}

// New constructs a Solver. Its PRNG is seeded from cfg.Seed if non-zero,
// else from a high-resolution clock sample, matching spec §5.
func New(cfg Config) *Solver {
	return &Solver{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seedFromConfigOrClock(cfg))),
	}
}

// WithSeed reseeds s's PRNG, for reproducible tests.
func (s *Solver) WithSeed(seed int64) *Solver {
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

// deadlineExceeded polls the monotonic clock. Called at the top of each
// iteration, parent expansion, child expansion, shake step, and refinement
// step, per spec §5's suspension-point list.
func (s *Solver) deadlineExceeded() bool {
	return s.useDeadline && time.Now().After(s.deadline)
}

func (s *Solver) newNode(board *field.Board, ops []field.Operation, depth int) *Node {
	metrics := board.EvaluatePairMetrics()
	n := &Node{Board: board, Ops: ops, Metrics: metrics, Depth: depth}
	n.Score = Evaluate(s.cfg.Weights, metrics, depth, len(ops), s.rng)
	return n
}

// buildChild applies op to parent's board and returns the resulting Node.
func (s *Solver) buildChild(parent *Node, op field.Operation) (*Node, error) {
	board, err := parent.Board.Applied(op)
	if err != nil {
		return nil, err
	}
	ops := make([]field.Operation, len(parent.Ops)+1)
	copy(ops, parent.Ops)
	ops[len(parent.Ops)] = op
	return s.newNode(board, ops, parent.Depth+1), nil
}

// resetVisitedIfFull clears the visited set once it exceeds 4x the
// iteration's node cap, sacrificing dedup completeness for bounded memory
// (spec §9).
func (s *Solver) resetVisitedIfFull(nodeCap int) {
	if len(s.visited) > 4*nodeCap {
		s.visited = make(map[uint64]struct{})
	}
}

// seenOrRecord reports whether h has already been recorded, recording it
// if not. Always reports false (never seen) when global hashing is off.
func (s *Solver) seenOrRecord(h uint64) bool {
	if !s.cfg.UseGlobalHash {
		return false
	}
	if _, ok := s.visited[h]; ok {
		return true
	}
	s.visited[h] = struct{}{}
	return false
}

// Solve runs the full iteration loop (spec §4.5) from initial and returns a
// best-effort Result whose Solved flag may be false. The returned error is
// always nil: field.New already rejects malformed boards, and a child whose
// operation fails to apply is skipped rather than reported.
func (s *Solver) Solve(initial *field.Board) (Result, error) {
	start := time.Now()
	if s.cfg.TimeLimit > 0 {
		s.useDeadline = true
		s.deadline = start.Add(s.cfg.TimeLimit)
	}
	s.visited = make(map[uint64]struct{})
	s.exploredTotal = 0

	root := s.newNode(initial.Clone(), nil, 0)
	if root.Solved() {
		return Result{Status: root.Metrics.Status, Solved: true, ElapsedMs: elapsedMs(start)}, nil
	}

	currentRoot := root
	shakesUsed := 0

	for iteration := 0; iteration < s.cfg.MaxIterations && !s.deadlineExceeded(); {
		limits := widenForIteration(PlanLimits(s.cfg, initial.Size()), iteration)
		outcome := s.runIteration(currentRoot, limits)

		if outcome.kind == outcomeSolved {
			return Result{
				Ops:           outcome.solvedNode.Ops,
				Status:        outcome.solvedNode.Metrics.Status,
				Solved:        true,
				ExploredNodes: s.exploredTotal,
				ElapsedMs:     elapsedMs(start),
			}, nil
		}

		if outcome.bestUnsolved == nil {
			break // no viable partial progress this iteration
		}

		if strictlyBetter(outcome.bestUnsolved, currentRoot) {
			currentRoot = outcome.bestUnsolved
			shakesUsed = 0
			iteration++
			continue
		}

		if outcome.kind == outcomeHitLimit {
			break
		}

		withinShakeWindow := time.Since(start) < time.Duration(float64(s.cfg.TimeLimit)*s.cfg.ShakeTimeRatio)
		if shakesUsed < s.cfg.MaxShakesPerRoot && withinShakeWindow && !s.deadlineExceeded() {
			shakesUsed++
			shaken, accepted := s.shake(currentRoot)
			if accepted {
				currentRoot = shaken
				if currentRoot.Solved() {
					return Result{
						Ops:           currentRoot.Ops,
						Status:        currentRoot.Metrics.Status,
						Solved:        true,
						ExploredNodes: s.exploredTotal,
						ElapsedMs:     elapsedMs(start),
					}, nil
				}
				continue
			}
			if iteration+1 < s.cfg.MaxIterations {
				iteration++
				continue
			}
			break
		}
		break
	}

	if !currentRoot.Solved() && !s.deadlineExceeded() {
		refined := s.refine(currentRoot)
		if strictlyBetter(refined, currentRoot) || refined.Solved() {
			currentRoot = refined
		}
	}

	return Result{
		Ops:           currentRoot.Ops,
		Status:        currentRoot.Metrics.Status,
		Solved:        currentRoot.Solved(),
		ExploredNodes: s.exploredTotal,
		ElapsedMs:     elapsedMs(start),
	}, nil
}

// runIteration runs a single beam-search sweep from root under limits, per
// spec §4.5's "single iteration" algorithm.
func (s *Solver) runIteration(root *Node, limits SearchLimits) iterationOutcome {
	outcome := iterationOutcome{bestNode: root}
	if !root.Solved() {
		outcome.bestUnsolved = root
	}

	currentLayer := []*Node{root}
	exploredThisIteration := 0

	for depth := 0; depth < limits.MaxDepth && len(currentLayer) > 0; depth++ {
		if s.deadlineExceeded() {
			outcome.kind = outcomeHitLimit
			return outcome
		}

		var nextLayer []*Node
		for _, parent := range currentLayer {
			if s.deadlineExceeded() || exploredThisIteration >= limits.MaxNodes {
				outcome.kind = outcomeHitLimit
				return outcome
			}

			candidates := GenerateCandidates(s.cfg, parent)
			childCap := perParentChildCap(limits, parent.Metrics.Status.Unmatched)

			children := make([]*Node, 0, minInt(len(candidates), childCap))
			for _, op := range candidates {
				if s.deadlineExceeded() || exploredThisIteration >= limits.MaxNodes {
					outcome.kind = outcomeHitLimit
					return outcome
				}

				child, err := s.buildChild(parent, op)
				if err != nil {
					continue
				}
				exploredThisIteration++
				s.exploredTotal++

				if s.cfg.UseGlobalHash {
					s.resetVisitedIfFull(limits.MaxNodes)
					if s.seenOrRecord(child.Board.Hash()) {
						continue
					}
				}

				if child.Score > outcome.bestNode.Score {
					outcome.bestNode = child
				}
				if outcome.bestUnsolved == nil || strictlyBetter(child, outcome.bestUnsolved) {
					outcome.bestUnsolved = child
				}

				if child.Solved() {
					outcome.kind = outcomeSolved
					outcome.solvedNode = child
					return outcome
				}

				children = append(children, child)
			}

			children = topKByScore(children, childCap)
			nextLayer = append(nextLayer, children...)
		}

		currentLayer = topKByScore(nextLayer, limits.BeamWidth)
	}

	return outcome
}

// topKByScore sorts nodes in place by descending score and returns the
// highest-scoring k (or all of them, if fewer than k).
func topKByScore(nodes []*Node, k int) []*Node {
	if k < 0 {
		k = 0
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Score > nodes[j].Score })
	if len(nodes) > k {
		nodes = nodes[:k]
	}
	return nodes
}

func elapsedMs(start time.Time) int64 { return time.Since(start).Milliseconds() }
