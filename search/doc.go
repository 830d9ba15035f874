// Package search implements the iterative-deepening beam search that
// drives a Board toward a goal state: a move generator ranks candidate
// rotations by how much unmatched-pair mass they touch, an evaluator scores
// resulting nodes, a limits planner scales beam width/depth/node/child caps
// with board size, and the driver alternates beam iterations with a shake
// perturbation on plateau and a final greedy refinement pass.
//
// Solver owns every piece of mutable state a run needs: its PRNG, its
// visited-hash set, and its wall-clock deadline. Nothing here is safe for
// concurrent use by two goroutines against the same Solver.
package search
