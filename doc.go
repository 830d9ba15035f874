// Package pairfield solves the pair-matching rotation puzzle: given an N×N
// board whose cells hold integer labels, each appearing exactly twice, find
// a sequence of square sub-grid rotations that brings every label pair to
// orthogonal adjacency.
//
// The repository is organized under four subpackages:
//
//	field/   — Board, Operation, pair-detection and hashing primitives
//	matrix/  — a trimmed Dense accumulator used for prefix-sum move ordering
//	search/  — iterative-deepening beam search: move generator, evaluator,
//	           limits planner, shake perturbation, greedy refinement
//	problem/ — problem-document parsing, answer serialisation, random
//	           problem generation
//
// and three command-line programs under cmd/: solve, generate, and replay.
//
// A minimal solve:
//
//	b, _ := field.New(2, []int{0, 1, 0, 1})
//	solver := search.New(search.DefaultConfig())
//	result, _ := solver.Solve(b)
//	fmt.Println(result.Solved, result.Ops)
package pairfield
