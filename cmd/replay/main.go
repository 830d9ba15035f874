// Command replay loads a problem document, reports its pair status,
// optionally applies a sequence of operations from an ops document, and
// reports the resulting status — mirroring the project's original local
// runner tool.
//
// Usage:
//
//	replay <problem.json> [ops.json]
package main

import (
	"fmt"
	"os"

	"github.com/proc36/pairfield/field"
	"github.com/proc36/pairfield/problem"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if len(os.Args) < 2 {
		log.Error("usage: replay <problem.json> [ops.json]")
		os.Exit(1)
	}

	problemData, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Errorf("reading %s: %v", os.Args[1], err)
		os.Exit(1)
	}

	doc, err := problem.ParseDocument(problemData)
	if err != nil {
		log.Errorf("parsing %s: %v", os.Args[1], err)
		os.Exit(1)
	}

	board, err := doc.Board()
	if err != nil {
		log.Errorf("building board from %s: %v", os.Args[1], err)
		os.Exit(1)
	}

	fmt.Println("initial field:")
	fmt.Println(board.Render())
	reportStatus(board)

	if len(os.Args) < 3 {
		return
	}

	opsData, err := os.ReadFile(os.Args[2])
	if err != nil {
		log.Errorf("reading %s: %v", os.Args[2], err)
		os.Exit(1)
	}

	ops, err := problem.ParseOperations(opsData)
	if err != nil {
		log.Errorf("parsing %s: %v", os.Args[2], err)
		os.Exit(1)
	}

	for i, op := range ops {
		if err := board.Apply(op); err != nil {
			log.Errorf("applying op %d (%+v): %v", i, op, err)
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Println("final field:")
	fmt.Println(board.Render())
	reportStatus(board)
}

func reportStatus(board *field.Board) {
	status := board.EvaluatePairs()
	fmt.Printf("matched: %d, unmatched: %d\n", status.Matched, status.Unmatched)
	if status.Unmatched == 0 {
		fmt.Println("All pairs aligned.")
	} else {
		fmt.Println("Pairs still unmatched.")
	}
}
