// Command solve reads a problem document and writes an answer document
// holding the operations that align its pairs, or the best-effort result
// reached before the search deadline.
//
// Usage:
//
//	solve <problem.json> [out.json]
//
// Output defaults to stdout when out.json is omitted.
package main

import (
	"os"

	"github.com/proc36/pairfield/problem"
	"github.com/proc36/pairfield/search"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if len(os.Args) < 2 {
		log.Error("usage: solve <problem.json> [out.json]")
		os.Exit(1)
	}
	inputPath := os.Args[1]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Errorf("reading %s: %v", inputPath, err)
		os.Exit(1)
	}

	doc, err := problem.ParseDocument(data)
	if err != nil {
		log.Errorf("parsing %s: %v", inputPath, err)
		os.Exit(1)
	}

	board, err := doc.Board()
	if err != nil {
		log.Errorf("building board from %s: %v", inputPath, err)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{"size": doc.Size}).Info("solving")

	solver := search.New(search.DefaultConfig())
	result, err := solver.Solve(board)
	if err != nil {
		log.Errorf("solving %s: %v", inputPath, err)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"solved":    result.Solved,
		"matched":   result.Status.Matched,
		"unmatched": result.Status.Unmatched,
		"explored":  result.ExploredNodes,
		"ops":       len(result.Ops),
		"elapsedMs": result.ElapsedMs,
	}).Info("search finished")
	if !result.Solved {
		log.Warn("search ended before every pair was aligned; emitting best-effort ops")
	}

	out := problem.SerializeAnswer(result.Ops)

	if len(os.Args) >= 3 {
		outputPath := os.Args[2]
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			log.Errorf("writing %s: %v", outputPath, err)
			os.Exit(1)
		}
		return
	}

	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
