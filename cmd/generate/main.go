// Command generate writes a new random problem document of the requested
// size.
//
// Usage:
//
//	generate <size> <out.json> [seed]
//
// size must be even and in [4, 24]. seed, if given, makes the output
// reproducible; otherwise it is drawn from the clock.
package main

import (
	"os"
	"strconv"

	"github.com/proc36/pairfield/problem"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if len(os.Args) < 3 {
		log.Error("usage: generate <size> <out.json> [seed]")
		os.Exit(1)
	}

	size, err := strconv.Atoi(os.Args[1])
	if err != nil {
		log.Errorf("parsing size %q: %v", os.Args[1], err)
		os.Exit(1)
	}
	outputPath := os.Args[2]

	var opts []problem.GenerateOption
	if len(os.Args) >= 4 {
		seed, err := strconv.ParseInt(os.Args[3], 10, 64)
		if err != nil {
			log.Errorf("parsing seed %q: %v", os.Args[3], err)
			os.Exit(1)
		}
		opts = append(opts, problem.WithSeed(seed))
	}

	out, err := problem.Generate(size, opts...)
	if err != nil {
		log.Errorf("generating size=%d: %v", size, err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		log.Errorf("writing %s: %v", outputPath, err)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{"size": size, "out": outputPath}).Info("generated problem")
}
