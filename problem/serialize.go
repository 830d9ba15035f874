package problem

import (
	"fmt"
	"strings"

	"github.com/proc36/pairfield/field"
)

// SerializeAnswer renders ops as the answer document spec §6 defines:
//
//	{
//	  "ops": [
//	    {"x":X,"y":Y,"n":K},
//	    ...
//	  ]
//	}
//
// Entries are comma-separated, one per line, two-space indented relative to
// "ops"; the trailing comma is omitted on the last entry. An empty slice
// renders as the single line `{ "ops": [] }` with no inner newline.
func SerializeAnswer(ops []field.Operation) []byte {
	if len(ops) == 0 {
		return []byte(`{ "ops": [] }`)
	}

	var sb strings.Builder
	sb.WriteString("{\n  \"ops\": [\n")
	for i, op := range ops {
		fmt.Fprintf(&sb, "    {\"x\":%d,\"y\":%d,\"n\":%d}", op.X, op.Y, op.K)
		if i != len(ops)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ]\n}")
	return []byte(sb.String())
}
