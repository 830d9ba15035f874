// Package problem is the external collaborator spec'd alongside the search
// engine: it parses problem documents, serialises answer documents, parses
// ops.json documents for replay, and generates new random problem
// instances. None of it is on the core's hot path — it exists purely to
// turn bytes into a *field.Board and a []field.Operation back into bytes.
package problem
