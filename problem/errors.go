package problem

import "errors"

// Sentinel errors for the problem package.
var (
	// ErrInvalidInput indicates a malformed input document: a missing key,
	// unbalanced brackets, or an entity count mismatched against size.
	ErrInvalidInput = errors.New("problem: invalid input document")
	// ErrIoFailure indicates a file open, read, or write failure.
	ErrIoFailure = errors.New("problem: I/O failure")
)
