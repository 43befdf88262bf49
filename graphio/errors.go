package graphio

import "errors"

// Sentinel errors for graph text formats.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to a writer.
	ErrGraphNil = errors.New("graphio: graph is nil")

	// ErrEmptyDelimiter is returned by Read when the delimiter is "".
	ErrEmptyDelimiter = errors.New("graphio: delimiter is empty")

	// ErrMalformedLine is returned by ReadEdgePairs for a line that is not "u->v:".
	ErrMalformedLine = errors.New("graphio: malformed line")
)
