// Package core_test contains shared fixtures for smallworld/core tests.
package core_test

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexG = "G"
	VertexH = "H"

	VertexX = "X"

	VertexBase = "Base"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
)
