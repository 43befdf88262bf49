// Package graphio reads and writes the plain-text graph formats of smallworld.
//
// Formats:
//
//	Delimited adjacency (Read):
//	  A,B,C          // edges A–B and A–C, delimiter ","
//	  H              // a lone token adds vertex H
//
//	Adjacency dump (WriteAdjacency):
//	  A: B C         // one line per vertex, neighbors space-separated,
//	                 // every label followed by a space
//
//	Edge pairs (WriteEdgePairs / ReadEdgePairs):
//	  A->B:          // one line per edge u–v with u < v
//
// The edge-pair dump is not DOT: it has no header or braces and is meant as
// raw input for external tooling. Self-loops have no u < v ordering and are
// not written.
//
// Lines are numbered from 1 in every error returned by a reader.
package graphio
