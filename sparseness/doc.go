// Package sparseness computes completeness and compactness indices: how close
// a graph is to complete, from its vertex count N, edge count E and
// directedness alone.
//
//	CompletenessNaive = ones / zeros      ones = E (2E undirected), zeros = N(N−1) − ones (halved if directed)
//	Completeness      = (N²/z − 1)/(N−1)  z = zero entries of the adjacency matrix
//	Compactness       = (N²/E' − 1)(1 − 1/N)           E' = 2E undirected, E directed
//	corrected         = 1/(N²/E' − 1) · 1/(1 − 1/N)
//
// Completeness indices return exactly 1 for complete graphs. Every value is
// rounded to 5 decimal digits; that precision is part of the contract since
// reports must be reproducible.
package sparseness
