// Package engine is the graph-engine collaborator behind pyntacle's indices.
//
// It answers the structural questions the key-player, sparseness and topology
// engines ask of a core.Graph:
//
//   - connected components (weakly connected for directed graphs),
//   - hop-count shortest-path matrices, all-pairs or from a source subset,
//   - degree, eccentricity, closeness, betweenness and PageRank values,
//   - Louvain community partitions.
//
// Shortest-path matrices never hold infinity: a pair with no path carries the
// sentinel Unreachable(n) = n+1, where n is the vertex count, so callers can
// detect and zero such pairs with plain arithmetic.
//
// Three interchangeable shortest-path modes are available:
//
//	ModeBFS           one breadth-first sweep per source row (default)
//	ModeFloydWarshall gonum's all-pairs Floyd–Warshall
//	ModeParallel      BFS rows fanned out over a bounded worker group
//
// All modes return identical matrices; the choice is a cost trade-off only.
//
// Structural analyses that gonum already provides (components, Floyd–Warshall,
// farness, betweenness, PageRank, Louvain) are delegated to it through an
// index-preserving adapter: gonum node i is core vertex i.
package engine
