// Package bfs computes unweighted (hop-count) shortest-path distances over
// the index adjacency of a core.Graph.
//
// What
//
//   - HopDistances(adj, source) is the kernel used by the engine package to
//     fill shortest-path matrices row by row from one shared adjacency
//     snapshot (core.Graph.AdjacencyIndex).
//   - Vertices outside the source's reach get Unreached.
//   - Directed graphs are followed along edge orientation only.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per source
//   - Memory: O(V)
package bfs
