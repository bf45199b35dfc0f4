// Package topology computes per-vertex (local) and whole-graph (global)
// topology indices on top of the engine collaborator, caching each index
// until it is recalculated.
//
// Local indices: degree, closeness, betweenness, eccentricity, clustering
// coefficient, PageRank and radiality. Global indices: diameter, radius,
// average shortest path, density, average degree, average clustering and
// component count.
//
// Distances follow the engine's hop-count convention; unreachable pairs are
// ignored by every index.
package topology
