// Package keyplayer computes key-player indices of a graph: how fragmented it
// is (F, DF) and how far a chosen vertex subset, the kp-set, reaches into the
// rest of it (m-reach, distance-weighted reach DR).
//
// Definitions, for a graph of N vertices:
//
//	F      = 1 − Σ_k |S_k|(|S_k|−1) / (N(N−1))   over connected components S_k
//	DF     = 1 − 2·Σ_{i<j} 1/d(i,j) / (N(N−1))   (ordered pairs for directed graphs)
//	MReach = |{ j ∉ K : min_{k∈K} d(k,j) ≤ m }|
//	DR     = Σ_{j∉K} 1/min_{k∈K} d(k,j) / N
//
// Distances come from a Topology collaborator (engine.Engine by default) that
// marks unreachable pairs with the sentinel N+1. Sentinel pairs contribute
// nothing to DF, MReach or DR.
//
// Engine holds one graph and caches every computed index: F and DF once,
// MReach per (m, kp-set) and DR per kp-set, with kp-sets compared as sets.
// A call with recalculate=false returns the cached value without touching the
// collaborator; recalculate=true or Invalidate forces recomputation, and
// SetGraph discards the cache. An Engine is not safe for concurrent use.
//
// GreedyOptimize searches for the kp-set of a given size that maximises one of
// the indices: F and DF on the graph with the kp-set removed (KPP-NEG),
// MReach and DR on the graph itself (KPP-POS).
//
// Errors:
//
//	ErrGraphSize       - graph nil, without vertices, or without edges.
//	ErrInvalidArgument - kp-set index out of range or repeated, empty kp-set,
//	                     m < 1, or k outside [1, N).
package keyplayer
