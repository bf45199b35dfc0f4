// Package pyntacle measures how networks fall apart and how far their
// vertices reach: key-player indices, sparseness of modules and classic
// topology indices over in-memory graphs.
//
// What is in the box?
//
//	core/         thread-safe Graph with dense vertex indices, copies and views
//	bfs/          breadth-first search and the hop-distance kernel
//	builder/      deterministic synthetic graphs (path, cycle, star, complete, random)
//	engine/       components, shortest-path matrices (bfs, floyd-warshall, parallel),
//	              centralities and Louvain communities on top of gonum
//	keyplayer/    F, dF, m-reach and dR with caching, plus a greedy kp-set search
//	sparseness/   completeness and compactness indices
//	modules/      per-module sparseness and kp-set search over a partition
//	topology/     cached local and global topology indices
//	graphio/      edge-list reading and writing
//	report/       text, TSV, CSV and YAML tables
//	cmd/pyntacle  the command-line front end
//
// Quick ASCII example:
//
//	A───B───C───D
//
// Removing B splits the path into {A} and {C, D}: F rises from 0 to 2/3,
// and B alone reaches A and C within one hop (m-reach 2).
//
// Every index is computed on vertex indices; names are resolved at the edges
// of the system (graphio, cmd/pyntacle).
package pyntacle
