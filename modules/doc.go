// Package modules applies sparseness and key-player analyses to every module
// of a partitioned graph.
//
// A Partition lists vertex-index groups; each group becomes a Module holding
// its original indices and the induced subgraph, materialised once by New.
// Modules smaller than WithMinSize are dropped; module IDs are the group's
// position in the partition, so they stay stable when others are dropped.
//
// Sparseness computes one sparseness.Measure per module and stores it for
// Result. OptimizeKP fans a KPOptimizer (keyplayer.Greedy) out over modules
// and maps each kp-set back to the original vertex indices.
package modules
