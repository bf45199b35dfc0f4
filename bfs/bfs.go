package bfs

// Unreached marks a vertex the search never reached.
const Unreached = -1

// HopDistances returns the hop distance from source to every vertex of the
// adjacency snapshot adj (as produced by core.Graph.AdjacencyIndex), with
// Unreached for vertices outside the source's reach. It performs no
// validation and takes no locks; callers sharing one snapshot across many
// sources avoid re-reading the graph per source.
// Complexity: O(V + E).
func HopDistances(adj [][]int, source int) []int {
	dist := make([]int, len(adj))
	for i := range dist {
		dist[i] = Unreached
	}
	dist[source] = 0
	queue := make([]int, 0, len(adj))
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range adj[u] {
			if dist[v] == Unreached {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}
