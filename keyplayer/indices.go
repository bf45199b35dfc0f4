package keyplayer

import "gonum.org/v1/gonum/mat"

// Fragmentation returns F for a graph of n vertices whose connected components
// have the given sizes. Components are mutually unreachable and internally
// connected, so only their sizes matter. Graphs with fewer than two vertices
// have no reachable pair and score 1.
func Fragmentation(sizes []int, n int) float64 {
	if n < 2 {
		return 1
	}
	var reachable float64
	for _, s := range sizes {
		reachable += float64(s) * float64(s-1)
	}

	return 1 - reachable/(float64(n)*float64(n-1))
}

// DistanceFragmentation returns DF from the square all-pairs matrix dist.
// Undirected graphs sum each unordered pair once and double it; directed
// graphs sum every ordered pair. Entries at or above the sentinel n+1 add 0.
// Graphs with fewer than two vertices score 1.
func DistanceFragmentation(dist mat.Matrix, directed bool) float64 {
	n, _ := dist.Dims()
	if n < 2 {
		return 1
	}
	sentinel := float64(n + 1)
	var sum float64
	for i := 0; i < n; i++ {
		j0 := i + 1
		if directed {
			j0 = 0
		}
		for j := j0; j < n; j++ {
			if i == j {
				continue
			}
			if d := dist.At(i, j); d > 0 && d < sentinel {
				sum += 1 / d
			}
		}
	}
	if !directed {
		sum *= 2
	}

	return 1 - sum/(float64(n)*float64(n-1))
}

// MReachFromMatrix counts the vertices outside kp within m hops of some kp
// member. Row r of dist holds the distances from kp[r] to every vertex; the
// sentinel is the column count plus one. Each vertex is counted at most once:
// the row scan stops at the first hit.
func MReachFromMatrix(dist mat.Matrix, kp []int, m int) int {
	_, n := dist.Dims()
	sentinel := float64(n + 1)
	inKP := membership(kp, n)
	reach := 0
	for j := 0; j < n; j++ {
		if inKP[j] {
			continue
		}
		for r := range kp {
			if d := dist.At(r, j); d <= float64(m) && d < sentinel {
				reach++
				break
			}
		}
	}

	return reach
}

// DistanceReachFromMatrix returns DR with the same row layout as
// MReachFromMatrix: the sum over vertices outside kp of the reciprocal of
// their smallest distance to kp, divided by the vertex count. Vertices that
// no kp member reaches add 0.
func DistanceReachFromMatrix(dist mat.Matrix, kp []int) float64 {
	_, n := dist.Dims()
	if n == 0 {
		return 0
	}
	sentinel := float64(n + 1)
	inKP := membership(kp, n)
	var sum float64
	for j := 0; j < n; j++ {
		if inKP[j] {
			continue
		}
		best := sentinel
		for r := range kp {
			if d := dist.At(r, j); d < best {
				best = d
			}
		}
		if best > 0 && best < sentinel {
			sum += 1 / best
		}
	}

	return sum / float64(n)
}

func membership(kp []int, n int) []bool {
	in := make([]bool, n)
	for _, v := range kp {
		if v >= 0 && v < n {
			in[v] = true
		}
	}

	return in
}
