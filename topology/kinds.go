package topology

import (
	"fmt"
	"strings"
)

// LocalKind names a per-vertex index.
type LocalKind int

const (
	Degree LocalKind = iota
	Closeness
	Betweenness
	Eccentricity
	Clustering
	PageRank
	Radiality
)

var localNames = [...]string{
	Degree:       "degree",
	Closeness:    "closeness",
	Betweenness:  "betweenness",
	Eccentricity: "eccentricity",
	Clustering:   "clustering",
	PageRank:     "pagerank",
	Radiality:    "radiality",
}

func (k LocalKind) String() string {
	if k >= 0 && int(k) < len(localNames) {
		return localNames[k]
	}

	return fmt.Sprintf("LocalKind(%d)", int(k))
}

// LocalKinds returns every local index in declaration order.
func LocalKinds() []LocalKind {
	out := make([]LocalKind, len(localNames))
	for i := range out {
		out[i] = LocalKind(i)
	}

	return out
}

// ParseLocalKind maps a name (case-insensitive) to a LocalKind.
func ParseLocalKind(s string) (LocalKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range localNames {
		if n == name {
			return LocalKind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseLocalKind(%q): %w", s, ErrUnknownKind)
}

// GlobalKind names a whole-graph index.
type GlobalKind int

const (
	Diameter GlobalKind = iota
	Radius
	AverageShortestPath
	Density
	AverageDegree
	AverageClustering
	Components
)

var globalNames = [...]string{
	Diameter:            "diameter",
	Radius:              "radius",
	AverageShortestPath: "average_shortest_path",
	Density:             "density",
	AverageDegree:       "average_degree",
	AverageClustering:   "average_clustering",
	Components:          "components",
}

func (k GlobalKind) String() string {
	if k >= 0 && int(k) < len(globalNames) {
		return globalNames[k]
	}

	return fmt.Sprintf("GlobalKind(%d)", int(k))
}

// GlobalKinds returns every global index in declaration order.
func GlobalKinds() []GlobalKind {
	out := make([]GlobalKind, len(globalNames))
	for i := range out {
		out[i] = GlobalKind(i)
	}

	return out
}

// ParseGlobalKind maps a name (case-insensitive) to a GlobalKind.
func ParseGlobalKind(s string) (GlobalKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range globalNames {
		if n == name {
			return GlobalKind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseGlobalKind(%q): %w", s, ErrUnknownKind)
}
