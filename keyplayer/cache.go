package keyplayer

import (
	"sort"
	"strconv"
	"strings"
)

// cachedFloat is a float result with a presence flag.
type cachedFloat struct {
	value float64
	ok    bool
}

// cache holds the indices computed for the current graph.
type cache struct {
	f      cachedFloat
	df     cachedFloat
	mreach map[string]int
	dr     map[string]float64
}

func newCache() *cache {
	return &cache{
		mreach: make(map[string]int),
		dr:     make(map[string]float64),
	}
}

// kpKey returns the canonical key of a kp-set: its sorted members joined by
// commas, so permutations of one set share an entry.
func kpKey(kp []int) string {
	s := append([]int(nil), kp...)
	sort.Ints(s)
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// mreachKey extends kpKey with the hop bound.
func mreachKey(m int, kp []int) string {
	return strconv.Itoa(m) + "|" + kpKey(kp)
}
