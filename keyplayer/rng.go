package keyplayer

import "golang.org/x/exp/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed uint64 = 1

// rngFromSeed returns a deterministic source: seed == 0 selects defaultRNGSeed.
func rngFromSeed(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id into an independent seed
// (SplitMix64 finaliser), so restart r of a search never replays restart 0.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
