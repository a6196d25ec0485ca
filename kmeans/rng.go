// SPDX-License-Identifier: MIT

package kmeans

import "math/rand"

const (
	// fallbackSeed stands in for Seed == 0.
	fallbackSeed int64 = 1
	// gamma is the SplitMix64 increment (2^64 / golden ratio).
	gamma uint64 = 0x9e3779b97f4a7c15
)

// restartRNG gives restart r its own generator. Streams depend only on
// (seed, r), never on scheduling.
func restartRNG(seed int64, r int) *rand.Rand {
	if seed == 0 {
		seed = fallbackSeed
	}
	stream := splitmix(uint64(seed) ^ (uint64(r) + gamma))

	return rand.New(rand.NewSource(int64(stream)))
}

// splitmix advances z by gamma and applies the SplitMix64 output mix.
func splitmix(z uint64) uint64 {
	z += gamma
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb

	return z ^ z>>31
}
