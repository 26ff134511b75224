package probe

import "github.com/coregx/golomb/bitset"

// Gather512 performs an 8-wide gather with variable per-lane shift,
// ending in a vector-nonzero test rather than a per-lane early exit.
//
// Grounded on original_source/src/dup_avx512.c: AVX-512 has a true
// per-lane variable shift (VPSLLVQ), so that kernel builds all 8 masks in
// one vector op and reduces with a single "any lane non-zero" test instead
// of a scalar early-exit loop. This Go port mirrors that reduction shape
// (build all 8 dup flags, OR them together, test once) even though the
// "vector op" here is an unrolled Go loop.
type Gather512 struct{}

// Name implements Backend.
func (Gather512) Name() string { return "gather512" }

// AnyDup implements Backend.
func (Gather512) AnyDup(bs *bitset.Bitset, distances [MaxLanes]uint32, n int) bool {
	words := bs.Words()

	var dup uint64
	for i := 0; i < n; i++ {
		wordIdx := distances[i] >> 6
		bitOff := distances[i] & 63
		mask := uint64(1) << bitOff
		dup |= words[wordIdx] & mask
	}
	return dup != 0
}
