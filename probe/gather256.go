package probe

import "github.com/coregx/golomb/bitset"

// Gather256 computes word indices (distance >> 6) for all 8 lanes,
// gathers the corresponding 64-bit words, builds per-lane masks
// (1 << (distance & 63)), ANDs with the gathered words, and reports
// whether any lane is non-zero.
//
// Grounded on original_source/src/dup_avx2_gather.c: that implementation
// splits the 8-wide gather into two 4-wide AVX2 gathers (the instruction
// set's native width) and finishes with a scalar bit test over the
// gathered words, because AVX2 itself has no per-lane variable shift. This
// Go port keeps that two-phase shape (gather all words first, then test)
// even though both phases are plain Go loops here.
type Gather256 struct{}

// Name implements Backend.
func (Gather256) Name() string { return "gather256" }

// AnyDup implements Backend.
func (Gather256) AnyDup(bs *bitset.Bitset, distances [MaxLanes]uint32, n int) bool {
	words := bs.Words()

	// Phase 1: gather the 8 words (two 4-wide gathers in the original
	// AVX2 kernel; here a single pass since there is no 4-wide register
	// to split across).
	var gathered [MaxLanes]uint64
	for i := 0; i < n; i++ {
		wordIdx := distances[i] >> 6
		gathered[i] = words[wordIdx]
	}

	// Phase 2: per-lane mask + AND + scalar reduce, exactly as the AVX2
	// kernel's final loop does after its gather.
	for i := 0; i < n; i++ {
		bit := distances[i] & 63
		mask := uint64(1) << bit
		if gathered[i]&mask != 0 {
			return true
		}
	}
	return false
}
