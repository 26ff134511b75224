// Package probe implements the duplicate-distance probe: the query "is any
// of these (up to 8) distances already marked in the bitset?", answered by
// one of several backends selected once at search start and held by the
// search Frame as a Backend value (Dispatch is not re-run per call).
package probe

import "github.com/coregx/golomb/bitset"

// MaxLanes is the fixed batch width every backend operates on (k = 8).
const MaxLanes = 8

// Backend answers AnyDup queries. All backends must return the identical
// boolean for any (bitset, distances, n) input.
type Backend interface {
	// AnyDup returns true iff at least one of distances[:n] indexes a set
	// bit in bs. n is in [0, MaxLanes]; lanes at index >= n are ignored.
	AnyDup(bs *bitset.Bitset, distances [MaxLanes]uint32, n int) bool
	// Name identifies the backend for diagnostics and tests.
	Name() string
}

// Scalar is the always-available backend: loop over distances, early-exit
// on first hit. Predictable, used as the baseline for the equivalence
// tests and as the fallback when no vector backend is available.
type Scalar struct{}

// Name implements Backend.
func (Scalar) Name() string { return "scalar" }

// AnyDup implements Backend.
func (Scalar) AnyDup(bs *bitset.Bitset, distances [MaxLanes]uint32, n int) bool {
	for i := 0; i < n; i++ {
		if bs.Test(int(distances[i])) {
			return true
		}
	}
	return false
}
