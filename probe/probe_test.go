package probe

import (
	"math/rand"
	"testing"

	"github.com/coregx/golomb/bitset"
	"github.com/coregx/golomb/config"
)

func allBackends() []Backend {
	return []Backend{Scalar{}, Gather256{}, Gather512{}}
}

func TestScalarBasic(t *testing.T) {
	bs := bitset.New(600)
	bs.Set(10)
	bs.Set(20)

	dist := [MaxLanes]uint32{1, 2, 3, 10, 5, 6, 7, 8}
	if !(Scalar{}).AnyDup(bs, dist, 8) {
		t.Fatal("expected duplicate detected at lane 3 (distance 10)")
	}

	dist2 := [MaxLanes]uint32{1, 2, 3, 4, 5, 6, 7, 8}
	if (Scalar{}).AnyDup(bs, dist2, 8) {
		t.Fatal("expected no duplicate")
	}
}

// TestBackendEquivalence checks that for every (bitset, distances[8])
// pair, all backends return the identical boolean.
func TestBackendEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	backends := allBackends()

	for trial := 0; trial < 500; trial++ {
		bs := bitset.New(600)
		setCount := rng.Intn(40)
		for i := 0; i < setCount; i++ {
			bs.Set(rng.Intn(601))
		}

		var dist [MaxLanes]uint32
		n := rng.Intn(MaxLanes + 1)
		for i := 0; i < n; i++ {
			dist[i] = uint32(rng.Intn(601))
		}

		want := backends[0].AnyDup(bs, dist, n)
		for _, b := range backends[1:] {
			if got := b.AnyDup(bs, dist, n); got != want {
				t.Fatalf("trial %d: backend %s = %v, want %v (scalar)", trial, b.Name(), got, want)
			}
		}
	}
}

// TestBackendEquivalenceGuardRegion exercises lanes whose distance sits in
// the bitset's guard region, which must never be relied upon for
// correctness.
func TestBackendEquivalenceGuardRegion(t *testing.T) {
	bs := bitset.New(600)
	bs.Set(599)

	// Distances near the top of the valid range plus the edge of the
	// guard region (maxLen+1 .. maxLen+127 stays inside the allocation
	// per bitset's guardWords, even though such distances are never
	// legitimately produced by the DFS).
	dist := [MaxLanes]uint32{599, 600, 601, 650, 700, 726, 1, 2}
	backends := allBackends()
	want := backends[0].AnyDup(bs, dist, MaxLanes)
	for _, b := range backends[1:] {
		if got := b.AnyDup(bs, dist, MaxLanes); got != want {
			t.Fatalf("backend %s = %v, want %v (scalar) for guard-region distances", b.Name(), got, want)
		}
	}
}

func TestDispatchPriority(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ForceBackend = config.BackendScalar
	if Dispatch(cfg).Name() != "scalar" {
		t.Fatal("expected ForceBackend=scalar to win")
	}

	cfg2 := config.DefaultConfig()
	cfg2.SIMDEnabled = false
	if Dispatch(cfg2).Name() != "scalar" {
		t.Fatal("expected SIMD disabled to force scalar")
	}
}
