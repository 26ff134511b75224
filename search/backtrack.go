// Package search implements the branch-and-bound depth-first backtracker:
// the algorithmic heart of this module. A Frame holds all state for one
// search (positions, distance bitset, probe backend) as a dedicated
// struct rather than closures, to keep dependencies explicit, testing
// simpler, and hot-path state predictable.
package search

import (
	"github.com/coregx/golomb/bitset"
	"github.com/coregx/golomb/config"
	"github.com/coregx/golomb/probe"
	"github.com/coregx/golomb/ruler"
)

// Frame owns one backtracking search's mutable state. A Frame must never
// be shared between goroutines; the parallel drivers construct one Frame
// per worker and reuse it across seeds.
type Frame struct {
	n         int
	bs        *bitset.Bitset
	positions []int
	backend   probe.Backend
	threshold int
}

// NewFrame allocates a Frame sized for up to n marks and distances up to
// maxLen. backend is the probe.Backend selected once by probe.Dispatch
// for the lifetime of the enclosing search; threshold is the DFS depth at
// or above which batched probing replaces the scalar per-distance loop
// (config.Config.SIMDThreshold).
func NewFrame(n, maxLen int, backend probe.Backend, threshold int) *Frame {
	return &Frame{
		n:         n,
		bs:        bitset.New(maxLen),
		positions: make([]int, n),
		backend:   backend,
		threshold: threshold,
	}
}

// NewFrameFromConfig builds a Frame using probe.Dispatch(cfg) and
// cfg.SIMDThreshold, the common case for callers that do not need to pin
// an explicit backend. When cfg.SIMDEnabled is false the threshold is
// set to -1, so the DFS never uses batched probing.
func NewFrameFromConfig(n, maxLen int, cfg config.Config) *Frame {
	threshold := cfg.SIMDThreshold
	if !cfg.SIMDEnabled {
		threshold = -1
	}
	return NewFrame(n, maxLen, probe.Dispatch(cfg), threshold)
}

// Reset clears the bitset so the Frame can be reused for a fresh seed.
func (f *Frame) Reset() {
	f.bs.Reset()
}

// Solve runs the DFS from depth 1 with positions[0] already fixed to 0,
// searching for a completion of length exactly targetLength. It returns
// the completed ruler and true on success; on failure the Frame's bitset
// is guaranteed to be restored to all-zero.
func (f *Frame) Solve(targetLength int) (ruler.Ruler, bool) {
	f.Reset()
	f.positions[0] = 0
	if f.dfs(1, targetLength) {
		return ruler.New(f.positions[:f.n]), true
	}
	return ruler.Ruler{}, false
}

// SolveFromSeed runs the DFS starting from a committed 3-mark seed
// (0, second, third), as used by the parallel drivers. The caller is
// responsible for picking second/third such that the three
// pairwise distances (second, third, third-second) are themselves
// distinct; SolveFromSeed defensively re-checks this and returns false
// without side effects if it is not so.
func (f *Frame) SolveFromSeed(targetLength, second, third int) (ruler.Ruler, bool) {
	f.Reset()
	if f.n < 3 {
		return ruler.Ruler{}, false
	}
	f.positions[0] = 0
	f.positions[1] = second
	f.positions[2] = third

	d12 := second
	d13 := third
	d23 := third - second
	if d12 == d13 || d12 == d23 || d13 == d23 {
		return ruler.Ruler{}, false
	}
	if f.bs.Test(d12) || f.bs.Test(d13) || f.bs.Test(d23) {
		return ruler.Ruler{}, false
	}
	f.bs.Set(d12)
	f.bs.Set(d13)
	f.bs.Set(d23)

	if f.dfs(3, targetLength) {
		return ruler.New(f.positions[:f.n]), true
	}
	// Roll back the seed distances so the frame is reusable for the next
	// seed attempt, mirroring the DFS's own rollback discipline.
	f.bs.Clear(d12)
	f.bs.Clear(d13)
	f.bs.Clear(d23)
	return ruler.Ruler{}, false
}

// dfs is the core branch-and-bound step: base case, pruning, branching,
// commit/recurse/rollback.
func (f *Frame) dfs(depth, targetLength int) bool {
	n := f.n
	if depth == n {
		return f.positions[n-1] == targetLength
	}

	last := f.positions[depth-1]
	if last+(n-depth) > targetLength {
		return false
	}

	maxNext := targetLength - (n - depth - 1)
	if depth == 1 {
		half := targetLength / 2
		if maxNext > half {
			maxNext = half
		}
		if maxNext < last+1 {
			maxNext = last + 1
		}
	}

	useBatched := f.threshold >= 0 && depth >= f.threshold

	for next := last + 1; next <= maxNext; next++ {
		// Fast reject: the smallest new distance is next-last; if it's
		// already used, every other distance check is moot. Valid because
		// committed distances are never cleared while exploring siblings
		// at the same depth.
		if f.bs.Test(next - last) {
			continue
		}

		if f.hasDuplicate(depth, next, useBatched) {
			continue
		}

		f.commit(depth, next)
		if f.dfs(depth+1, targetLength) {
			return true
		}
		f.rollback(depth, next)
	}
	return false
}

// hasDuplicate checks whether placing next would create any distance
// already present in the bitset, against all depth already-committed
// marks. When useBatched is set (depth at or above the Frame's threshold,
// which NewFrameFromConfig disables when SIMD is off), distances are probed
// in groups of up to probe.MaxLanes via the dispatched backend; otherwise
// each is tested individually. Both paths are semantically identical.
func (f *Frame) hasDuplicate(depth, next int, useBatched bool) bool {
	if !useBatched {
		for i := 0; i < depth; i++ {
			if f.bs.Test(next - f.positions[i]) {
				return true
			}
		}
		return false
	}

	var batch [probe.MaxLanes]uint32
	i := 0
	for i < depth {
		count := 0
		for count < probe.MaxLanes && i < depth {
			batch[count] = uint32(next - f.positions[i])
			count++
			i++
		}
		if f.backend.AnyDup(f.bs, batch, count) {
			return true
		}
	}
	return false
}

// commit sets positions[depth] = next and marks every new distance it
// creates with the already-committed marks.
func (f *Frame) commit(depth, next int) {
	f.positions[depth] = next
	for i := 0; i < depth; i++ {
		f.bs.Set(next - f.positions[i])
	}
}

// rollback undoes commit, clearing exactly the bits set by the matching
// commit, in the same order — set/clear pairs are the identity on the
// bitset.
func (f *Frame) rollback(depth, next int) {
	for i := 0; i < depth; i++ {
		f.bs.Clear(next - f.positions[i])
	}
}
