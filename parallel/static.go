package parallel

import (
	"sync"
	"sync/atomic"

	"github.com/coregx/golomb/checkpoint"
	"github.com/coregx/golomb/config"
	"github.com/coregx/golomb/lut"
	"github.com/coregx/golomb/ruler"
	"github.com/coregx/golomb/search"

	// automaxprocs is imported here (as well as in config, which every
	// caller of this package already depends on) so that a caller
	// importing parallel directly for tests still gets GOMAXPROCS sized
	// to the container's CPU quota before WorkerCount is read.
	_ "go.uber.org/automaxprocs"
)

// StaticSolve implements the static-ordered candidate list driver: a
// fixed, scored candidate list divided dynamically across a worker pool,
// with optional checkpoint/resume. For n<=3 it delegates to a
// single-threaded search.Frame. store may be nil to disable
// checkpointing entirely.
func StaticSolve(n, targetLength int, cfg config.Config, store *checkpoint.Store) (ruler.Ruler, bool) {
	if n <= 3 {
		f := search.NewFrameFromConfig(n, targetLength, cfg)
		return f.Solve(targetLength)
	}

	var hintRuler *ruler.Ruler
	hintSecond, hintThird, hintUsed := 0, 0, false
	if cfg.HintsEnabled {
		if ref, ok := lut.LookupByMarks(n); ok {
			hr := ref
			hintRuler = &hr
			if len(ref.Positions) >= 3 {
				hintSecond, hintThird = ref.Positions[1], ref.Positions[2]
				hintUsed = true
			}

			// Fast lane: try the reference ruler's own seed directly,
			// restricted to firing only when the reference ruler's own
			// length matches the requested target exactly. StaticSolve
			// always returns a ruler of length exactly targetLength or
			// none; only Minimize owns "find the minimum length."
			if ref.Length == targetLength {
				seedFrame := search.NewFrameFromConfig(n, targetLength, cfg)
				if r, ok := seedFrame.SolveFromSeed(targetLength, hintSecond, hintThird); ok {
					return r, true
				}
			}
		}
	}

	candidates := BuildCandidates(n, targetLength, hintRuler)
	total := len(candidates)
	if total == 0 {
		return ruler.Ruler{}, false
	}

	header := checkpoint.Header{
		N:          uint32(n),
		L:          uint32(targetLength),
		Total:      uint64(total),
		HintSecond: uint32(hintSecond),
		HintThird:  uint32(hintThird),
	}
	if hintUsed {
		header.HintUsed = 1
	}

	var state *checkpoint.State
	if store != nil {
		if resumed, ok := store.Load(header); ok {
			state = resumed
		} else {
			state = checkpoint.NewState(header)
			store.Stamp(state)
		}
	} else {
		state = checkpoint.NewState(header)
	}

	var (
		cursor   int64
		found    atomic.Bool
		resultMu sync.Mutex
		result   ruler.Ruler
	)

	blockSize := cfg.CandidateBlockSize
	workerCount := cfg.WorkerCount
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			frame := search.NewFrameFromConfig(n, targetLength, cfg)

			for {
				if found.Load() {
					return
				}
				start := int(atomic.AddInt64(&cursor, int64(blockSize))) - blockSize
				if start >= total {
					return
				}
				end := start + blockSize
				if end > total {
					end = total
				}

				for i := start; i < end; i++ {
					if found.Load() {
						return
					}
					if store != nil && state.IsProcessed(i) {
						continue
					}

					c := candidates[i]
					r, ok := frame.SolveFromSeed(targetLength, c.Second, c.Third)
					if ok {
						resultMu.Lock()
						if !found.Load() {
							result = r
							found.Store(true)
						}
						resultMu.Unlock()
					}

					if store != nil {
						state.SetProcessed(i)
						store.MaybeFlush(state)
					}
				}
			}
		}()
	}
	wg.Wait()

	if store != nil {
		store.FinalFlush(state)
	}

	if found.Load() {
		return result, true
	}
	return ruler.Ruler{}, false
}
