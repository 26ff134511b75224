package parallel

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/golomb/config"
	"github.com/coregx/golomb/ruler"
	"github.com/coregx/golomb/search"
)

// TaskSolve implements the task-based parallel driver: a single
// task-group over the flattened (second, third) seed space, grainsize
// cfg.TaskGrainSize, with cooperative cancellation once a winner is
// found. Seeds are tried in natural lexicographic order — no
// hint-based reordering in this variant.
//
// Grounded on go-ethereum's cmd/geth/lag_between_tx_inclusion_test.go: an
// errgroup.WithContext whose cancel func is invoked by the first goroutine
// to find a result, with siblings observing ctx.Err() and exiting.
func TaskSolve(n, targetLength int, cfg config.Config) (ruler.Ruler, bool) {
	if n <= 3 {
		f := search.NewFrameFromConfig(n, targetLength, cfg)
		return f.Solve(targetLength)
	}

	candidates := BuildCandidates(n, targetLength, nil)
	total := len(candidates)
	if total == 0 {
		return ruler.Ruler{}, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errg, ctx := errgroup.WithContext(ctx)
	if cfg.WorkerCount > 0 {
		errg.SetLimit(cfg.WorkerCount)
	}

	var (
		found    atomic.Bool
		resultMu sync.Mutex
		result   ruler.Ruler
	)

	grain := cfg.TaskGrainSize
	if grain < 1 {
		grain = 1
	}

	for start := 0; start < total; start += grain {
		end := start + grain
		if end > total {
			end = total
		}
		batch := candidates[start:end]

		errg.Go(func() error {
			frame := search.NewFrameFromConfig(n, targetLength, cfg)
			for _, c := range batch {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				r, ok := frame.SolveFromSeed(targetLength, c.Second, c.Third)
				if ok {
					resultMu.Lock()
					if !found.Load() {
						result = r
						found.Store(true)
						cancel()
					}
					resultMu.Unlock()
					return nil
				}
			}
			return nil
		})
	}

	_ = errg.Wait()

	if found.Load() {
		return result, true
	}
	return ruler.Ruler{}, false
}
