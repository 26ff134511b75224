// Package golomb finds optimal Golomb rulers by branch-and-bound search:
// ordered sequences of non-negative integer positions starting at 0 whose
// pairwise differences are all distinct, of minimum last-mark length.
package golomb

import (
	"errors"
	"fmt"

	"github.com/coregx/golomb/config"
	"github.com/coregx/golomb/lut"
	"github.com/coregx/golomb/parallel"
	"github.com/coregx/golomb/ruler"
	"github.com/coregx/golomb/search"
)

// Mode selects the search driver used by Solve.
type Mode int

const (
	// ModeSingle runs a single search.Frame on the calling goroutine.
	ModeSingle Mode = iota
	// ModeStatic uses the static-ordered candidate list driver
	// (parallel.StaticSolve), with no checkpointing.
	ModeStatic
	// ModeTask uses the task-based driver with cooperative cancellation
	// (parallel.TaskSolve).
	ModeTask
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeStatic:
		return "static"
	case ModeTask:
		return "task"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var (
	// ErrInvalidMarks is returned when n is outside [2, config.MaxMarks].
	// A 1-mark ruler is trivially {0} with no pairwise distances to
	// distinguish, so it carries no search problem; n is required to be
	// at least 2.
	ErrInvalidMarks = errors.New("golomb: invalid mark count")
	// ErrInvalidLength is returned when targetLength is outside
	// [0, config.MaxLength] or too small to hold n marks.
	ErrInvalidLength = errors.New("golomb: invalid target length")
)

func validateRequest(n, targetLength int) error {
	if n < 2 || n > config.MaxMarks {
		return fmt.Errorf("%w: n=%d", ErrInvalidMarks, n)
	}
	if targetLength < 0 || targetLength > config.MaxLength {
		return fmt.Errorf("%w: length=%d", ErrInvalidLength, targetLength)
	}
	minPossible := n * (n - 1) / 2
	if targetLength < minPossible {
		return fmt.Errorf("%w: length=%d too small for n=%d marks (need >= %d)", ErrInvalidLength, targetLength, n, minPossible)
	}
	return nil
}

// Solve searches for a Golomb ruler with exactly n marks and last-mark
// position exactly targetLength, using the driver named by mode. It
// returns a zero Ruler and a nil error when no such ruler exists; it returns a
// non-nil error only on malformed input (n or targetLength out of
// range), never on exhaustion.
func Solve(n, targetLength int, mode Mode, cfg config.Config) (ruler.Ruler, error) {
	if err := validateRequest(n, targetLength); err != nil {
		return ruler.Ruler{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ruler.Ruler{}, err
	}

	var (
		r  ruler.Ruler
		ok bool
	)
	switch mode {
	case ModeStatic:
		r, ok = parallel.StaticSolve(n, targetLength, cfg, nil)
	case ModeTask:
		r, ok = parallel.TaskSolve(n, targetLength, cfg)
	default:
		f := search.NewFrameFromConfig(n, targetLength, cfg)
		r, ok = f.Solve(targetLength)
	}
	if !ok {
		return ruler.Ruler{}, nil
	}
	return r, nil
}

// MustSolve behaves like Solve but panics on a malformed request or on
// unsatisfiability, for callers (tests, examples) that already know a
// ruler exists at the given n/length.
func MustSolve(n, targetLength int, mode Mode, cfg config.Config) ruler.Ruler {
	r, err := Solve(n, targetLength, mode, cfg)
	if err != nil {
		panic(err)
	}
	if r.Marks == 0 && n != 0 {
		panic(fmt.Sprintf("golomb: MustSolve(%d, %d) found no ruler", n, targetLength))
	}
	return r
}

// Minimize finds the minimum length L for which an n-mark Golomb ruler
// exists, by increasing L from a lower bound until a ruler is found or
// config.MaxLength is exceeded. The search starts at the embedded
// reference table length when n is known to lut, otherwise at the
// theoretical minimum n*(n-1)/2 (optionally boosted by (n-3)/2 when
// cfg.HeuristicLowerBound is set). lowerBoundHint, when non-nil,
// overrides the starting length (still clamped to be no smaller than
// the theoretical minimum).
func Minimize(n int, cfg config.Config, lowerBoundHint *int) (ruler.Ruler, error) {
	if n < 2 || n > config.MaxMarks {
		return ruler.Ruler{}, fmt.Errorf("%w: n=%d", ErrInvalidMarks, n)
	}
	if err := cfg.Validate(); err != nil {
		return ruler.Ruler{}, err
	}

	minPossible := n * (n - 1) / 2
	start := minPossible
	if cfg.HeuristicLowerBound {
		start += (n - 3) / 2
		if start < minPossible {
			start = minPossible
		}
	}
	if ref, ok := lut.LookupByMarks(n); ok {
		start = ref.Length
	}
	if lowerBoundHint != nil {
		start = *lowerBoundHint
	}
	if start < minPossible {
		start = minPossible
	}

	for length := start; length <= config.MaxLength; length++ {
		r, ok := parallel.StaticSolve(n, length, cfg, nil)
		if ok {
			return r, nil
		}
	}
	return ruler.Ruler{}, fmt.Errorf("golomb: no ruler found for n=%d up to length %d", n, config.MaxLength)
}
