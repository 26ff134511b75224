// Package parallel implements the two parallel search drivers: a
// static-ordered candidate list with dynamic scheduling and
// checkpoint/resume, and a task-based variant with cooperative
// cancellation via golang.org/x/sync/errgroup.
package parallel

import (
	"sort"

	"github.com/coregx/golomb/ruler"
)

// Candidate is one (second, third) seed for the top-level search, plus
// its hint-proximity score.
type Candidate struct {
	Second int
	Third  int
	Score  int
}

// BuildCandidates enumerates every legal (second, third) seed for the
// given (n, targetLength), scored against an optional reference ruler
// hint:
//
//	1 <= second <= floor(L/2)
//	second < third <= L - (n-2)
//	score = |second - hint.p1| + |third - hint.p2|, or 0 if hint is nil
//
// The result is sorted ascending by score, with (second, third) as
// lexicographic tie-breaker; when hint is nil every score is 0 so the
// order is lexicographic by construction.
func BuildCandidates(n, targetLength int, hint *ruler.Ruler) []Candidate {
	half := targetLength / 2
	thirdBound := targetLength - (n - 2)
	secondBound := half
	if thirdBound-1 < secondBound {
		secondBound = thirdBound - 1
	}

	var out []Candidate
	for second := 1; second <= secondBound; second++ {
		for third := second + 1; third <= thirdBound; third++ {
			score := 0
			if hint != nil && len(hint.Positions) >= 3 {
				score = abs(second-hint.Positions[1]) + abs(third-hint.Positions[2])
			}
			out = append(out, Candidate{Second: second, Third: third, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		if out[i].Second != out[j].Second {
			return out[i].Second < out[j].Second
		}
		return out[i].Third < out[j].Third
	})
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
