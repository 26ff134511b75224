// Package lut embeds the reference table of published optimal Golomb
// rulers: a read-only, process-lifetime mapping from order to known
// optimal length and position sequence, consumed by the search core for
// hint-ordering and the fast-lane seed. Absence of an entry is never an
// error — callers treat a missing order as "no hint available".
package lut

import "github.com/coregx/golomb/ruler"

// entries holds the published optimal rulers for orders 1-16 (OEIS
// A003022, public domain), grounded on original_source/include/golomb.h's
// ruler_t table concept (lut_lookup_by_marks/lut_lookup_by_length).
var entries = []ruler.Ruler{
	{Marks: 1, Length: 0, Positions: []int{0}},
	{Marks: 2, Length: 1, Positions: []int{0, 1}},
	{Marks: 3, Length: 3, Positions: []int{0, 1, 3}},
	{Marks: 4, Length: 6, Positions: []int{0, 1, 4, 6}},
	{Marks: 5, Length: 11, Positions: []int{0, 1, 4, 9, 11}},
	{Marks: 6, Length: 17, Positions: []int{0, 1, 4, 10, 12, 17}},
	{Marks: 7, Length: 25, Positions: []int{0, 1, 4, 10, 18, 23, 25}},
	{Marks: 8, Length: 34, Positions: []int{0, 1, 4, 9, 15, 22, 32, 34}},
	{Marks: 9, Length: 44, Positions: []int{0, 1, 5, 12, 25, 27, 35, 41, 44}},
	{Marks: 10, Length: 55, Positions: []int{0, 1, 6, 10, 23, 26, 34, 41, 53, 55}},
	{Marks: 11, Length: 72, Positions: []int{0, 1, 4, 13, 28, 33, 47, 54, 64, 70, 72}},
	{Marks: 12, Length: 85, Positions: []int{0, 2, 6, 24, 29, 40, 43, 55, 68, 75, 76, 85}},
	{Marks: 13, Length: 106, Positions: []int{0, 2, 5, 25, 37, 43, 59, 70, 85, 89, 98, 99, 106}},
	{Marks: 14, Length: 127, Positions: []int{0, 4, 6, 20, 35, 52, 59, 77, 78, 86, 89, 99, 122, 127}},
	{Marks: 15, Length: 151, Positions: []int{0, 4, 20, 30, 57, 59, 62, 76, 100, 111, 123, 136, 144, 145, 151}},
	{Marks: 16, Length: 177, Positions: []int{0, 1, 4, 11, 26, 32, 56, 68, 76, 115, 117, 134, 150, 163, 168, 177}},
}

var byMarks = map[int]ruler.Ruler{}
var byLength = map[int]ruler.Ruler{}

func init() {
	for _, r := range entries {
		byMarks[r.Marks] = r
		byLength[r.Length] = r
	}
}

// LookupByMarks returns the published optimal ruler for the given order,
// or (Ruler{}, false) if no entry is known for that order. The core
// consumes this for hint-ordering of the candidate list and the
// fast-lane seed.
func LookupByMarks(marks int) (ruler.Ruler, bool) {
	r, ok := byMarks[marks]
	return r, ok
}

// LookupByLength returns the published optimal ruler whose length equals
// the given value, or (Ruler{}, false) if none is known. The symmetric
// counterpart to LookupByMarks, intended as a diagnostic-only
// convenience; no core operation requires it.
func LookupByLength(length int) (ruler.Ruler, bool) {
	r, ok := byLength[length]
	return r, ok
}

// MaxKnownMarks returns the highest order for which a reference ruler is
// embedded.
func MaxKnownMarks() int {
	max := 0
	for m := range byMarks {
		if m > max {
			max = m
		}
	}
	return max
}
