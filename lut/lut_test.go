package lut

import "testing"

func TestLookupByMarksKnownOrders(t *testing.T) {
	cases := []struct {
		marks  int
		length int
	}{
		{3, 3}, {4, 6}, {5, 11}, {6, 17}, {7, 25}, {8, 34},
	}
	for _, c := range cases {
		r, ok := LookupByMarks(c.marks)
		if !ok {
			t.Fatalf("expected entry for marks=%d", c.marks)
		}
		if r.Length != c.length {
			t.Fatalf("marks=%d: expected length %d, got %d", c.marks, c.length, r.Length)
		}
		if err := r.Validate(); err != nil {
			t.Fatalf("marks=%d: embedded ruler failed validation: %v", c.marks, err)
		}
	}
}

func TestLookupByMarksUnknown(t *testing.T) {
	if _, ok := LookupByMarks(31); ok {
		t.Fatal("expected no entry for an order far beyond the embedded table")
	}
}

func TestLookupByLength(t *testing.T) {
	r, ok := LookupByLength(17)
	if !ok || r.Marks != 6 {
		t.Fatalf("expected order-6 ruler for length 17, got %+v ok=%v", r, ok)
	}
	if _, ok := LookupByLength(12345); ok {
		t.Fatal("expected no entry for an unknown length")
	}
}

func TestAllEntriesValidate(t *testing.T) {
	for m := 1; m <= MaxKnownMarks(); m++ {
		r, ok := LookupByMarks(m)
		if !ok {
			continue
		}
		if err := r.Validate(); err != nil {
			t.Errorf("marks=%d: %v", m, err)
		}
	}
}
