package services

import (
	"testing"
	"time"
)

func iv(t *testing.T, startHour, endHour int) Interval {
	t.Helper()
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestIntervalOverlaps(t *testing.T) {
	a := iv(t, 9, 12)

	if !a.Overlaps(iv(t, 11, 13)) {
		t.Fatalf("expected [9,12) to overlap [11,13)")
	}
	if !a.Overlaps(iv(t, 8, 10)) {
		t.Fatalf("expected [9,12) to overlap [8,10)")
	}
	if !a.Overlaps(iv(t, 10, 11)) {
		t.Fatalf("expected [9,12) to overlap contained [10,11)")
	}
	// Half-open: back-to-back intervals share an instant but no time.
	if a.Overlaps(iv(t, 12, 14)) {
		t.Fatalf("adjacent [12,14) must not overlap [9,12)")
	}
	if a.Overlaps(iv(t, 7, 9)) {
		t.Fatalf("adjacent [7,9) must not overlap [9,12)")
	}
}

func TestIntervalContains(t *testing.T) {
	w := iv(t, 8, 17)

	if !w.Contains(iv(t, 8, 17)) {
		t.Fatalf("interval must contain itself")
	}
	if !w.Contains(iv(t, 9, 10)) {
		t.Fatalf("expected [8,17) to contain [9,10)")
	}
	if w.Contains(iv(t, 7, 9)) {
		t.Fatalf("[7,9) starts before the window")
	}
	if w.Contains(iv(t, 16, 18)) {
		t.Fatalf("[16,18) ends after the window")
	}
}

func TestIntervalSubtract(t *testing.T) {
	w := iv(t, 8, 17)

	// Block in the middle splits the window in two.
	parts := w.subtract(iv(t, 12, 13))
	if len(parts) != 2 {
		t.Fatalf("expected 2 remainders, got %d", len(parts))
	}
	if !parts[0].Start.Equal(w.Start) || !parts[0].End.Equal(iv(t, 12, 13).Start) {
		t.Fatalf("unexpected left remainder: %+v", parts[0])
	}
	if !parts[1].Start.Equal(iv(t, 12, 13).End) || !parts[1].End.Equal(w.End) {
		t.Fatalf("unexpected right remainder: %+v", parts[1])
	}

	// Block overhanging the start trims the left edge.
	parts = w.subtract(iv(t, 6, 10))
	if len(parts) != 1 || !parts[0].Start.Equal(iv(t, 10, 17).Start) {
		t.Fatalf("expected single remainder starting at 10, got %+v", parts)
	}

	// Block covering the whole window removes it.
	parts = w.subtract(iv(t, 7, 18))
	if len(parts) != 0 {
		t.Fatalf("expected no remainder, got %+v", parts)
	}

	// Disjoint block leaves the window untouched.
	parts = w.subtract(iv(t, 18, 20))
	if len(parts) != 1 || parts[0] != w {
		t.Fatalf("expected untouched window, got %+v", parts)
	}
}

func TestSubtractAllDisjointAndOrdered(t *testing.T) {
	windows := []Interval{iv(t, 8, 17)}
	blocks := []Interval{iv(t, 9, 10), iv(t, 12, 14), iv(t, 16, 18)}

	out := subtractAll(windows, blocks)
	if len(out) != 3 {
		t.Fatalf("expected 3 windows, got %d: %+v", len(out), out)
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].End.After(out[i].Start) {
			t.Fatalf("windows not disjoint/ordered: %+v", out)
		}
	}
	want := []Interval{iv(t, 8, 9), iv(t, 10, 12), iv(t, 14, 16)}
	for i, w := range want {
		if out[i] != w {
			t.Fatalf("window %d: got %+v, want %+v", i, out[i], w)
		}
	}
}
