package utils

import (
	"testing"
	"time"
)

func TestWeekdayConvention(t *testing.T) {
	sunday := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	if Weekday(sunday) != 0 {
		t.Fatalf("Sunday should map to 0, got %d", Weekday(sunday))
	}
	saturday := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	if Weekday(saturday) != 6 {
		t.Fatalf("Saturday should map to 6, got %d", Weekday(saturday))
	}
}

func TestAtClock(t *testing.T) {
	day := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)

	got, err := AtClock(day, "08:30")
	if err != nil {
		t.Fatalf("AtClock: %v", err)
	}
	want := time.Date(2025, 1, 10, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("AtClock = %v, want %v", got, want)
	}

	if _, err := AtClock(day, "25:00"); err == nil {
		t.Fatalf("expected error for invalid clock string")
	}
}

func TestValidateClock(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	for _, c := range valid {
		if !ValidateClock(c) {
			t.Fatalf("%q should be valid", c)
		}
	}
	invalid := []string{"24:00", "8:30", "12:60", "noon"}
	for _, c := range invalid {
		if ValidateClock(c) {
			t.Fatalf("%q should be invalid", c)
		}
	}
}
