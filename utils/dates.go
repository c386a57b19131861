// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return BeginningOfDay(t).AddDate(0, 0, 1)
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// Weekday maps time.Weekday onto the 0=Sunday .. 6=Saturday convention
// used by availability rules.
func Weekday(t time.Time) int {
	return int(t.Weekday())
}

// AtClock combines the date of day with a wall-clock "HH:MM" string.
func AtClock(day time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	year, month, d := day.Date()
	return time.Date(year, month, d, parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}
