// services/interval.go
package services

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect:
// [s1,e1) and [s2,e2) conflict iff s1 < e2 && s2 < e1.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether other lies fully inside i.
func (i Interval) Contains(other Interval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

func (i Interval) empty() bool {
	return !i.Start.Before(i.End)
}

// subtract removes block from i, yielding zero, one or two remainders.
func (i Interval) subtract(block Interval) []Interval {
	if !i.Overlaps(block) {
		return []Interval{i}
	}
	var out []Interval
	if i.Start.Before(block.Start) {
		out = append(out, Interval{Start: i.Start, End: block.Start})
	}
	if block.End.Before(i.End) {
		out = append(out, Interval{Start: block.End, End: i.End})
	}
	return out
}

// subtractAll removes every block from every window. Input windows must
// be sorted and disjoint; the result preserves both properties.
func subtractAll(windows, blocks []Interval) []Interval {
	for _, block := range blocks {
		var next []Interval
		for _, w := range windows {
			next = append(next, w.subtract(block)...)
		}
		windows = next
	}
	out := windows[:0]
	for _, w := range windows {
		if !w.empty() {
			out = append(out, w)
		}
	}
	return out
}
