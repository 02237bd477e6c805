// Package dates provides calendar-day range helpers for naive YYYY-MM-DD
// date strings.
package dates

import (
	"iter"
	"time"
)

// Range yields every day from start to end inclusive, ascending, one day at a
// time, as YYYY-MM-DD strings. The sequence is lazy and restartable.
//
// A reversed range (start after end) or an unparseable bound yields an empty
// sequence; Range never panics. Input validation belongs to the boundary
// layer, not here.
func Range(start, end string) iter.Seq[string] {
	return func(yield func(string) bool) {
		from, err := time.Parse(time.DateOnly, start)
		if err != nil {
			return
		}
		to, err := time.Parse(time.DateOnly, end)
		if err != nil {
			return
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if !yield(d.Format(time.DateOnly)) {
				return
			}
		}
	}
}

// Contains reports whether day falls within [start, end] inclusive.
// ISO date strings order lexicographically, so plain string comparison is
// exact here.
func Contains(start, end, day string) bool {
	return start <= day && day <= end
}

// Valid reports whether s parses as a YYYY-MM-DD date.
func Valid(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// ValidTime reports whether s parses as an HH:MM wall-clock time.
func ValidTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
