package timeoff

import (
	"math"
	"time"
)

// InclusiveDays returns the number of calendar days covered by [start, end],
// counting both endpoints. A same-day range is 1 day. Time-of-day is ignored;
// both dates are normalized to midnight before differencing.
//
// A reversed range (end before start) yields the same magnitude as the
// ordered range rather than an error; callers validate presence, not order.
func InclusiveDays(start, end time.Time) int {
	start = atMidnight(start)
	end = atMidnight(end)

	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}

	return int(math.Ceil(diff.Hours()/24)) + 1
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
