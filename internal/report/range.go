package report

import "time"

// RangeKey selects the look-back window for a report.
type RangeKey string

const (
	RangeDay   RangeKey = "day"
	RangeWeek  RangeKey = "week"
	RangeMonth RangeKey = "month"
	RangeYear  RangeKey = "year"
)

// ParseRangeKey maps a symbolic range value to its key. Anything
// unrecognized falls back to the default week window rather than erroring.
func ParseRangeKey(s string) RangeKey {
	switch RangeKey(s) {
	case RangeDay, RangeWeek, RangeMonth, RangeYear:
		return RangeKey(s)
	}
	return RangeWeek
}

// Resolve returns the inclusive [start, end] window ending at now. The
// subtraction is calendar-aware: a month back from Mar 31 is Feb, not a
// fixed 30 days.
func (k RangeKey) Resolve(now time.Time) (start, end time.Time) {
	end = now
	switch k {
	case RangeDay:
		start = now.AddDate(0, 0, -1)
	case RangeMonth:
		start = now.AddDate(0, -1, 0)
	case RangeYear:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, 0, -7)
	}
	return start, end
}
