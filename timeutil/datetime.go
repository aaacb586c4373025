// Package timeutil collects date and interval helpers: a tick-based Span
// with day-aware formatting and parsing, custom date patterns translated to
// Go layouts, and calendar ticks counted from 0001-01-01.
package timeutil

import "time"

// unixEpochTicks is 1970-01-01T00:00:00Z counted in ticks from 0001-01-01.
const unixEpochTicks = 621355968000000000

var (
	MinTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxTime = time.Date(9999, time.December, 31, 23, 59, 59, 999_999_900, time.UTC)
)

// DateTicks counts 100ns ticks from MinTime to t. time.Duration cannot span
// that range, so the count is assembled from Unix seconds.
func DateTicks(t time.Time) int64 {
	return unixEpochTicks + t.Unix()*TicksPerSecond + int64(t.Nanosecond())/int64(Tick)
}

// FromDateTicks is the inverse of DateTicks, in UTC.
func FromDateTicks(ticks int64) time.Time {
	rel := ticks - unixEpochTicks
	sec, rem := rel/TicksPerSecond, rel%TicksPerSecond
	if rem < 0 {
		sec--
		rem += TicksPerSecond
	}
	return time.Unix(sec, rem*int64(Tick)).UTC()
}

// Since is t - from as a Span.
func Since(from, t time.Time) Span { return Span(t.Sub(from)) }

// AgeYears returns whole calendar years between birth and now.
func AgeYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || now.Month() == birth.Month() && now.Day() < birth.Day() {
		years--
	}
	return years
}
