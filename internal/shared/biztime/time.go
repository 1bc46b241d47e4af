// Package biztime provides time utilities for maintenance cycle arithmetic.
// All storage and transport use UTC. The calendar-day trigger counts whole
// UTC calendar days, so day boundaries are always computed in UTC; implicit
// Local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns midnight UTC of the given instant's calendar day.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// CalendarDaysBetweenUTC returns the number of whole UTC calendar days
// between from and to. The count is the difference of calendar dates, not a
// rounded duration: 23:59 to 00:01 the next day is one day. A negative
// result (from after to) is clamped to zero.
func CalendarDaysBetweenUTC(from, to time.Time) int {
	days := int(StartOfDayUTC(to).Sub(StartOfDayUTC(from)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// FromMillis converts a unix-milliseconds timestamp to a UTC time.
func FromMillis(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}

// ToMillis converts a time to unix milliseconds.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}
