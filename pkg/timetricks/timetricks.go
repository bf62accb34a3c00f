package timetricks

import (
	"time"
)

const (
	dayFormat = "20060102"
)

func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

// Midnight returns the first instant of t's calendar day in t's location,
// including on days with a DST transition.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayLength returns how long t's calendar day is, normally 24 hours.
func DayLength(t time.Time) time.Duration {
	start := Midnight(t)
	y, m, d := start.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Sub(start)
}
