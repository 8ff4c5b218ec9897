package dateutil

import (
	"fmt"
	"math"
	"time"
)

const dayLayout = "2006-01-02"

// ParseDate reads the YYYY-MM-DD prefix of s and rebuilds it at local
// midnight. Going through the components instead of time.Parse keeps the
// date in the local zone, so a trip entered as 2024-03-01 stays March 1st
// regardless of the machine's UTC offset.
func ParseDate(s string) (time.Time, error) {
	if len(s) < len(dayLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	parsed, err := time.Parse(dayLayout, s[:len(dayLayout)])
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
}

// DayOf truncates t to local midnight.
func DayOf(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DaysBetween returns the signed whole-day distance from a to b.
// Rounding absorbs the one-hour drift across DST transitions.
func DaysBetween(a, b time.Time) int {
	diff := DayOf(b).Sub(DayOf(a)).Hours() / 24
	return int(math.Round(diff))
}

// AddDays moves t forward n calendar days, keeping local midnight.
func AddDays(t time.Time, n int) time.Time {
	return DayOf(t).AddDate(0, 0, n)
}

// DayKey formats t as its calendar-date identity, used for day sets.
func DayKey(t time.Time) string {
	return DayOf(t).Format(dayLayout)
}
