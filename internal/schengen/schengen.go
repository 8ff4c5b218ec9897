package schengen

import (
	"time"

	"github.com/Trenton-Brown/Visa-Stay/internal/shared/dateutil"
)

const (
	// WindowDays is the length of the rolling lookback window, inclusive
	// of the reference date.
	WindowDays = 180

	// AllowanceDays is the short-stay cap within one window.
	AllowanceDays = 90
)

// Stay is one trip segment as seen by the accountant. A zero End means the
// trip is open-ended and runs through the reference date.
type Stay struct {
	Start    time.Time
	End      time.Time
	Schengen bool
}

// DaysUsed counts the distinct calendar days spent in the Schengen zone
// within the 180 days ending at (and including) ref. Non-Schengen stays are
// ignored, overlapping stays never count a day twice, and a stay whose end
// precedes its start contributes nothing.
func DaysUsed(stays []Stay, ref time.Time) int {
	windowEnd := dateutil.DayOf(ref)
	windowStart := dateutil.AddDays(windowEnd, -(WindowDays - 1))

	used := map[string]struct{}{}
	for _, stay := range stays {
		if !stay.Schengen {
			continue
		}

		start := dateutil.DayOf(stay.Start)
		end := windowEnd
		if !stay.End.IsZero() {
			end = dateutil.DayOf(stay.End)
		}

		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		if start.After(end) {
			continue
		}

		for d := start; !d.After(end); d = dateutil.AddDays(d, 1) {
			used[dateutil.DayKey(d)] = struct{}{}
		}
	}
	return len(used)
}

// DaysRemaining returns how much of the 90-day allowance is left as of ref.
// Never negative.
func DaysRemaining(stays []Stay, ref time.Time) int {
	remaining := AllowanceDays - DaysUsed(stays, ref)
	if remaining < 0 {
		return 0
	}
	return remaining
}
