package schengen

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Trenton-Brown/Visa-Stay/internal/shared/dateutil"
)

// Visa durations arrive as free text from the rules feed, e.g. "90 days",
// "30 Days", "3 months". Months are flattened to 30 days; visa wording
// never means a calendar month.
var allowancePattern = regexp.MustCompile(`(?i)(\d+)\s*(day|month)s?\b`)

const daysPerMonth = 30

// ParseAllowance extracts the stay allowance in days from a duration
// description. ok is false when the text doesn't carry one.
func ParseAllowance(text string) (int, bool) {
	m := allowancePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if strings.EqualFold(m[2], "month") {
		n *= daysPerMonth
	}
	return n, true
}

// AllowanceLeft reports how many days of the visa allowance described by
// text remain as of ref for a stay starting at start. Before arrival the
// full allowance is reported; past the visa end it is zero. ok is false
// when text has no parseable duration.
func AllowanceLeft(text string, start, ref time.Time) (int, bool) {
	total, ok := ParseAllowance(text)
	if !ok {
		return 0, false
	}

	startDay := dateutil.DayOf(start)
	refDay := dateutil.DayOf(ref)
	visaEnd := dateutil.AddDays(startDay, total)

	switch {
	case refDay.After(visaEnd):
		return 0, true
	case refDay.Before(startDay):
		return total, true
	default:
		return dateutil.DaysBetween(refDay, visaEnd), true
	}
}

// Overstay reports whether a stay is currently past its visa allowance and
// by how many days. A stay counts as active when ref falls within
// [start, end], with a zero end meaning the traveler is still there.
func Overstay(text string, start, end, ref time.Time) (bool, int) {
	total, ok := ParseAllowance(text)
	if !ok {
		return false, 0
	}

	startDay := dateutil.DayOf(start)
	refDay := dateutil.DayOf(ref)
	visaEnd := dateutil.AddDays(startDay, total)

	active := !refDay.Before(startDay)
	if active && !end.IsZero() {
		active = !refDay.After(dateutil.DayOf(end))
	}
	if !active || !refDay.After(visaEnd) {
		return false, 0
	}
	return true, dateutil.DaysBetween(visaEnd, refDay)
}
