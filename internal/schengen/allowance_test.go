package schengen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAllowance(t *testing.T) {
	cases := []struct {
		text string
		days int
		ok   bool
	}{
		{"90 days", 90, true},
		{"30 Days", 30, true},
		{"1 day", 1, true},
		{"3 months", 90, true},
		{"1 Month", 30, true},
		{"90 days per entry", 90, true},
		{"visa required", 0, false},
		{"", 0, false},
		{"ninety days", 0, false},
	}

	for _, tc := range cases {
		days, ok := ParseAllowance(tc.text)
		assert.Equal(t, tc.ok, ok, tc.text)
		assert.Equal(t, tc.days, days, tc.text)
	}
}

func TestAllowanceLeftOnArrivalDay(t *testing.T) {
	start := day(2024, 1, 1)

	left, ok := AllowanceLeft("90 days", start, start)
	assert.True(t, ok)
	assert.Equal(t, 90, left)
}

func TestAllowanceLeftExhausted(t *testing.T) {
	left, ok := AllowanceLeft("90 days", day(2024, 1, 1), day(2024, 4, 15))
	assert.True(t, ok)
	assert.Equal(t, 0, left)
}

func TestAllowanceLeftBeforeArrival(t *testing.T) {
	left, ok := AllowanceLeft("30 days", day(2024, 6, 1), day(2024, 5, 1))
	assert.True(t, ok)
	assert.Equal(t, 30, left)
}

func TestAllowanceLeftMidStay(t *testing.T) {
	// Jan 1 + 90 days lands on Mar 31 (leap year).
	left, ok := AllowanceLeft("90 days", day(2024, 1, 1), day(2024, 3, 1))
	assert.True(t, ok)
	assert.Equal(t, 30, left)
}

func TestAllowanceLeftUnparseable(t *testing.T) {
	_, ok := AllowanceLeft("eVisa", day(2024, 1, 1), day(2024, 1, 2))
	assert.False(t, ok)
}

func TestOverstayActiveTrip(t *testing.T) {
	// 30-day visa, still in-country 40 days after arrival.
	over, days := Overstay("30 days", day(2024, 1, 1), time.Time{}, day(2024, 2, 10))
	assert.True(t, over)
	assert.Equal(t, 10, days)
}

func TestOverstayWithinAllowance(t *testing.T) {
	over, days := Overstay("90 days", day(2024, 1, 1), time.Time{}, day(2024, 2, 1))
	assert.False(t, over)
	assert.Equal(t, 0, days)
}

func TestOverstayEndedTripIsNotActive(t *testing.T) {
	// Trip ended before the reference date, so no overstay is flagged even
	// though the visa end has passed.
	over, days := Overstay("30 days", day(2024, 1, 1), day(2024, 1, 20), day(2024, 3, 1))
	assert.False(t, over)
	assert.Equal(t, 0, days)
}

func TestOverstayBeforeArrival(t *testing.T) {
	over, _ := Overstay("30 days", day(2024, 6, 1), time.Time{}, day(2024, 5, 1))
	assert.False(t, over)
}

func TestOverstayUnparseableDuration(t *testing.T) {
	over, days := Overstay("visa on arrival", day(2024, 1, 1), time.Time{}, day(2024, 6, 1))
	assert.False(t, over)
	assert.Equal(t, 0, days)
}
