package refund

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestRateTable(t *testing.T) {
	checkIn := date(2025, 12, 10)

	cases := []struct {
		daysBefore int
		rate       int
	}{
		{0, 0},
		{1, 0},
		{2, 20},
		{3, 30},
		{4, 40},
		{5, 50},
		{6, 90},
		{7, 100},
		{14, 100},
		{60, 100},
	}

	for _, tc := range cases {
		now := checkIn.AddDate(0, 0, -tc.daysBefore)
		assert.Equal(t, tc.rate, Rate(checkIn, now), "%d days before check-in", tc.daysBefore)
	}
}

func TestRateAfterCheckIn(t *testing.T) {
	checkIn := date(2025, 12, 10)
	assert.Equal(t, 0, Rate(checkIn, date(2025, 12, 12)), "cancelling after check-in refunds nothing")
}

func TestRateUsesCalendarDays(t *testing.T) {
	checkIn := date(2025, 12, 10)

	// Both instants fall two calendar days out regardless of wall clock.
	lateEvening := time.Date(2025, 12, 8, 23, 30, 0, 0, time.Local)
	earlyMorning := time.Date(2025, 12, 8, 0, 30, 0, 0, time.Local)

	assert.Equal(t, 20, Rate(checkIn, lateEvening))
	assert.Equal(t, 20, Rate(checkIn, earlyMorning))
}

func TestRateAcrossDSTSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST begins 2026-03-08, so only 167 wall-clock hours separate the
	// midnights. Seven calendar days out still pays the full refund.
	checkIn := time.Date(2026, 3, 13, 0, 0, 0, 0, loc)
	now := time.Date(2026, 3, 6, 0, 0, 0, 0, loc)
	assert.Equal(t, 100, Rate(checkIn, now))
}

func TestRateMonotonic(t *testing.T) {
	checkIn := date(2025, 12, 10)

	prev := -1
	for days := 0; days <= 30; days++ {
		rate := Rate(checkIn, checkIn.AddDate(0, 0, -days))
		assert.GreaterOrEqual(t, rate, prev, "rate must never decrease as lead time grows")
		prev = rate
	}
}

func TestAmount(t *testing.T) {
	checkIn := date(2025, 12, 10)

	// Five days out: 50% of 100000.
	assert.Equal(t, int64(50000), Amount(100000, checkIn, date(2025, 12, 5)))

	// Rounding is half-up on the minor unit: 999 * 30% = 299.7 -> 300.
	assert.Equal(t, int64(300), Amount(999, checkIn, date(2025, 12, 7)))

	// A zero rate refunds nothing.
	assert.Equal(t, int64(0), Amount(100000, checkIn, date(2025, 12, 10)))
}
