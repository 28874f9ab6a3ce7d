package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func ptr(t time.Time) *time.Time { return &t }

func TestValidateNilCheckIn(t *testing.T) {
	result := Validate(nil, ptr(date(2025, 11, 29)), date(2025, 11, 1), Signals{})
	assert.Equal(t, Result{}, result, "nothing to evaluate yet")
}

func TestValidateFridayOneNightBlocked(t *testing.T) {
	// 2025-11-28 is a Friday, booked four weeks out with no mitigating
	// signals.
	now := date(2025, 11, 1)
	checkIn := date(2025, 11, 28)
	checkOut := date(2025, 11, 29)

	result := Validate(&checkIn, &checkOut, now, Signals{})

	assert.True(t, result.IsFridayOneNight)
	assert.False(t, result.IsWithinWindow)
	assert.False(t, result.IsEndCap)
	assert.True(t, result.IsBlocked)
}

func TestValidateSaturdayOneNightBlocked(t *testing.T) {
	// 2025-11-29 is a Saturday. The one-night rule covers it too, but the
	// end-cap exception does not.
	now := date(2025, 11, 1)
	checkIn := date(2025, 11, 29)
	checkOut := date(2025, 11, 30)

	result := Validate(&checkIn, &checkOut, now, Signals{
		HasEndCapAvailability: true,
		IsSaturdayFull:        true,
		IsNextDayBlocked:      true,
	})

	assert.True(t, result.IsFridayOneNight)
	assert.False(t, result.IsEndCap, "end-cap exception is Friday-only")
	assert.True(t, result.IsBlocked)
}

func TestValidateLeadTimeWindow(t *testing.T) {
	checkIn := date(2025, 11, 28) // Friday
	checkOut := date(2025, 11, 29)

	// Three days before check-in: within the window, allowed through.
	result := Validate(&checkIn, &checkOut, date(2025, 11, 25), Signals{})
	assert.True(t, result.IsFridayOneNight)
	assert.True(t, result.IsWithinWindow)
	assert.False(t, result.IsBlocked)

	// Exactly seven days out is still within the window.
	result = Validate(&checkIn, &checkOut, date(2025, 11, 21), Signals{})
	assert.True(t, result.IsWithinWindow)
	assert.False(t, result.IsBlocked)

	// Eight days out is not.
	result = Validate(&checkIn, &checkOut, date(2025, 11, 20), Signals{})
	assert.False(t, result.IsWithinWindow)
	assert.True(t, result.IsBlocked)
}

func TestValidateWindowIgnoresWallClock(t *testing.T) {
	checkIn := date(2025, 11, 28)
	checkOut := date(2025, 11, 29)

	// 23:59 on day N and 00:01 on day N must agree: the window counts
	// calendar days, not hours.
	lateEvening := time.Date(2025, 11, 21, 23, 59, 0, 0, time.Local)
	earlyMorning := time.Date(2025, 11, 21, 0, 1, 0, 0, time.Local)

	assert.Equal(t,
		Validate(&checkIn, &checkOut, lateEvening, Signals{}),
		Validate(&checkIn, &checkOut, earlyMorning, Signals{}),
	)
}

func TestValidateFridayEndCapExceptions(t *testing.T) {
	now := date(2025, 11, 1)
	checkIn := date(2025, 11, 28) // Friday
	checkOut := date(2025, 11, 29)

	cases := []struct {
		name string
		sig  Signals
	}{
		{"saturday already taken on the site", Signals{HasEndCapAvailability: true}},
		{"camp full on saturday", Signals{IsSaturdayFull: true}},
		{"saturday administratively blocked", Signals{IsNextDayBlocked: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate(&checkIn, &checkOut, now, tc.sig)
			assert.True(t, result.IsEndCap)
			assert.False(t, result.IsBlocked)
		})
	}
}

func TestValidateTwoNightStayAllowed(t *testing.T) {
	now := date(2025, 11, 1)
	checkIn := date(2025, 11, 28) // Friday
	checkOut := date(2025, 11, 30)

	result := Validate(&checkIn, &checkOut, now, Signals{})
	assert.False(t, result.IsFridayOneNight)
	assert.False(t, result.IsBlocked)
}

func TestValidateNilCheckOutCountsAsZeroNights(t *testing.T) {
	now := date(2025, 11, 1)
	checkIn := date(2025, 11, 28) // Friday

	result := Validate(&checkIn, nil, now, Signals{})
	assert.True(t, result.IsFridayOneNight)
	assert.True(t, result.IsBlocked)
}

func TestValidateDeterministic(t *testing.T) {
	now := date(2025, 11, 1)
	checkIn := date(2025, 11, 28)
	checkOut := date(2025, 11, 29)
	sig := Signals{IsSaturdayFull: true}

	first := Validate(&checkIn, &checkOut, now, sig)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Validate(&checkIn, &checkOut, now, sig))
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(2025, 11, 1), date(2025, 11, 1)))
	assert.Equal(t, 1, DaysBetween(date(2025, 11, 1), date(2025, 11, 2)))
	assert.Equal(t, -1, DaysBetween(date(2025, 11, 2), date(2025, 11, 1)))
	assert.Equal(t, 30, DaysBetween(date(2025, 11, 1), date(2025, 12, 1)))

	// Hours inside the day never change the count.
	from := time.Date(2025, 11, 1, 23, 0, 0, 0, time.Local)
	to := time.Date(2025, 11, 2, 1, 0, 0, 0, time.Local)
	assert.Equal(t, 1, DaysBetween(from, to))
}

func TestDaysBetweenAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST begins 2026-03-08 in New York, so that week has a 23-hour day.
	assert.Equal(t, 7, DaysBetween(
		time.Date(2026, 3, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 3, 14, 0, 0, 0, 0, loc),
	))

	// DST ends 2026-11-01, a 25-hour day.
	assert.Equal(t, 7, DaysBetween(
		time.Date(2026, 10, 30, 0, 0, 0, 0, loc),
		time.Date(2026, 11, 6, 0, 0, 0, 0, loc),
	))
}

func TestValidateWindowAcrossDSTSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-13 is a Friday; booking exactly seven calendar days out
	// stays within the window even though DST begins on 2026-03-08 and
	// only 167 wall-clock hours separate the two midnights.
	now := time.Date(2026, 3, 6, 0, 0, 0, 0, loc)
	checkIn := time.Date(2026, 3, 13, 0, 0, 0, 0, loc)
	checkOut := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)

	result := Validate(&checkIn, &checkOut, now, Signals{})
	assert.True(t, result.IsWithinWindow)
	assert.False(t, result.IsBlocked)

	// Eight days out is past the window regardless of the short day.
	earlier := time.Date(2026, 3, 5, 0, 0, 0, 0, loc)
	result = Validate(&checkIn, &checkOut, earlier, Signals{})
	assert.False(t, result.IsWithinWindow)
	assert.True(t, result.IsBlocked)
}

func TestValidateOneNightAcrossDSTFallBack(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// A lone Saturday night over the 25-hour fall-back day of
	// 2026-10-31 -> 2026-11-01 is still one night, so the one-night
	// rule applies.
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, loc)
	checkIn := time.Date(2026, 10, 31, 0, 0, 0, 0, loc)
	checkOut := time.Date(2026, 11, 1, 0, 0, 0, 0, loc)

	result := Validate(&checkIn, &checkOut, now, Signals{})
	assert.True(t, result.IsFridayOneNight)
	assert.True(t, result.IsBlocked)
}

func TestValidateDecemberWeekends(t *testing.T) {
	now := date(2025, 11, 29)

	t.Run("friday one night two weeks out", func(t *testing.T) {
		checkIn := date(2025, 12, 12) // Friday, lead 13 days
		checkOut := date(2025, 12, 13)

		result := Validate(&checkIn, &checkOut, now, Signals{})
		assert.True(t, result.IsFridayOneNight)
		assert.False(t, result.IsWithinWindow)
		assert.True(t, result.IsBlocked)
	})

	t.Run("friday one night six days out", func(t *testing.T) {
		checkIn := date(2025, 12, 5) // Friday, lead 6 days
		checkOut := date(2025, 12, 6)

		result := Validate(&checkIn, &checkOut, now, Signals{})
		assert.True(t, result.IsFridayOneNight)
		assert.True(t, result.IsWithinWindow)
		assert.False(t, result.IsBlocked)
	})

	t.Run("friday two nights two weeks out", func(t *testing.T) {
		checkIn := date(2025, 12, 12)
		checkOut := date(2025, 12, 14)

		result := Validate(&checkIn, &checkOut, now, Signals{})
		assert.False(t, result.IsFridayOneNight)
		assert.False(t, result.IsBlocked)
	})
}
