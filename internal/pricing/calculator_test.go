package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *PricingConfig {
	return &PricingConfig{
		Weekday:          40000,
		Weekend:          50000,
		PeakWeekday:      55000,
		PeakWeekend:      65000,
		ExtraFamily:      10000,
		Visitor:          5000,
		LongStayDiscount: 5000,
		Seasons: []Season{
			{Name: "summer", StartMonth: 7, StartDay: 15, EndMonth: 8, EndDay: 24},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNights(t *testing.T) {
	// 2025-11-03 is a Monday.
	assert.Equal(t, 2, Nights(date(2025, 11, 3), date(2025, 11, 5)))
	assert.Equal(t, 0, Nights(date(2025, 11, 3), date(2025, 11, 3)))
	assert.Equal(t, -2, Nights(date(2025, 11, 5), date(2025, 11, 3)))

	// Time of day never changes the calendar-night count.
	checkIn := time.Date(2025, 11, 3, 15, 0, 0, 0, time.Local)
	checkOut := time.Date(2025, 11, 4, 11, 0, 0, 0, time.Local)
	assert.Equal(t, 1, Nights(checkIn, checkOut))
}

func TestNightsAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST ends 2026-11-01 in New York, so that calendar day lasts 25 hours.
	fallBack := Nights(
		time.Date(2026, 11, 1, 0, 0, 0, 0, loc),
		time.Date(2026, 11, 2, 0, 0, 0, 0, loc),
	)
	assert.Equal(t, 1, fallBack, "a 25-hour day is still one night")

	// DST begins 2026-03-08, a 23-hour day.
	springForward := Nights(
		time.Date(2026, 3, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 3, 9, 0, 0, 0, 0, loc),
	)
	assert.Equal(t, 2, springForward, "a 23-hour day is still one night")
}

func TestCalculateAcrossDSTFallBack(t *testing.T) {
	cfg := testConfig()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Sunday 2026-11-01 is the 25-hour fall-back day. One weekend night,
	// not two, and therefore no consecutive discount either.
	b := Calculate(cfg,
		time.Date(2026, 11, 1, 0, 0, 0, 0, loc),
		time.Date(2026, 11, 2, 0, 0, 0, 0, loc),
		1, 0)

	assert.Equal(t, 1, b.Nights)
	assert.Equal(t, cfg.Weekend, b.BasePrice)
	assert.Equal(t, int64(0), b.Discount.Consecutive)
}

func TestIsWeekendNight(t *testing.T) {
	assert.False(t, IsWeekendNight(date(2025, 11, 6)), "Thursday")
	assert.True(t, IsWeekendNight(date(2025, 11, 7)), "Friday")
	assert.True(t, IsWeekendNight(date(2025, 11, 8)), "Saturday")
	assert.True(t, IsWeekendNight(date(2025, 11, 9)), "Sunday")
	assert.False(t, IsWeekendNight(date(2025, 11, 10)), "Monday")
}

func TestCalculateDegenerateRange(t *testing.T) {
	cfg := testConfig()

	same := Calculate(cfg, date(2025, 11, 3), date(2025, 11, 3), 2, 3)
	assert.Equal(t, Breakdown{}, same, "zero nights yields an all-zero breakdown")

	inverted := Calculate(cfg, date(2025, 11, 5), date(2025, 11, 3), 2, 3)
	assert.Equal(t, Breakdown{}, inverted, "negative nights yields an all-zero breakdown")
}

func TestCalculateOffPeakWeekdays(t *testing.T) {
	cfg := testConfig()

	// Mon -> Wed, two weekday nights, single family, no visitors.
	b := Calculate(cfg, date(2025, 11, 3), date(2025, 11, 5), 1, 0)

	assert.Equal(t, int64(80000), b.BasePrice)
	assert.Equal(t, int64(0), b.Options.ExtraFamily, "a single family pays no extra-family fee")
	assert.Equal(t, int64(0), b.Options.Visitor)
	assert.Equal(t, int64(0), b.Discount.Consecutive, "weekday nights earn no consecutive discount")
	assert.Equal(t, int64(80000), b.TotalPrice)
	assert.Equal(t, 2, b.Nights)
}

func TestCalculateAllWeekendDiscount(t *testing.T) {
	cfg := testConfig()

	// Fri -> Sun: two weekend nights, discount is (nights-1) * rate.
	b := Calculate(cfg, date(2025, 11, 7), date(2025, 11, 9), 1, 0)
	assert.Equal(t, int64(100000), b.BasePrice)
	assert.Equal(t, int64(5000), b.Discount.Consecutive)
	assert.Equal(t, int64(95000), b.TotalPrice)

	// Fri -> Mon: three weekend nights.
	b = Calculate(cfg, date(2025, 11, 7), date(2025, 11, 10), 1, 0)
	assert.Equal(t, int64(150000), b.BasePrice)
	assert.Equal(t, int64(10000), b.Discount.Consecutive)

	// A single weekend night earns nothing.
	b = Calculate(cfg, date(2025, 11, 7), date(2025, 11, 8), 1, 0)
	assert.Equal(t, int64(0), b.Discount.Consecutive)
}

func TestCalculateMixedNightsNoDiscount(t *testing.T) {
	cfg := testConfig()

	// Thu -> Sat: Thursday breaks the all-weekend requirement.
	b := Calculate(cfg, date(2025, 11, 6), date(2025, 11, 8), 1, 0)
	assert.Equal(t, int64(90000), b.BasePrice)
	assert.Equal(t, int64(0), b.Discount.Consecutive)
}

func TestCalculatePeakRates(t *testing.T) {
	cfg := testConfig()

	// 2025-08-04 is a Monday inside the summer window.
	b := Calculate(cfg, date(2025, 8, 4), date(2025, 8, 5), 1, 0)
	assert.Equal(t, cfg.PeakWeekday, b.BasePrice)

	// 2025-08-01 is a Friday inside the summer window.
	b = Calculate(cfg, date(2025, 8, 1), date(2025, 8, 2), 1, 0)
	assert.Equal(t, cfg.PeakWeekend, b.BasePrice)
}

func TestCalculateOccupancyFees(t *testing.T) {
	cfg := testConfig()

	// Three families over two nights: two extra families charged per night.
	b := Calculate(cfg, date(2025, 11, 3), date(2025, 11, 5), 3, 0)
	assert.Equal(t, int64(40000), b.Options.ExtraFamily)

	// The visitor fee is one-time, independent of the night count.
	short := Calculate(cfg, date(2025, 11, 3), date(2025, 11, 4), 1, 2)
	long := Calculate(cfg, date(2025, 11, 3), date(2025, 11, 6), 1, 2)
	assert.Equal(t, int64(10000), short.Options.Visitor)
	assert.Equal(t, long.Options.Visitor, short.Options.Visitor)
}

func TestCalculateClampsAtZero(t *testing.T) {
	cfg := testConfig()
	cfg.Weekend = 1000
	cfg.LongStayDiscount = 100000

	b := Calculate(cfg, date(2025, 11, 7), date(2025, 11, 9), 1, 0)
	require.True(t, b.Discount.Consecutive > b.BasePrice)
	assert.Equal(t, int64(0), b.TotalPrice, "total never goes negative")
}
