package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonContains(t *testing.T) {
	summer := Season{Name: "summer", StartMonth: 7, StartDay: 15, EndMonth: 8, EndDay: 24}

	assert.True(t, summer.Contains(time.July, 15), "start day is inclusive")
	assert.True(t, summer.Contains(time.August, 24), "end day is inclusive")
	assert.True(t, summer.Contains(time.August, 1))
	assert.False(t, summer.Contains(time.July, 14))
	assert.False(t, summer.Contains(time.August, 25))
	assert.False(t, summer.Contains(time.December, 1))
}

func TestSeasonSpansYearBoundary(t *testing.T) {
	assert.False(t, Season{StartMonth: 7, StartDay: 15, EndMonth: 8, EndDay: 24}.SpansYearBoundary())
	assert.False(t, Season{StartMonth: 3, StartDay: 1, EndMonth: 3, EndDay: 1}.SpansYearBoundary())
	assert.True(t, Season{StartMonth: 12, StartDay: 20, EndMonth: 1, EndDay: 5}.SpansYearBoundary())
}

func TestIsPeakDate(t *testing.T) {
	seasons := []Season{
		{Name: "summer", StartMonth: 7, StartDay: 15, EndMonth: 8, EndDay: 24},
		{Name: "autumn", StartMonth: 10, StartDay: 20, EndMonth: 11, EndDay: 10},
	}

	assert.True(t, IsPeakDate(time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local), seasons))
	assert.True(t, IsPeakDate(time.Date(2025, 10, 25, 0, 0, 0, 0, time.Local), seasons))
	assert.False(t, IsPeakDate(time.Date(2025, 9, 15, 0, 0, 0, 0, time.Local), seasons))
	assert.False(t, IsPeakDate(time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local), nil), "no seasons means no peak dates")

	// The window is evaluated against the date's own year, so it applies
	// every year.
	assert.True(t, IsPeakDate(time.Date(2030, 8, 1, 0, 0, 0, 0, time.Local), seasons))
}
