package availability

import (
	"context"
	"testing"
	"time"

	"camply/internal/eligibility"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlocked struct {
	blockedDates map[string]bool
}

func (f *fakeBlocked) IsBlocked(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error) {
	return f.blockedDates[date.Format("2006-01-02")], nil
}

type fakeOccupancy struct {
	siteTaken     bool
	occupiedCount int64
}

func (f *fakeOccupancy) HasActiveForSiteDate(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error) {
	return f.siteTaken, nil
}

func (f *fakeOccupancy) CountSitesOccupiedOn(ctx context.Context, date time.Time) (int64, error) {
	return f.occupiedCount, nil
}

type fakeCounter struct {
	total int64
}

func (f *fakeCounter) CountSites(ctx context.Context) (int64, error) {
	return f.total, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSignalsForNonFridayCheckIn(t *testing.T) {
	svc := NewService(
		&fakeBlocked{blockedDates: map[string]bool{"2025-11-30": true}},
		&fakeOccupancy{siteTaken: true, occupiedCount: 5},
		&fakeCounter{total: 5},
	)

	// 2025-11-29 is a Saturday; nothing is consulted and all signals
	// stay false.
	signals, err := svc.SignalsFor(context.Background(), uuid.New(), date(2025, 11, 29))
	require.NoError(t, err)
	assert.Equal(t, eligibility.Signals{}, signals)
}

func TestSignalsForFridayCheckIn(t *testing.T) {
	friday := date(2025, 11, 28)

	t.Run("saturday taken on the site", func(t *testing.T) {
		svc := NewService(&fakeBlocked{}, &fakeOccupancy{siteTaken: true}, &fakeCounter{total: 5})

		signals, err := svc.SignalsFor(context.Background(), uuid.New(), friday)
		require.NoError(t, err)
		assert.True(t, signals.HasEndCapAvailability)
		assert.False(t, signals.IsSaturdayFull)
	})

	t.Run("camp full on saturday", func(t *testing.T) {
		svc := NewService(&fakeBlocked{}, &fakeOccupancy{occupiedCount: 5}, &fakeCounter{total: 5})

		signals, err := svc.SignalsFor(context.Background(), uuid.New(), friday)
		require.NoError(t, err)
		assert.True(t, signals.IsSaturdayFull)
	})

	t.Run("camp not full with free sites", func(t *testing.T) {
		svc := NewService(&fakeBlocked{}, &fakeOccupancy{occupiedCount: 3}, &fakeCounter{total: 5})

		signals, err := svc.SignalsFor(context.Background(), uuid.New(), friday)
		require.NoError(t, err)
		assert.False(t, signals.IsSaturdayFull)
	})

	t.Run("zero sites never counts as full", func(t *testing.T) {
		svc := NewService(&fakeBlocked{}, &fakeOccupancy{}, &fakeCounter{total: 0})

		signals, err := svc.SignalsFor(context.Background(), uuid.New(), friday)
		require.NoError(t, err)
		assert.False(t, signals.IsSaturdayFull)
	})

	t.Run("saturday administratively blocked", func(t *testing.T) {
		svc := NewService(
			&fakeBlocked{blockedDates: map[string]bool{"2025-11-29": true}},
			&fakeOccupancy{},
			&fakeCounter{total: 5},
		)

		signals, err := svc.SignalsFor(context.Background(), uuid.New(), friday)
		require.NoError(t, err)
		assert.True(t, signals.IsNextDayBlocked)
	})
}
