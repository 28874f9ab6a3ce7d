// Package availability derives the weekend eligibility signals from live
// booking state. The eligibility rules themselves stay pure; this is the
// one place that knows where the signals come from.
package availability

import (
	"context"
	"fmt"
	"time"

	"camply/internal/eligibility"

	"github.com/google/uuid"
)

// BlockedDateSource answers whether a night is administratively closed.
type BlockedDateSource interface {
	IsBlocked(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error)
}

// OccupancySource answers occupancy questions from active reservations.
type OccupancySource interface {
	HasActiveForSiteDate(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error)
	CountSitesOccupiedOn(ctx context.Context, date time.Time) (int64, error)
}

// SiteCounter reports how many active sites the camp has.
type SiteCounter interface {
	CountSites(ctx context.Context) (int64, error)
}

// Service computes eligibility signals for a stay.
type Service interface {
	SignalsFor(ctx context.Context, siteID uuid.UUID, checkIn time.Time) (eligibility.Signals, error)
}

type service struct {
	blocked   BlockedDateSource
	occupancy OccupancySource
	sites     SiteCounter
}

// NewService creates a new availability service instance
func NewService(blocked BlockedDateSource, occupancy OccupancySource, sites SiteCounter) Service {
	return &service{
		blocked:   blocked,
		occupancy: occupancy,
		sites:     sites,
	}
}

// SignalsFor inspects the Saturday night following a Friday check-in.
// For any other check-in day the signals stay false; the end-cap
// exception only exists for Friday one-night stays.
func (s *service) SignalsFor(ctx context.Context, siteID uuid.UUID, checkIn time.Time) (eligibility.Signals, error) {
	var signals eligibility.Signals
	if checkIn.Weekday() != time.Friday {
		return signals, nil
	}

	saturday := checkIn.AddDate(0, 0, 1)

	taken, err := s.occupancy.HasActiveForSiteDate(ctx, siteID, saturday)
	if err != nil {
		return signals, fmt.Errorf("failed to check site occupancy: %w", err)
	}
	// The site cannot host a two-night stay when its Saturday is already
	// spoken for, which is exactly when a Friday-only booking is harmless.
	signals.HasEndCapAvailability = taken

	occupied, err := s.occupancy.CountSitesOccupiedOn(ctx, saturday)
	if err != nil {
		return signals, fmt.Errorf("failed to count occupied sites: %w", err)
	}
	total, err := s.sites.CountSites(ctx)
	if err != nil {
		return signals, fmt.Errorf("failed to count sites: %w", err)
	}
	signals.IsSaturdayFull = total > 0 && occupied >= total

	blocked, err := s.blocked.IsBlocked(ctx, siteID, saturday)
	if err != nil {
		return signals, err
	}
	signals.IsNextDayBlocked = blocked

	return signals, nil
}
