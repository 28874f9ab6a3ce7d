package reservations

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"camply/internal/eligibility"
	"camply/internal/pricing"
	"camply/internal/refund"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	mu           sync.Mutex
	reservations map[uuid.UUID]*Reservation
	updateErrs   map[uuid.UUID]error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		reservations: make(map[uuid.UUID]*Reservation),
		updateErrs:   make(map[uuid.UUID]error),
	}
}

func (f *fakeRepo) add(r *Reservation) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.reservations[r.ID] = r
}

func (f *fakeRepo) CreateWithOverlapCheck(ctx context.Context, r *Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.reservations {
		if existing.SiteID != r.SiteID || !existing.Status.IsActive() {
			continue
		}
		if existing.CheckInDate.Before(r.CheckOutDate) && r.CheckInDate.Before(existing.CheckOutDate) {
			return ErrSiteUnavailable
		}
	}
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	f.reservations[r.ID] = r
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByStatus(ctx context.Context, status Status) ([]Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Reservation
	for _, r := range f.reservations {
		if r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Reservation
	for _, r := range f.reservations {
		if r.Status == StatusPending && r.CreatedAt.Before(cutoff) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to Status, extra map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.updateErrs[id]; ok {
		return err
	}
	r, ok := f.reservations[id]
	if !ok {
		return ErrNotFound
	}
	if r.Status != from {
		return ErrStatusConflict
	}
	r.Status = to
	if amount, ok := extra["refund_amount"].(int64); ok {
		r.RefundAmount = &amount
	}
	return nil
}

func (f *fakeRepo) HasActiveForSiteDate(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error) {
	return false, nil
}

func (f *fakeRepo) CountSitesOccupiedOn(ctx context.Context, date time.Time) (int64, error) {
	return 0, nil
}

// fakePricing returns a fixed breakdown.
type fakePricing struct {
	breakdown pricing.Breakdown
}

func (f *fakePricing) Quote(ctx context.Context, checkIn, checkOut time.Time, familyCount, visitorCount int) (*pricing.Breakdown, error) {
	b := f.breakdown
	return &b, nil
}

// fakeAvailability returns fixed signals.
type fakeAvailability struct {
	signals eligibility.Signals
}

func (f *fakeAvailability) SignalsFor(ctx context.Context, siteID uuid.UUID, checkIn time.Time) (eligibility.Signals, error) {
	return f.signals, nil
}

// fakeCatalog returns one known site.
type fakeCatalog struct {
	site SiteInfo
}

func (f *fakeCatalog) GetSiteInfo(ctx context.Context, id uuid.UUID) (*SiteInfo, error) {
	s := f.site
	return &s, nil
}

func newTestService(repo *fakeRepo, now time.Time, sig eligibility.Signals) Service {
	site := SiteInfo{ID: uuid.New(), Name: "A-1", MaxOccupancy: 6}
	return NewService(
		repo,
		&fakePricing{breakdown: pricing.Breakdown{TotalPrice: 100000, Nights: 1}},
		&fakeAvailability{signals: sig},
		&fakeCatalog{site: site},
		refund.Amount,
		WithClock(func() time.Time { return now }),
	)
}

func TestCreateBlockedByWeekendPolicy(t *testing.T) {
	repo := newFakeRepo()
	// Booking a lone Friday night (2025-11-28) four weeks out.
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, time.Local)
	svc := newTestService(repo, now, eligibility.Signals{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateReservationRequest{
		SiteID:   uuid.New().String(),
		CheckIn:  "2025-11-28",
		CheckOut: "2025-11-29",
	})

	var ineligible *IneligibleError
	require.ErrorAs(t, err, &ineligible)
	assert.True(t, ineligible.Result.IsBlocked)
	assert.Empty(t, repo.reservations, "nothing persisted for a blocked request")
}

func TestCreateAllowedWithEndCapSignal(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, time.Local)
	svc := newTestService(repo, now, eligibility.Signals{IsNextDayBlocked: true})

	reservation, err := svc.Create(context.Background(), uuid.New(), CreateReservationRequest{
		SiteID:   uuid.New().String(),
		CheckIn:  "2025-11-28",
		CheckOut: "2025-11-29",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusPending, reservation.Status)
	assert.Equal(t, int64(100000), reservation.TotalPrice)
}

func TestCreateRejectsOverCapacity(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, time.Local)
	svc := newTestService(repo, now, eligibility.Signals{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateReservationRequest{
		SiteID:       uuid.New().String(),
		CheckIn:      "2025-11-03",
		CheckOut:     "2025-11-05",
		FamilyCount:  5,
		VisitorCount: 5,
	})

	assert.ErrorIs(t, err, ErrOverCapacity)
}

func TestConfirmPaymentStatusConflict(t *testing.T) {
	repo := newFakeRepo()
	now := time.Now()
	svc := newTestService(repo, now, eligibility.Signals{})

	r := &Reservation{UserID: uuid.New(), Status: StatusCancelled}
	repo.add(r)

	err := svc.ConfirmPayment(context.Background(), r.ID)
	assert.ErrorIs(t, err, ErrStatusConflict)
}

func TestCancelRequiresOwnership(t *testing.T) {
	repo := newFakeRepo()
	now := time.Now()
	svc := newTestService(repo, now, eligibility.Signals{})

	owner := uuid.New()
	r := &Reservation{UserID: owner, Status: StatusPending}
	repo.add(r)

	err := svc.Cancel(context.Background(), r.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, StatusPending, repo.reservations[r.ID].Status)

	require.NoError(t, svc.Cancel(context.Background(), r.ID, owner))
	assert.Equal(t, StatusCancelled, repo.reservations[r.ID].Status)
}

func TestProcessRefundUsesRequestTime(t *testing.T) {
	repo := newFakeRepo()
	processedAt := time.Date(2025, 12, 9, 10, 0, 0, 0, time.Local)
	svc := newTestService(repo, processedAt, eligibility.Signals{})

	// The user asked five days before check-in (50%); the administrator
	// only processes it the day before (which would pay 0%).
	requestedAt := time.Date(2025, 12, 5, 9, 0, 0, 0, time.Local)
	r := &Reservation{
		UserID:            uuid.New(),
		Status:            StatusRefundPending,
		CheckInDate:       time.Date(2025, 12, 10, 0, 0, 0, 0, time.Local),
		TotalPrice:        100000,
		RefundRequestedAt: &requestedAt,
	}
	repo.add(r)

	updated, err := svc.ProcessRefund(context.Background(), r.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.RefundAmount)
	assert.Equal(t, int64(50000), *updated.RefundAmount)
	assert.Equal(t, StatusRefunded, updated.Status)
}

func TestSweepOverdue(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.Local)
	svc := newTestService(repo, now, eligibility.Signals{})

	overdue := &Reservation{UserID: uuid.New(), Status: StatusPending, CreatedAt: now.Add(-25 * time.Hour)}
	fresh := &Reservation{UserID: uuid.New(), Status: StatusPending, CreatedAt: now.Add(-23 * time.Hour)}
	repo.add(overdue)
	repo.add(fresh)

	result, err := svc.SweepOverdue(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{overdue.ID}, result.CancelledIDs)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Failed)
	assert.Equal(t, StatusCancelled, repo.reservations[overdue.ID].Status)
	assert.Equal(t, StatusPending, repo.reservations[fresh.ID].Status)
}

func TestSweepOverdueSkipsConcurrentlyPaid(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.Local)
	svc := newTestService(repo, now, eligibility.Signals{})

	raced := &Reservation{UserID: uuid.New(), Status: StatusPending, CreatedAt: now.Add(-25 * time.Hour)}
	repo.add(raced)
	// Payment lands between the listing and the transition.
	repo.updateErrs[raced.ID] = ErrStatusConflict

	result, err := svc.SweepOverdue(context.Background(), now)
	require.NoError(t, err)

	assert.Empty(t, result.CancelledIDs)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Failed)
}

func TestSweepOverduePartialFailure(t *testing.T) {
	repo := newFakeRepo()
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.Local)
	svc := newTestService(repo, now, eligibility.Signals{})

	broken := &Reservation{UserID: uuid.New(), Status: StatusPending, CreatedAt: now.Add(-26 * time.Hour)}
	healthy := &Reservation{UserID: uuid.New(), Status: StatusPending, CreatedAt: now.Add(-26 * time.Hour)}
	repo.add(broken)
	repo.add(healthy)
	repo.updateErrs[broken.ID] = errors.New("connection reset")

	result, err := svc.SweepOverdue(context.Background(), now)
	require.NoError(t, err, "one bad row never aborts the batch")

	assert.Equal(t, []uuid.UUID{healthy.ID}, result.CancelledIDs)
	assert.Contains(t, result.Failed, broken.ID)
	assert.Equal(t, StatusCancelled, repo.reservations[healthy.ID].Status)
	assert.Equal(t, StatusPending, repo.reservations[broken.ID].Status)
}
