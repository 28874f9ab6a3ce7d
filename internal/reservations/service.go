package reservations

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"camply/internal/eligibility"
	"camply/internal/notifications"
	"camply/internal/pricing"

	"github.com/google/uuid"
)

var (
	// ErrInvalidDateRange is returned when check-out precedes check-in.
	ErrInvalidDateRange = errors.New("check-out must not be earlier than check-in")

	// ErrInvalidOccupancy is returned for negative occupant counts.
	ErrInvalidOccupancy = errors.New("occupant counts must not be negative")

	// ErrOverCapacity is returned when the party exceeds the site's limit.
	ErrOverCapacity = errors.New("party exceeds the site's maximum occupancy")
)

// IneligibleError reports a request blocked by the weekend-fragmentation
// policy. It is a normal, expected outcome; the embedded result lets the
// caller present the specific reason rather than a generic rejection.
type IneligibleError struct {
	Result eligibility.Result
}

func (e *IneligibleError) Error() string {
	return "date range blocked by the weekend one-night policy"
}

// PricingService interface for quote computation (to avoid circular dependency)
type PricingService interface {
	Quote(ctx context.Context, checkIn, checkOut time.Time, familyCount, visitorCount int) (*pricing.Breakdown, error)
}

// AvailabilityProvider supplies the externally computed eligibility signals.
type AvailabilityProvider interface {
	SignalsFor(ctx context.Context, siteID uuid.UUID, checkIn time.Time) (eligibility.Signals, error)
}

// SiteInfo carries the catalog facts the reservation flow needs.
type SiteInfo struct {
	ID           uuid.UUID
	Name         string
	MaxOccupancy int
}

// SiteCatalog interface for site lookups (to avoid circular dependency)
type SiteCatalog interface {
	GetSiteInfo(ctx context.Context, id uuid.UUID) (*SiteInfo, error)
}

// Service interface defines the contract for reservation business logic
type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req CreateReservationRequest) (*Reservation, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error)
	GetUserReservations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Reservation, error)

	ConfirmPayment(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id, userID uuid.UUID) error
	RequestRefund(ctx context.Context, id, userID uuid.UUID) error
	ProcessRefund(ctx context.Context, id uuid.UUID) (*Reservation, error)
	Complete(ctx context.Context, id uuid.UUID) error

	SweepOverdue(ctx context.Context, now time.Time) (*SweepResult, error)
}

// RefundCalculator computes the refund owed on a cancelled stay. Injected
// so tests can pin the rate table independently.
type RefundCalculator func(totalPrice int64, checkIn, now time.Time) int64

// service implements the Service interface
type service struct {
	repo            Repository
	pricingService  PricingService
	availability    AvailabilityProvider
	sites           SiteCatalog
	producer        notifications.Producer
	refundAmount    RefundCalculator
	paymentDeadline time.Duration
	now             func() time.Time
}

// Option configures optional service dependencies.
type Option func(*service)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithPaymentDeadline overrides the unpaid-reservation deadline.
func WithPaymentDeadline(d time.Duration) Option {
	return func(s *service) { s.paymentDeadline = d }
}

// WithProducer attaches the reservation event producer. A nil producer
// simply disables event publishing.
func WithProducer(p notifications.Producer) Option {
	return func(s *service) { s.producer = p }
}

// NewService creates a new reservation service instance
func NewService(repo Repository, pricingService PricingService, availability AvailabilityProvider, sites SiteCatalog, refundAmount RefundCalculator, opts ...Option) Service {
	s := &service{
		repo:            repo,
		pricingService:  pricingService,
		availability:    availability,
		sites:           sites,
		refundAmount:    refundAmount,
		paymentDeadline: DefaultPaymentDeadline,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Quote validates a candidate stay and prices it without creating anything.
// An ineligible range still returns the eligibility result so the booking
// form can explain the block.
func (s *service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	site, checkIn, checkOut, err := s.resolveStay(ctx, req.SiteID, req.CheckIn, req.CheckOut, req.FamilyCount, req.VisitorCount)
	if err != nil {
		return nil, err
	}

	signals, err := s.availability.SignalsFor(ctx, site.ID, checkIn)
	if err != nil {
		return nil, fmt.Errorf("failed to compute availability signals: %w", err)
	}
	result := eligibility.Validate(&checkIn, &checkOut, s.now(), signals)

	breakdown, err := s.pricingService.Quote(ctx, checkIn, checkOut, req.FamilyCount, req.VisitorCount)
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		SiteID:      site.ID.String(),
		SiteName:    site.Name,
		Breakdown:   *breakdown,
		Eligibility: result,
	}, nil
}

// Create validates, prices and persists a new reservation in PENDING.
func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateReservationRequest) (*Reservation, error) {
	site, checkIn, checkOut, err := s.resolveStay(ctx, req.SiteID, req.CheckIn, req.CheckOut, req.FamilyCount, req.VisitorCount)
	if err != nil {
		return nil, err
	}

	signals, err := s.availability.SignalsFor(ctx, site.ID, checkIn)
	if err != nil {
		return nil, fmt.Errorf("failed to compute availability signals: %w", err)
	}
	if result := eligibility.Validate(&checkIn, &checkOut, s.now(), signals); result.IsBlocked {
		return nil, &IneligibleError{Result: result}
	}

	breakdown, err := s.pricingService.Quote(ctx, checkIn, checkOut, req.FamilyCount, req.VisitorCount)
	if err != nil {
		return nil, err
	}

	reservation := &Reservation{
		UserID:       userID,
		SiteID:       site.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		FamilyCount:  req.FamilyCount,
		VisitorCount: req.VisitorCount,
		VehicleCount: req.VehicleCount,
		TotalPrice:   breakdown.TotalPrice,
		Status:       StatusPending,
	}

	if err := s.repo.CreateWithOverlapCheck(ctx, reservation); err != nil {
		return nil, err
	}

	s.publish(ctx, notifications.EventReservationCreated, reservation)
	return reservation, nil
}

// GetReservation retrieves a reservation by ID
func (s *service) GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

// GetUserReservations retrieves reservations for a specific user
func (s *service) GetUserReservations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Reservation, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

// ConfirmPayment moves a PENDING reservation to CONFIRMED.
func (s *service) ConfirmPayment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.UpdateStatusIf(ctx, id, StatusPending, StatusConfirmed, nil); err != nil {
		return fmt.Errorf("failed to confirm reservation: %w", err)
	}

	s.publishByID(ctx, notifications.EventReservationConfirmed, id)
	return nil
}

// Cancel lets a user withdraw their own unpaid reservation.
func (s *service) Cancel(ctx context.Context, id, userID uuid.UUID) error {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reservation.UserID != userID {
		return fmt.Errorf("unauthorized: reservation does not belong to user")
	}

	now := s.now()
	err = s.repo.UpdateStatusIf(ctx, id, StatusPending, StatusCancelled, map[string]interface{}{
		"cancelled_at": now,
	})
	if err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	s.publish(ctx, notifications.EventReservationCancelled, reservation)
	return nil
}

// RequestRefund moves a CONFIRMED reservation into the refund path,
// recording the request time the refund amount is later computed from.
func (s *service) RequestRefund(ctx context.Context, id, userID uuid.UUID) error {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reservation.UserID != userID {
		return fmt.Errorf("unauthorized: reservation does not belong to user")
	}

	err = s.repo.UpdateStatusIf(ctx, id, StatusConfirmed, StatusRefundPending, map[string]interface{}{
		"refund_requested_at": s.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to request refund: %w", err)
	}

	s.publish(ctx, notifications.EventRefundRequested, reservation)
	return nil
}

// ProcessRefund settles a REFUND_PENDING reservation. The amount is derived
// from the original check-in date and the time the cancellation was
// requested, not the time an administrator gets around to processing it.
func (s *service) ProcessRefund(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.Status != StatusRefundPending {
		return nil, fmt.Errorf("reservation is not awaiting a refund: %w", ErrStatusConflict)
	}

	requestedAt := s.now()
	if reservation.RefundRequestedAt != nil {
		requestedAt = *reservation.RefundRequestedAt
	}
	amount := s.refundAmount(reservation.TotalPrice, reservation.CheckInDate, requestedAt)

	err = s.repo.UpdateStatusIf(ctx, id, StatusRefundPending, StatusRefunded, map[string]interface{}{
		"refund_amount": amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process refund: %w", err)
	}

	reservation.Status = StatusRefunded
	reservation.RefundAmount = &amount
	s.publish(ctx, notifications.EventRefundProcessed, reservation)
	return reservation, nil
}

// Complete marks a concluded stay.
func (s *service) Complete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.UpdateStatusIf(ctx, id, StatusConfirmed, StatusCompleted, nil); err != nil {
		return fmt.Errorf("failed to complete reservation: %w", err)
	}
	return nil
}

// SweepOverdue cancels unpaid PENDING reservations past the payment
// deadline. Each cancellation is an independent optimistic transition: a
// reservation confirmed between listing and cancelling is skipped, and a
// failure on one never aborts the rest of the batch.
func (s *service) SweepOverdue(ctx context.Context, now time.Time) (*SweepResult, error) {
	cutoff := now.Add(-s.paymentDeadline)
	pending, err := s.repo.ListPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue reservations: %w", err)
	}

	byID := make(map[uuid.UUID]Reservation, len(pending))
	for _, r := range pending {
		byID[r.ID] = r
	}

	result := &SweepResult{}
	for _, id := range FindOverdue(pending, now, s.paymentDeadline) {
		reservation := byID[id]
		err := s.repo.UpdateStatusIf(ctx, reservation.ID, StatusPending, StatusCancelled, map[string]interface{}{
			"cancelled_at": now,
		})
		if errors.Is(err, ErrStatusConflict) {
			// Payment cleared between the listing and this transition.
			result.Skipped++
			continue
		}
		if err != nil {
			if result.Failed == nil {
				result.Failed = make(map[uuid.UUID]string)
			}
			result.Failed[reservation.ID] = err.Error()
			continue
		}

		result.CancelledIDs = append(result.CancelledIDs, reservation.ID)
		s.publish(ctx, notifications.EventOverdueSwept, &reservation)
	}

	return result, nil
}

// resolveStay parses and validates the shared quote/create inputs.
func (s *service) resolveStay(ctx context.Context, siteID, checkInStr, checkOutStr string, familyCount, visitorCount int) (*SiteInfo, time.Time, time.Time, error) {
	var zero time.Time

	id, err := uuid.Parse(siteID)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid site id: %w", err)
	}

	site, err := s.sites.GetSiteInfo(ctx, id)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("failed to resolve site: %w", err)
	}

	checkIn, err := time.ParseInLocation(dateLayout, checkInStr, time.Local)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := time.ParseInLocation(dateLayout, checkOutStr, time.Local)
	if err != nil {
		return nil, zero, zero, fmt.Errorf("invalid check-out date: %w", err)
	}

	if checkOut.Before(checkIn) {
		return nil, zero, zero, ErrInvalidDateRange
	}
	if familyCount < 0 || visitorCount < 0 {
		return nil, zero, zero, ErrInvalidOccupancy
	}
	if site.MaxOccupancy > 0 && familyCount+visitorCount > site.MaxOccupancy {
		return nil, zero, zero, ErrOverCapacity
	}

	return site, checkIn, checkOut, nil
}

func (s *service) publish(ctx context.Context, eventType notifications.ReservationEventType, reservation *Reservation) {
	if s.producer == nil {
		return
	}

	event := notifications.NewReservationEvent(eventType, reservation.ID, reservation.UserID, reservation.SiteID)
	event.CheckInDate = reservation.CheckInDate
	event.TotalPrice = reservation.TotalPrice
	event.RefundAmount = reservation.RefundAmount

	if err := s.producer.PublishReservationEvent(ctx, event); err != nil {
		// Publishing is best effort; the state change already happened.
		log.Printf("Warning: failed to publish %s for reservation %s: %v", eventType, reservation.ID, err)
	}
}

func (s *service) publishByID(ctx context.Context, eventType notifications.ReservationEventType, id uuid.UUID) {
	if s.producer == nil {
		return
	}

	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Warning: failed to load reservation %s for %s event: %v", id, eventType, err)
		return
	}
	s.publish(ctx, eventType, reservation)
}
