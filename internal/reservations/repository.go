package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a reservation does not exist.
	ErrNotFound = errors.New("reservation not found")

	// ErrStatusConflict is returned when an optimistic status transition
	// finds the reservation no longer in the expected state.
	ErrStatusConflict = errors.New("reservation status changed concurrently")

	// ErrSiteUnavailable is returned when the requested site already has an
	// active reservation overlapping the stay.
	ErrSiteUnavailable = errors.New("site is already reserved for part of the stay")
)

type Repository interface {
	// Core reservation operations
	CreateWithOverlapCheck(ctx context.Context, reservation *Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Reservation, error)
	ListByStatus(ctx context.Context, status Status) ([]Reservation, error)

	// Sweeper support
	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]Reservation, error)

	// Lifecycle transitions (optimistic, guarded on the expected status)
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to Status, extra map[string]interface{}) error

	// Occupancy queries consumed by the availability service
	HasActiveForSiteDate(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error)
	CountSitesOccupiedOn(ctx context.Context, date time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithOverlapCheck creates a reservation atomically, rejecting it when
// an active reservation for the same site overlaps the requested stay. The
// overlapping rows are locked so two concurrent attempts serialize.
func (r *repository) CreateWithOverlapCheck(ctx context.Context, reservation *Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var overlapping int64
		err := tx.Model(&Reservation{}).
			Set("gorm:query_option", "FOR UPDATE").
			Where("site_id = ?", reservation.SiteID).
			Where("status IN ?", []Status{StatusPending, StatusConfirmed}).
			Where("check_in_date < ? AND check_out_date > ?", reservation.CheckOutDate, reservation.CheckInDate).
			Count(&overlapping).Error
		if err != nil {
			return fmt.Errorf("failed to check overlap: %w", err)
		}
		if overlapping > 0 {
			return ErrSiteUnavailable
		}

		if err := tx.Create(reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reservations).Error
	return reservations, err
}

func (r *repository) ListByStatus(ctx context.Context, status Status) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&reservations).Error
	return reservations, err
}

func (r *repository) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Where("created_at < ?", cutoff).
		Order("created_at ASC").
		Find(&reservations).Error
	return reservations, err
}

// UpdateStatusIf applies a guarded transition. The WHERE clause re-checks
// the expected status at the moment of the update, so a payment that clears
// just before a sweep pass is never overwritten.
func (r *repository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to Status, extra map[string]interface{}) error {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	for k, v := range extra {
		updates[k] = v
	}

	result := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *repository) HasActiveForSiteDate(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("site_id = ?", siteID).
		Where("status IN ?", []Status{StatusPending, StatusConfirmed}).
		Where("check_in_date <= ? AND check_out_date > ?", date, date).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountSitesOccupiedOn(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("status IN ?", []Status{StatusPending, StatusConfirmed}).
		Where("check_in_date <= ? AND check_out_date > ?", date, date).
		Distinct("site_id").
		Count(&count).Error
	return count, err
}
