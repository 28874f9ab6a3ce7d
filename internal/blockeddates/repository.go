package blockeddates

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a blocked date does not exist.
var ErrNotFound = errors.New("blocked date not found")

type Repository interface {
	Create(ctx context.Context, blocked *BlockedDate) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByRange(ctx context.Context, from, to time.Time) ([]BlockedDate, error)
	ExistsFor(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, blocked *BlockedDate) error {
	return r.db.WithContext(ctx).Create(blocked).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BlockedDate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) ListByRange(ctx context.Context, from, to time.Time) ([]BlockedDate, error) {
	var blocked []BlockedDate
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&blocked).Error
	return blocked, err
}

// ExistsFor reports whether the night is closed for the site, either by a
// site-specific block or a camp-wide one.
func (r *repository) ExistsFor(ctx context.Context, siteID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BlockedDate{}).
		Where("date = ? AND (site_id IS NULL OR site_id = ?)", date, siteID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
