package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMissingConfig is returned when no active pricing config exists. It is
// fatal to quoting and indicates a data-setup problem, not a transient fault.
var ErrMissingConfig = errors.New("no active pricing config")

type Repository interface {
	GetActive(ctx context.Context) (*PricingConfig, error)
	Create(ctx context.Context, cfg *PricingConfig) error
	ReplaceSeasons(ctx context.Context, configID uuid.UUID, seasons []Season) error
	Update(ctx context.Context, cfg *PricingConfig) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetActive(ctx context.Context) (*PricingConfig, error) {
	var cfg PricingConfig
	err := r.db.WithContext(ctx).
		Preload("Seasons").
		Where("active = ?", true).
		Order("updated_at DESC").
		First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissingConfig
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) Create(ctx context.Context, cfg *PricingConfig) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

// ReplaceSeasons swaps out the full season set of a config in one transaction.
func (r *repository) ReplaceSeasons(ctx context.Context, configID uuid.UUID, seasons []Season) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("config_id = ?", configID).Delete(&Season{}).Error; err != nil {
			return err
		}
		for i := range seasons {
			seasons[i].ConfigID = configID
		}
		if len(seasons) == 0 {
			return nil
		}
		return tx.Create(&seasons).Error
	})
}

func (r *repository) Update(ctx context.Context, cfg *PricingConfig) error {
	return r.db.WithContext(ctx).
		Model(&PricingConfig{}).
		Where("id = ?", cfg.ID).
		Updates(map[string]interface{}{
			"weekday":            cfg.Weekday,
			"weekend":            cfg.Weekend,
			"peak_weekday":       cfg.PeakWeekday,
			"peak_weekend":       cfg.PeakWeekend,
			"extra_family":       cfg.ExtraFamily,
			"visitor":            cfg.Visitor,
			"long_stay_discount": cfg.LongStayDiscount,
		}).Error
}
