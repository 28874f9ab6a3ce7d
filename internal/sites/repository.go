package sites

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a site does not exist.
var ErrNotFound = errors.New("site not found")

type Repository interface {
	Create(ctx context.Context, site *Site) error
	GetByID(ctx context.Context, id uuid.UUID) (*Site, error)
	ListActive(ctx context.Context) ([]Site, error)
	Update(ctx context.Context, site *Site) error
	CountActive(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, site *Site) error {
	return r.db.WithContext(ctx).Create(site).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Site, error) {
	var site Site
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&site).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &site, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Site, error) {
	var sites []Site
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&sites).Error
	return sites, err
}

func (r *repository) Update(ctx context.Context, site *Site) error {
	return r.db.WithContext(ctx).Save(site).Error
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Site{}).
		Where("active = ?", true).
		Count(&count).Error
	return count, err
}
