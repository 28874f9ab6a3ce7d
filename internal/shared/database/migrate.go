package database

import (
	"camply/internal/blockeddates"
	"camply/internal/pricing"
	"camply/internal/reservations"
	"camply/internal/sites"
	"camply/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&sites.Site{},
		&pricing.PricingConfig{},
		&pricing.Season{},
		&blockeddates.BlockedDate{},
		&reservations.Reservation{},
	)
}
