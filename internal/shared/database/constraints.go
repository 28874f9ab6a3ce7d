package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Overlap checks scan active reservations for one site; keep that
	// path on an index.
	err := db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_reservations_site_status_dates
		ON reservations (site_id, status, check_in_date, check_out_date);
	`).Error
	if err != nil {
		return err
	}

	// The overdue sweep selects PENDING rows by creation time.
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_reservations_status_created_at
		ON reservations (status, created_at);
	`).Error
	if err != nil {
		return err
	}

	// One block per night per site (or per camp when site_id is null).
	err = db.Exec(`
		CREATE UNIQUE INDEX CONCURRENTLY IF NOT EXISTS unique_blocked_site_date
		ON blocked_dates (COALESCE(site_id, '00000000-0000-0000-0000-000000000000'::uuid), date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
