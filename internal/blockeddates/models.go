package blockeddates

import (
	"time"

	"github.com/google/uuid"
)

// BlockedDate marks a night an administrator has closed for maintenance
// or events. A nil SiteID blocks the whole camp for that night.
type BlockedDate struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SiteID    *uuid.UUID `gorm:"type:uuid;index:idx_blocked_site_date" json:"site_id,omitempty"`
	Date      time.Time  `gorm:"type:date;not null;index:idx_blocked_site_date" json:"date"`
	Memo      string     `gorm:"type:varchar(255)" json:"memo"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName sets the table name for BlockedDate
func (BlockedDate) TableName() string {
	return "blocked_dates"
}

// AppliesTo reports whether the block covers the given site.
func (b BlockedDate) AppliesTo(siteID uuid.UUID) bool {
	return b.SiteID == nil || *b.SiteID == siteID
}

// BlockedDateRequest is the admin payload for closing a night.
type BlockedDateRequest struct {
	SiteID *string `json:"site_id" binding:"omitempty,uuid"`
	Date   string  `json:"date" binding:"required,datetime=2006-01-02"`
	Memo   string  `json:"memo" binding:"max=255"`
}
