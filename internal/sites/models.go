package sites

import (
	"time"

	"github.com/google/uuid"
)

// Site is a bookable camp site. Reference data owned by administrators;
// the rules engine only reads it.
type Site struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Zone         string    `gorm:"type:varchar(50)" json:"zone"`
	BasePrice    int64     `gorm:"not null;default:0" json:"base_price"`
	Price        int64     `gorm:"not null;default:0" json:"price"`
	MaxOccupancy int       `gorm:"not null;default:0" json:"max_occupancy"`
	Active       bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the table name for Site
func (Site) TableName() string {
	return "sites"
}

// SiteRequest is the admin payload for creating or updating a site.
type SiteRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Description  string `json:"description"`
	Zone         string `json:"zone"`
	BasePrice    int64  `json:"base_price" binding:"min=0"`
	Price        int64  `json:"price" binding:"min=0"`
	MaxOccupancy int    `json:"max_occupancy" binding:"min=0"`
	Active       *bool  `json:"active"`
}
