package pricing

import (
	"time"

	"github.com/google/uuid"
)

// PricingConfig holds the administrator-maintained nightly rates and fees.
// All monetary values are integer minor units.
type PricingConfig struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Weekday          int64     `gorm:"not null;default:0" json:"weekday"`
	Weekend          int64     `gorm:"not null;default:0" json:"weekend"`
	PeakWeekday      int64     `gorm:"not null;default:0" json:"peak_weekday"`
	PeakWeekend      int64     `gorm:"not null;default:0" json:"peak_weekend"`
	ExtraFamily      int64     `gorm:"not null;default:0" json:"extra_family"`
	Visitor          int64     `gorm:"not null;default:0" json:"visitor"`
	LongStayDiscount int64     `gorm:"not null;default:0" json:"long_stay_discount"`
	Active           bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	Seasons []Season `json:"seasons" gorm:"foreignKey:ConfigID;constraint:OnDelete:CASCADE;"`
}

// Season is a month/day window (no year) with elevated nightly rates.
// Windows must start and end within the same calendar year; cross-year
// windows are rejected at save time.
type Season struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ConfigID   uuid.UUID `gorm:"type:uuid;index;not null" json:"config_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	StartMonth int       `gorm:"not null" json:"start_month"`
	StartDay   int       `gorm:"not null" json:"start_day"`
	EndMonth   int       `gorm:"not null" json:"end_month"`
	EndDay     int       `gorm:"not null" json:"end_day"`
}

// TableName sets the table name for PricingConfig
func (PricingConfig) TableName() string {
	return "pricing_configs"
}

// TableName sets the table name for Season
func (Season) TableName() string {
	return "seasons"
}

// Options holds the per-stay occupant fees of a breakdown.
type Options struct {
	ExtraFamily int64 `json:"extra_family"`
	Visitor     int64 `json:"visitor"`
}

// Discount holds the deductions of a breakdown.
type Discount struct {
	Consecutive int64 `json:"consecutive"`
	Package     int64 `json:"pkg"`
}

// Breakdown is the fully derived price of a stay. It is a value object,
// never persisted.
type Breakdown struct {
	BasePrice  int64    `json:"base_price"`
	Options    Options  `json:"options"`
	Discount   Discount `json:"discount"`
	TotalPrice int64    `json:"total_price"`
	Nights     int      `json:"nights"`
}
