package reservations

import (
	"time"

	"camply/internal/pricing"

	"github.com/google/uuid"
)

// Reservation defines the main reservation structure. Dates and price are
// never rewritten after creation; a changed stay is a new reservation.
type Reservation struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	SiteID       uuid.UUID `gorm:"type:uuid;index;not null" json:"site_id"`
	CheckInDate  time.Time `gorm:"not null" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"not null" json:"check_out_date"`
	FamilyCount  int       `gorm:"not null;default:1" json:"family_count"`
	VisitorCount int       `gorm:"not null;default:0" json:"visitor_count"`
	VehicleCount int       `gorm:"not null;default:0" json:"vehicle_count"`
	TotalPrice   int64     `gorm:"not null" json:"total_price"`
	Status       Status    `gorm:"type:varchar(20);index;default:'PENDING'" json:"status"`

	RefundRequestedAt *time.Time `json:"refund_requested_at,omitempty"`
	RefundAmount      *int64     `json:"refund_amount,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

// Nights returns the stay length in nights.
func (r *Reservation) Nights() int {
	return pricing.Nights(r.CheckInDate, r.CheckOutDate)
}

// IsPending reports whether the reservation is awaiting payment.
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// CoversNight reports whether the reservation occupies the night starting
// on the given date.
func (r *Reservation) CoversNight(date time.Time) bool {
	return !date.Before(r.CheckInDate) && date.Before(r.CheckOutDate)
}
