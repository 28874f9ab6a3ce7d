package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReservationEventType identifies a lifecycle moment worth announcing.
type ReservationEventType string

const (
	EventReservationCreated   ReservationEventType = "RESERVATION_CREATED"
	EventReservationConfirmed ReservationEventType = "RESERVATION_CONFIRMED"
	EventReservationCancelled ReservationEventType = "RESERVATION_CANCELLED"
	EventRefundRequested      ReservationEventType = "REFUND_REQUESTED"
	EventRefundProcessed      ReservationEventType = "REFUND_PROCESSED"
	EventOverdueSwept         ReservationEventType = "OVERDUE_SWEPT"
)

// ReservationEvent is the message published to Kafka when a reservation
// changes state. Downstream delivery (push, email) is handled elsewhere.
type ReservationEvent struct {
	ID            uuid.UUID            `json:"id"`
	Type          ReservationEventType `json:"type"`
	ReservationID uuid.UUID            `json:"reservation_id"`
	UserID        uuid.UUID            `json:"user_id"`
	SiteID        uuid.UUID            `json:"site_id"`
	CheckInDate   time.Time            `json:"check_in_date"`
	TotalPrice    int64                `json:"total_price"`
	RefundAmount  *int64               `json:"refund_amount,omitempty"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// NewReservationEvent builds an event with a fresh id and timestamp.
func NewReservationEvent(eventType ReservationEventType, reservationID, userID, siteID uuid.UUID) *ReservationEvent {
	return &ReservationEvent{
		ID:            uuid.New(),
		Type:          eventType,
		ReservationID: reservationID,
		UserID:        userID,
		SiteID:        siteID,
		OccurredAt:    time.Now(),
	}
}

// ToJSON serializes the event for the wire.
func (e *ReservationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events of one user to the same partition so
// per-user ordering is preserved.
func (e *ReservationEvent) PartitionKey() string {
	return e.UserID.String()
}
