package reservations

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPaymentDeadline is how long a PENDING reservation may remain
// unpaid before the sweep selects it for cancellation.
const DefaultPaymentDeadline = 24 * time.Hour

// FindOverdue selects the ids of reservations that are still PENDING and
// were created more than deadline before now. It is a pure helper; applying
// the cancellations is the service's job, one independent transition per
// reservation.
func FindOverdue(reservations []Reservation, now time.Time, deadline time.Duration) []uuid.UUID {
	var overdue []uuid.UUID
	for _, r := range reservations {
		if r.Status != StatusPending {
			continue
		}
		if now.Sub(r.CreatedAt) > deadline {
			overdue = append(overdue, r.ID)
		}
	}
	return overdue
}

// SweepResult reports the outcome of one overdue sweep. Partial completion
// is an expected outcome, not an error state.
type SweepResult struct {
	CancelledIDs []uuid.UUID          `json:"cancelled_ids"`
	Failed       map[uuid.UUID]string `json:"failed,omitempty"`
	Skipped      int                  `json:"skipped"`
}
