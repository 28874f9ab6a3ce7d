package reservations

// Status is the reservation lifecycle state.
//
// PENDING is the initial state of every reservation. Payment verification
// moves it to CONFIRMED; the overdue sweep or a user cancellation moves it
// to CANCELLED. A confirmed stay either concludes as COMPLETED or enters
// the refund path via REFUND_PENDING and REFUNDED. NO_SHOW exists in the
// data model but is written administratively, never by a lifecycle
// transition here.
type Status string

const (
	StatusPending       Status = "PENDING"
	StatusConfirmed     Status = "CONFIRMED"
	StatusCompleted     Status = "COMPLETED"
	StatusCancelled     Status = "CANCELLED"
	StatusRefundPending Status = "REFUND_PENDING"
	StatusRefunded      Status = "REFUNDED"
	StatusNoShow        Status = "NO_SHOW"
)

// IsValid checks if the reservation status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled,
		StatusRefundPending, StatusRefunded, StatusNoShow:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition leaves this status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRefunded, StatusNoShow:
		return true
	}
	return false
}

// IsActive reports whether the reservation still occupies its site.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusRefundPending
	case StatusRefundPending:
		return next == StatusRefunded
	}
	return false
}
