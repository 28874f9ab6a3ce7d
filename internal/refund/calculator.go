// Package refund computes cancellation refunds from remaining lead time.
package refund

import (
	"time"

	"camply/internal/eligibility"
)

// Rate returns the refund percentage for a cancellation happening at now,
// based on the calendar-day lead time to check-in (midnight-to-midnight).
// The rate is always one of {0, 20, 30, 40, 50, 90, 100} and never
// decreases as lead time grows.
func Rate(checkIn, now time.Time) int {
	daysUntil := eligibility.DaysBetween(now, checkIn)

	switch {
	case daysUntil <= 1:
		return 0
	case daysUntil == 2:
		return 20
	case daysUntil == 3:
		return 30
	case daysUntil == 4:
		return 40
	case daysUntil == 5:
		return 50
	case daysUntil == 6:
		return 90
	default:
		return 100
	}
}

// Amount returns the refund owed on a cancelled reservation, rounded
// half-up to the nearest minor unit.
func Amount(totalPrice int64, checkIn, now time.Time) int64 {
	rate := int64(Rate(checkIn, now))
	return (totalPrice*rate + 50) / 100
}
