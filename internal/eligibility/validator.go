// Package eligibility implements the weekend-fragmentation booking policy.
//
// A lone Friday or Saturday night strands the adjacent weekend night as
// unsellable as a two-night package, so such requests are blocked unless the
// fragmentation causes no real loss: either check-in is close enough that
// nobody would book the adjacent night anyway, or the adjacent Saturday is
// already unsellable for independent reasons.
package eligibility

import (
	"math"
	"time"
)

// LeadTimeWindowDays is the lead time under which a one-night weekend stay
// is allowed through: within this many days of check-in the adjacent night
// is realistically not going to sell either.
const LeadTimeWindowDays = 7

// Signals carries the externally computed availability facts a Friday
// end-cap decision depends on. They are supplied by the caller so the
// validator stays pure and side-effect free.
type Signals struct {
	HasEndCapAvailability bool `json:"has_end_cap_availability"`
	IsSaturdayFull        bool `json:"is_saturday_full"`
	IsNextDayBlocked      bool `json:"is_next_day_blocked"`
}

// Result is the full eligibility decision. It is derived entirely from the
// inputs and never persisted.
type Result struct {
	IsFridayOneNight bool `json:"is_friday_one_night"`
	IsWithinWindow   bool `json:"is_within_window"`
	IsEndCap         bool `json:"is_end_cap"`
	IsBlocked        bool `json:"is_blocked"`
}

// Validate decides whether a candidate date range is blocked by the
// weekend-fragmentation policy.
//
// A nil checkIn means nothing to evaluate yet (a partially filled form) and
// returns a not-blocked result. A nil checkOut counts as zero nights.
// Despite the historical name, the one-night rule covers both Friday and
// Saturday starts. The caller must pass now explicitly; identical inputs
// always produce an identical result.
func Validate(checkIn, checkOut *time.Time, now time.Time, sig Signals) Result {
	if checkIn == nil {
		return Result{}
	}

	nights := 0
	if checkOut != nil {
		nights = DaysBetween(*checkIn, *checkOut)
	}

	weekday := checkIn.Weekday()
	result := Result{
		IsFridayOneNight: (weekday == time.Friday || weekday == time.Saturday) && nights < 2,
		IsWithinWindow:   DaysBetween(now, *checkIn) <= LeadTimeWindowDays,
	}

	if weekday == time.Friday {
		result.IsEndCap = sig.HasEndCapAvailability || sig.IsSaturdayFull || sig.IsNextDayBlocked
	}

	result.IsBlocked = result.IsFridayOneNight && !result.IsWithinWindow && !result.IsEndCap
	return result
}

// DaysBetween returns the calendar-day difference between two instants,
// both taken at local midnight. The midnight-to-midnight delta is rounded
// so neither wall-clock hours within a day nor a DST transition between
// the two days affect the result.
func DaysBetween(from, to time.Time) int {
	return int(math.Round(startOfDay(to).Sub(startOfDay(from)).Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
