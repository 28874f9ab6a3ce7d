package pricing

import (
	"math"
	"time"
)

// Nights returns the number of nights between check-in and check-out as a
// calendar-day difference. Both ends are taken at local midnight and the
// delta is rounded, so time of day never matters and a DST transition
// inside the range cannot add or drop a night.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Round(startOfDay(checkOut).Sub(startOfDay(checkIn)).Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWeekendNight reports whether a night starting on the given date is
// charged at the weekend rate. Friday, Saturday and Sunday nights count
// as weekend.
func IsWeekendNight(date time.Time) bool {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return false
}

// Calculate produces the full price breakdown for a stay.
//
// Each night is priced independently as weekday/weekend crossed with
// peak/off-peak. The consecutive-stay discount applies only when every
// night in the range is a weekend night and the stay is at least two
// nights. The visitor fee is charged once, not per night. The total is
// clamped at zero so no discount combination can produce a negative
// price.
//
// A non-positive night count degenerates to an all-zero breakdown rather
// than an error, so partially filled booking forms can still render.
func Calculate(cfg *PricingConfig, checkIn, checkOut time.Time, familyCount, visitorCount int) Breakdown {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return Breakdown{}
	}

	var basePrice int64
	allWeekend := true
	for i := 0; i < nights; i++ {
		night := checkIn.AddDate(0, 0, i)
		weekend := IsWeekendNight(night)
		if !weekend {
			allWeekend = false
		}

		switch {
		case IsPeakDate(night, cfg.Seasons) && weekend:
			basePrice += cfg.PeakWeekend
		case IsPeakDate(night, cfg.Seasons):
			basePrice += cfg.PeakWeekday
		case weekend:
			basePrice += cfg.Weekend
		default:
			basePrice += cfg.Weekday
		}
	}

	var consecutive int64
	if allWeekend && nights >= 2 {
		consecutive = int64(nights-1) * cfg.LongStayDiscount
	}

	var extraFamily int64
	if familyCount > 1 {
		extraFamily = int64(familyCount-1) * cfg.ExtraFamily * int64(nights)
	}
	visitor := int64(visitorCount) * cfg.Visitor

	total := basePrice + extraFamily + visitor - consecutive
	if total < 0 {
		total = 0
	}

	return Breakdown{
		BasePrice: basePrice,
		Options: Options{
			ExtraFamily: extraFamily,
			Visitor:     visitor,
		},
		Discount: Discount{
			Consecutive: consecutive,
		},
		TotalPrice: total,
		Nights:     nights,
	}
}
