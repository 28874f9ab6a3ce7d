package pricing

import "time"

// Contains reports whether the (month, day) pair falls inside the season
// window, inclusive on both ends. The comparison is lexicographic on
// (month, day) tuples, so it only expresses windows that start and end
// within the same calendar year.
func (s Season) Contains(month time.Month, day int) bool {
	point := int(month)*100 + day
	start := s.StartMonth*100 + s.StartDay
	end := s.EndMonth*100 + s.EndDay
	return point >= start && point <= end
}

// SpansYearBoundary reports whether the window would wrap past December.
// Such windows cannot be evaluated by Contains and are rejected when a
// config is saved.
func (s Season) SpansYearBoundary() bool {
	start := s.StartMonth*100 + s.StartDay
	end := s.EndMonth*100 + s.EndDay
	return start > end
}

// IsPeakDate reports whether the date falls inside any configured season,
// evaluated against the date's own calendar year.
func IsPeakDate(date time.Time, seasons []Season) bool {
	for _, season := range seasons {
		if season.Contains(date.Month(), date.Day()) {
			return true
		}
	}
	return false
}
