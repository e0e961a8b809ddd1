package award

import (
	"time"
)

// Normalize splits a shift interval into an ordered sequence of disjoint
// segments classified by calendar rule. A public holiday tags the entire
// shift regardless of time of day; otherwise the interval is chopped at
// midnights and at the weekday evening/night band boundaries.
func Normalize(start, end time.Time, isHoliday bool, cfg Config) ([]Segment, error) {
	if !end.After(start) {
		return nil, ErrInvalidRange
	}

	total := end.Sub(start).Hours()

	if isHoliday {
		return []Segment{{Type: SegmentPublicHoliday, Hours: total}}, nil
	}

	var segments []Segment
	cur := start
	for cur.Before(end) {
		boundary := nextBoundary(cur, cfg)
		if boundary.After(end) {
			boundary = end
		}

		segType := classify(cur, cfg)
		hours := boundary.Sub(cur).Hours()

		// Merge with the previous segment when the classification is unchanged
		if n := len(segments); n > 0 && segments[n-1].Type == segType {
			segments[n-1].Hours += hours
		} else {
			segments = append(segments, Segment{Type: segType, Hours: hours})
		}

		cur = boundary
	}

	return segments, nil
}

// classify determines the segment type at a given instant
func classify(t time.Time, cfg Config) SegmentType {
	switch t.Weekday() {
	case time.Saturday:
		return SegmentSaturday
	case time.Sunday:
		return SegmentSunday
	}

	h := t.Hour()
	if h < cfg.NightEndHour {
		return SegmentNight
	}
	if h >= cfg.EveningStartHour {
		return SegmentEvening
	}
	return SegmentOrdinary
}

// nextBoundary returns the next instant after t at which the classification
// can change: a weekday band edge or the next midnight.
func nextBoundary(t time.Time, cfg Config) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)

	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return midnight
	}

	for _, hour := range []int{cfg.NightEndHour, cfg.EveningStartHour} {
		b := time.Date(y, m, d, hour, 0, 0, 0, t.Location())
		if t.Before(b) && b.Before(midnight) {
			return b
		}
	}
	return midnight
}
