package config

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/careloop/rosterengine/pkg/core/award"
)

// holidayCalendar answers date-level public holiday lookups from the fixed
// dates and recurrence rules in configuration.
type holidayCalendar struct {
	dates map[string]bool
	rules []*rrule.RRule
}

// rruleEpoch anchors recurrence rules far enough back that any plausible
// shift date falls inside the rule's occurrence range.
var rruleEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// HolidayCalendar builds the award engine's holiday lookup from the loaded
// configuration.
func (c *Config) HolidayCalendar() (award.HolidayCalendar, error) {
	cal := &holidayCalendar{dates: make(map[string]bool, len(c.Award.PublicHolidayDates))}

	for _, date := range c.Award.PublicHolidayDates {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, fmt.Errorf("invalid public holiday date %q: %w", date, err)
		}
		cal.dates[date] = true
	}

	for _, rule := range c.Award.PublicHolidayRules {
		r, err := rrule.StrToRRule(rule)
		if err != nil {
			return nil, fmt.Errorf("invalid public holiday rule %q: %w", rule, err)
		}
		r.DTStart(rruleEpoch)
		cal.rules = append(cal.rules, r)
	}

	return cal, nil
}

// IsHoliday reports whether the instant's calendar date is a public holiday.
func (h *holidayCalendar) IsHoliday(t time.Time) bool {
	day := t.Format("2006-01-02")
	if h.dates[day] {
		return true
	}

	// Rules generate occurrences in UTC from the epoch; compare by date only
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for _, r := range h.rules {
		next := r.After(dayStart.Add(-time.Second), true)
		if !next.IsZero() && next.Format("2006-01-02") == day {
			return true
		}
	}
	return false
}
