package award

import (
	"errors"
	"time"
)

// SegmentType classifies worked time for rate purposes
type SegmentType string

const (
	SegmentOrdinary      SegmentType = "ordinary"
	SegmentEvening       SegmentType = "evening"
	SegmentNight         SegmentType = "night"
	SegmentSaturday      SegmentType = "saturday"
	SegmentSunday        SegmentType = "sunday"
	SegmentPublicHoliday SegmentType = "public_holiday"
	SegmentSleepover     SegmentType = "sleepover"
)

// PenaltySegmentTypes are the segment types that must have an entry in the
// penalty multiplier table. Ordinary time is always paid at 1.0.
var PenaltySegmentTypes = []SegmentType{
	SegmentEvening,
	SegmentNight,
	SegmentSaturday,
	SegmentSunday,
	SegmentPublicHoliday,
	SegmentSleepover,
}

// ShiftTypeOvertime is the reported shift classification when any hours
// exceeded the ordinary threshold. It never appears as a priced segment.
const ShiftTypeOvertime SegmentType = "overtime"

// Overtime tier labels used in breakdown lines and penalty summaries
const (
	OvertimeFirstTier  = "overtime_first_tier"
	OvertimeSecondTier = "overtime_second_tier"
)

// Validation errors returned by Calculate
var (
	ErrInvalidRange = errors.New("shift end time must be after start time")
	ErrInvalidRate  = errors.New("base hourly rate must be positive")
	ErrUnknownLevel = errors.New("worker level not present in level multiplier table")
)

// ErrMissingMultiplier indicates a penalty table entry is absent for an
// observed segment type. Configuration is validated at startup so hitting
// this at request time means the config and the normalizer disagree.
var ErrMissingMultiplier = errors.New("no penalty multiplier configured for segment type")

// IsValidationError reports whether err is a request problem rather than an
// internal fault, so callers can map it to a 4xx response.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrUnknownLevel)
}

// HolidayCalendar answers whether a given instant falls on a public holiday.
type HolidayCalendar interface {
	IsHoliday(t time.Time) bool
}

// Config holds the award tables and thresholds. Values are loaded from
// external configuration once at startup and treated as immutable.
type Config struct {
	// LevelMultipliers maps worker classification level to a base-rate multiplier
	LevelMultipliers map[int]float64

	// PenaltyMultipliers maps each penalty segment type to its loading
	PenaltyMultipliers map[SegmentType]float64

	// EveningStartHour is the hour (0-24) at which the weekday evening band
	// begins; the band runs to midnight
	EveningStartHour int

	// NightEndHour is the hour (0-24) at which the weekday night band ends;
	// the band runs from midnight
	NightEndHour int

	// OvertimeThresholdHours is the per-shift ordinary-hours cap
	OvertimeThresholdHours float64

	// OvertimeFirstTierHours is the length of the first overtime tier
	OvertimeFirstTierHours float64

	// OvertimeFirstTierMultiplier and OvertimeSecondTierMultiplier stack
	// multiplicatively on the time-of-day penalty of the overtime sub-segment
	OvertimeFirstTierMultiplier  float64
	OvertimeSecondTierMultiplier float64

	// MinBreakHours is the minimum gap required between consecutive shifts
	MinBreakHours float64
}

// LevelMultiplier looks up the base-rate multiplier for a worker level.
func (c Config) LevelMultiplier(level int) (float64, error) {
	m, ok := c.LevelMultipliers[level]
	if !ok {
		return 0, ErrUnknownLevel
	}
	return m, nil
}

// PenaltyMultiplier looks up the loading for a segment type.
// Ordinary time is always 1.0 and needs no table entry.
func (c Config) PenaltyMultiplier(t SegmentType) (float64, error) {
	if t == SegmentOrdinary {
		return 1.0, nil
	}
	m, ok := c.PenaltyMultipliers[t]
	if !ok {
		return 0, ErrMissingMultiplier
	}
	return m, nil
}

// Segment is a contiguous run of worked time with a single rate classification
type Segment struct {
	Type  SegmentType
	Hours float64
}

// ShiftRequest is the costing engine input
type ShiftRequest struct {
	BaseHourlyRate   float64
	WorkerLevel      int
	Start            time.Time
	End              time.Time
	IsSleepover      bool
	PublicHoliday    string
	PreviousShiftEnd *time.Time
	BudgetLimit      *float64
}

// BreakdownLine is one priced run of hours in the shift, in shift order
type BreakdownLine struct {
	Type SegmentType `json:"type"`
	// OvertimeTier is empty for ordinary-threshold hours, otherwise one of
	// the overtime tier labels
	OvertimeTier string  `json:"overtime_tier,omitempty"`
	Hours        float64 `json:"hours"`
	Multiplier   float64 `json:"rate_multiplier"`
	Cost         float64 `json:"cost"`
}

// PenaltySegment summarizes hours attracting a loading above the base rate
type PenaltySegment struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Hours      float64 `json:"hours"`
}

// BreakCompliance reports the gap between this shift and the previous one
type BreakCompliance struct {
	Compliant        bool    `json:"compliant"`
	GapHours         float64 `json:"break_hours"`
	MinRequiredHours float64 `json:"min_required"`
	ShortfallHours   float64 `json:"shortfall_hours,omitempty"`
	Message          string  `json:"message"`
}

// CostBreakdown is the costing engine output
type CostBreakdown struct {
	TotalHours    float64 `json:"total_hours"`
	OrdinaryHours float64 `json:"ordinary_hours"`
	OvertimeHours float64 `json:"overtime_hours"`

	ShiftType SegmentType `json:"shift_type"`

	PenaltyMultipliers []PenaltySegment `json:"penalty_multipliers"`
	Breakdown          []BreakdownLine  `json:"breakdown"`

	TotalCost float64 `json:"total_cost"`

	MinBreakRequiredHours float64          `json:"min_break_required_hours"`
	BreakCompliant        bool             `json:"break_compliant"`
	BreakCompliance       *BreakCompliance `json:"break_compliance,omitempty"`

	Warnings []string `json:"warnings"`
}
