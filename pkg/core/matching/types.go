package matching

import (
	"errors"
	"math"
	"time"

	"github.com/careloop/rosterengine/pkg/core/award"
)

// TrainingStatus tracks a worker's progress through a training module
type TrainingStatus string

const (
	TrainingCompleted  TrainingStatus = "completed"
	TrainingInProgress TrainingStatus = "in_progress"
	TrainingNotStarted TrainingStatus = "not_started"
)

var (
	// ErrBadWeights indicates the configured scoring weights do not sum to 1.0
	ErrBadWeights = errors.New("scoring weights must sum to 1.0")
)

// CertificationRecord is a certification held by a worker. A nil Expiry
// means the certification does not expire.
type CertificationRecord struct {
	CertificationID string     `json:"certification_id"`
	Name            string     `json:"name,omitempty"`
	Expiry          *time.Time `json:"expiry_date,omitempty"`
}

// ValidAt reports whether the certification is valid on the given date.
func (c CertificationRecord) ValidAt(t time.Time) bool {
	return c.Expiry == nil || !c.Expiry.Before(t)
}

// TrainingRecord is a training module on a worker's record
type TrainingRecord struct {
	TrainingID string         `json:"training_id"`
	Name       string         `json:"name,omitempty"`
	Status     TrainingStatus `json:"status"`
}

// WorkerProfile is a candidate supplied by the caller. The engine never
// looks workers up itself; the record store is the caller's concern.
type WorkerProfile struct {
	WorkerID         string                `json:"worker_id"`
	Name             string                `json:"full_name,omitempty"`
	HourlyRate       float64               `json:"hourly_rate"`
	WorkerLevel      int                   `json:"worker_level"`
	ExperienceHours  float64               `json:"experience_hours"`
	LocationLat      *float64              `json:"location_lat,omitempty"`
	LocationLng      *float64              `json:"location_lng,omitempty"`
	Available        bool                  `json:"available"`
	Certifications   []CertificationRecord `json:"certifications"`
	Trainings        []TrainingRecord      `json:"trainings"`
	PreviousShiftEnd *time.Time            `json:"previous_shift_end,omitempty"`
}

// ShiftRequirements describes the shift a worker is being matched against
type ShiftRequirements struct {
	ShiftID                string    `json:"shift_id"`
	ParticipantLat         *float64  `json:"participant_location_lat,omitempty"`
	ParticipantLng         *float64  `json:"participant_location_lng,omitempty"`
	RequiredCertifications []string  `json:"required_certifications"`
	RequiredTrainings      []string  `json:"required_trainings"`
	Start                  time.Time `json:"shift_start"`
	End                    time.Time `json:"shift_end"`
	IsSleepover            bool      `json:"is_sleepover,omitempty"`
	PublicHoliday          string    `json:"public_holiday,omitempty"`
	BudgetLimit            *float64  `json:"budget_limit,omitempty"`
}

// MatchRequest is the matching engine input
type MatchRequest struct {
	Shift           ShiftRequirements `json:"shift_requirements"`
	Candidates      []WorkerProfile   `json:"candidate_workers"`
	IncludeExcluded bool              `json:"include_excluded,omitempty"`
}

// Weights are the five scoring criterion weights; they must sum to 1.0
type Weights struct {
	Certification float64 `json:"certification"`
	Training      float64 `json:"training"`
	Experience    float64 `json:"experience"`
	Distance      float64 `json:"distance"`
	Cost          float64 `json:"cost"`
}

// Sum returns the total of all five weights.
func (w Weights) Sum() float64 {
	return w.Certification + w.Training + w.Experience + w.Distance + w.Cost
}

// Valid reports whether the weights sum to 1.0 within floating tolerance.
func (w Weights) Valid() bool {
	return math.Abs(w.Sum()-1.0) < 1e-9
}

// Config holds the matching engine's static configuration, including the
// shared award tables used for per-candidate cost estimation.
type Config struct {
	Weights                Weights
	MaxDistanceKm          float64
	ExperienceCeilingHours float64
	CertExpiryWarningDays  int
	Award                  award.Config
}

// WorkerScore is one ranked match with its per-criterion breakdown
type WorkerScore struct {
	WorkerID string `json:"worker_id"`
	Name     string `json:"full_name,omitempty"`
	Rank     int    `json:"rank"`

	TotalScore float64 `json:"total_score"`

	CertificationScore float64 `json:"certification_score"`
	TrainingScore      float64 `json:"training_score"`
	ExperienceScore    float64 `json:"experience_score"`
	DistanceScore      float64 `json:"distance_score"`
	CostScore          float64 `json:"cost_score"`

	HourlyRate          float64 `json:"hourly_rate"`
	EstimatedDistanceKm float64 `json:"estimated_distance_km"`
	EstimatedCost       float64 `json:"estimated_cost"`

	ComplianceWarnings []string `json:"compliance_warnings"`
}

// ExcludedWorker is a candidate that failed a hard eligibility gate. It is
// never scored; Reasons lists every gate it failed.
type ExcludedWorker struct {
	WorkerID string   `json:"worker_id"`
	Name     string   `json:"full_name,omitempty"`
	Reasons  []string `json:"exclusion_reasons"`
}

// MatchResult is the matching engine output. An empty RankedMatches with
// EligibleWorkers == 0 is a valid result, not an error.
type MatchResult struct {
	MatchID         string           `json:"match_id"`
	ShiftID         string           `json:"shift_id"`
	TotalCandidates int              `json:"total_candidates"`
	EligibleWorkers int              `json:"eligible_workers"`
	RankedMatches   []WorkerScore    `json:"ranked_matches"`
	ExcludedWorkers []ExcludedWorker `json:"excluded_workers,omitempty"`
	Weights         Weights          `json:"weights"`
	MaxDistanceKm   float64          `json:"max_distance_km"`
	Warnings        []string         `json:"warnings"`
	Timestamp       time.Time        `json:"timestamp"`
}
