package matching

import (
	"fmt"

	"github.com/careloop/rosterengine/pkg/geo"
)

// candidateFacts is everything the filter learns about one candidate while
// checking the hard gates, reused later by the scorer.
type candidateFacts struct {
	worker      WorkerProfile
	distanceKm  float64
	hasLocation bool
	reasons     []string
	warnings    []string
}

// evaluateEligibility runs the hard gates for one candidate. Any non-empty
// reasons list means the worker is excluded from ranking. Advisory findings
// (expiring certifications, missing location data) go to warnings instead.
func evaluateEligibility(w WorkerProfile, shift ShiftRequirements, cfg Config) candidateFacts {
	facts := candidateFacts{worker: w}

	if !w.Available {
		facts.reasons = append(facts.reasons, "worker not available")
	}

	if w.HourlyRate <= 0 {
		facts.reasons = append(facts.reasons, "non-positive hourly rate")
	}

	certs := make(map[string]CertificationRecord, len(w.Certifications))
	for _, c := range w.Certifications {
		certs[c.CertificationID] = c
	}
	for _, required := range shift.RequiredCertifications {
		rec, held := certs[required]
		switch {
		case !held:
			facts.reasons = append(facts.reasons,
				fmt.Sprintf("required certification %q missing", required))
		case !rec.ValidAt(shift.Start):
			facts.reasons = append(facts.reasons,
				fmt.Sprintf("required certification %q expired", required))
		}
	}

	trainings := make(map[string]TrainingRecord, len(w.Trainings))
	for _, t := range w.Trainings {
		trainings[t.TrainingID] = t
	}
	for _, required := range shift.RequiredTrainings {
		rec, held := trainings[required]
		switch {
		case !held:
			facts.reasons = append(facts.reasons,
				fmt.Sprintf("required training %q missing", required))
		case rec.Status != TrainingCompleted:
			facts.reasons = append(facts.reasons,
				fmt.Sprintf("required training %q not completed", required))
		}
	}

	// Missing coordinates on either side are treated as zero distance (best
	// case) rather than an exclusion, so incomplete location data is not
	// penalized. The caller is warned so the bias stays visible.
	if w.LocationLat != nil && w.LocationLng != nil &&
		shift.ParticipantLat != nil && shift.ParticipantLng != nil {
		facts.hasLocation = true
		facts.distanceKm = geo.DistanceKm(
			*w.LocationLat, *w.LocationLng,
			*shift.ParticipantLat, *shift.ParticipantLng)
		if facts.distanceKm > cfg.MaxDistanceKm {
			facts.reasons = append(facts.reasons, fmt.Sprintf(
				"distance %.1fkm exceeds limit (%.0fkm)", facts.distanceKm, cfg.MaxDistanceKm))
		}
	} else {
		facts.warnings = append(facts.warnings,
			"location not on file, distance treated as 0km")
	}

	return facts
}
