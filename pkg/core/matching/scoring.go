package matching

import (
	"fmt"
	"math"
)

// certificationScore returns the fraction of required certifications the
// worker holds and are valid at the shift start (1.0 when none are
// required), plus advisory warnings for certifications expiring within the
// configured look-ahead window.
func certificationScore(w WorkerProfile, shift ShiftRequirements, warningDays int) (float64, []string) {
	if len(shift.RequiredCertifications) == 0 {
		return 1.0, nil
	}

	certs := make(map[string]CertificationRecord, len(w.Certifications))
	for _, c := range w.Certifications {
		certs[c.CertificationID] = c
	}

	var warnings []string
	horizon := shift.Start.AddDate(0, 0, warningDays)
	valid := 0
	for _, required := range shift.RequiredCertifications {
		rec, held := certs[required]
		if !held || !rec.ValidAt(shift.Start) {
			continue
		}
		valid++
		if rec.Expiry != nil && rec.Expiry.Before(horizon) {
			warnings = append(warnings, fmt.Sprintf(
				"certification %q expires %s", required, rec.Expiry.Format("2006-01-02")))
		}
	}

	return float64(valid) / float64(len(shift.RequiredCertifications)), warnings
}

// trainingScore returns the fraction of required trainings completed,
// 1.0 when none are required.
func trainingScore(w WorkerProfile, shift ShiftRequirements) float64 {
	if len(shift.RequiredTrainings) == 0 {
		return 1.0
	}

	trainings := make(map[string]TrainingRecord, len(w.Trainings))
	for _, t := range w.Trainings {
		trainings[t.TrainingID] = t
	}

	completed := 0
	for _, required := range shift.RequiredTrainings {
		if rec, held := trainings[required]; held && rec.Status == TrainingCompleted {
			completed++
		}
	}

	return float64(completed) / float64(len(shift.RequiredTrainings))
}

// experienceScore scales experience hours against the configured ceiling,
// clamped to [0,1]. Monotonic non-decreasing in experience.
func experienceScore(experienceHours, ceilingHours float64) float64 {
	if ceilingHours <= 0 {
		return 1.0
	}
	return clamp01(experienceHours / ceilingHours)
}

// distanceScore rewards proximity linearly: 0km scores 1.0, the maximum
// distance scores 0.
func distanceScore(distanceKm, maxDistanceKm float64) float64 {
	if maxDistanceKm <= 0 {
		return 1.0
	}
	return clamp01(1.0 - distanceKm/maxDistanceKm)
}

// costScore is pool-relative: the cheapest eligible candidate's estimated
// shift cost scores 1.0 and others scale down linearly.
func costScore(estimatedCost, cheapestCost float64) float64 {
	if estimatedCost <= 0 {
		return 1.0
	}
	return clamp01(cheapestCost / estimatedCost)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
