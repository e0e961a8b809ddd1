package matching

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/careloop/rosterengine/pkg/core/award"
)

// Match filters the candidate pool through the hard eligibility gates,
// scores the survivors on the five weighted criteria, and returns them
// ranked. The result is a pure function of the request and configuration;
// identical input yields an identical ordering.
func Match(req MatchRequest, cfg Config, cal award.HolidayCalendar) (*MatchResult, error) {
	if !cfg.Weights.Valid() {
		return nil, fmt.Errorf("%w: got %v", ErrBadWeights, cfg.Weights.Sum())
	}
	if !req.Shift.End.After(req.Shift.Start) {
		return nil, award.ErrInvalidRange
	}

	var (
		eligible []candidateFacts
		excluded []ExcludedWorker
	)
	for _, worker := range req.Candidates {
		facts := evaluateEligibility(worker, req.Shift, cfg)
		if len(facts.reasons) > 0 {
			excluded = append(excluded, ExcludedWorker{
				WorkerID: worker.WorkerID,
				Name:     worker.Name,
				Reasons:  facts.reasons,
			})
			continue
		}
		eligible = append(eligible, facts)
	}

	// Estimate each eligible candidate's shift cost with the shared rate
	// tables; the cost criterion is relative to the cheapest in the pool.
	shiftReq := award.ShiftRequest{
		Start:         req.Shift.Start,
		End:           req.Shift.End,
		IsSleepover:   req.Shift.IsSleepover,
		PublicHoliday: req.Shift.PublicHoliday,
	}
	costs := make([]float64, len(eligible))
	cheapest := 0.0
	kept := eligible[:0]
	for i, facts := range eligible {
		cost, err := award.EstimateCost(
			facts.worker.HourlyRate, facts.worker.WorkerLevel, shiftReq, cfg.Award, cal)
		if err != nil {
			// Bad worker data (e.g. a level absent from the award tables)
			// excludes that candidate rather than failing the whole pool.
			excluded = append(excluded, ExcludedWorker{
				WorkerID: facts.worker.WorkerID,
				Name:     facts.worker.Name,
				Reasons:  []string{fmt.Sprintf("cost estimation failed: %v", err)},
			})
			continue
		}
		costs[len(kept)] = cost
		kept = append(kept, eligible[i])
		if cheapest == 0 || cost < cheapest {
			cheapest = cost
		}
	}
	eligible = kept

	matches := make([]WorkerScore, 0, len(eligible))
	for i, facts := range eligible {
		matches = append(matches, scoreCandidate(facts, costs[i], cheapest, req.Shift, cfg))
	}

	rank(matches)

	// Shift-level warnings surface the top match's advisories for display
	shiftWarnings := []string{}
	if len(matches) > 0 {
		shiftWarnings = append(shiftWarnings, matches[0].ComplianceWarnings...)
	}

	result := &MatchResult{
		MatchID:         uuid.NewString(),
		ShiftID:         req.Shift.ShiftID,
		TotalCandidates: len(req.Candidates),
		EligibleWorkers: len(matches),
		RankedMatches:   matches,
		Weights:         cfg.Weights,
		MaxDistanceKm:   cfg.MaxDistanceKm,
		Warnings:        shiftWarnings,
		Timestamp:       time.Now(),
	}

	if req.IncludeExcluded {
		slices.SortFunc(excluded, func(a, b ExcludedWorker) int {
			return cmp.Compare(a.WorkerID, b.WorkerID)
		})
		result.ExcludedWorkers = excluded
	}

	return result, nil
}

// scoreCandidate computes the five sub-scores and the weighted total for
// one eligible worker.
func scoreCandidate(facts candidateFacts, estimatedCost, cheapestCost float64, shift ShiftRequirements, cfg Config) WorkerScore {
	w := facts.worker

	certScore, certWarnings := certificationScore(w, shift, cfg.CertExpiryWarningDays)
	trainScore := trainingScore(w, shift)
	expScore := experienceScore(w.ExperienceHours, cfg.ExperienceCeilingHours)
	distScore := distanceScore(facts.distanceKm, cfg.MaxDistanceKm)
	cScore := costScore(estimatedCost, cheapestCost)

	total := certScore*cfg.Weights.Certification +
		trainScore*cfg.Weights.Training +
		expScore*cfg.Weights.Experience +
		distScore*cfg.Weights.Distance +
		cScore*cfg.Weights.Cost

	warnings := append([]string{}, facts.warnings...)
	warnings = append(warnings, certWarnings...)

	if w.PreviousShiftEnd != nil {
		if bc := award.CheckBreak(*w.PreviousShiftEnd, shift.Start, cfg.Award.MinBreakHours); !bc.Compliant {
			warnings = append(warnings, bc.Message)
		}
	}

	if shift.BudgetLimit != nil && estimatedCost > *shift.BudgetLimit {
		warnings = append(warnings, fmt.Sprintf(
			"estimated cost $%.2f exceeds budget limit $%.2f", estimatedCost, *shift.BudgetLimit))
	}

	return WorkerScore{
		WorkerID:            w.WorkerID,
		Name:                w.Name,
		TotalScore:          round3(total),
		CertificationScore:  round3(certScore),
		TrainingScore:       round3(trainScore),
		ExperienceScore:     round3(expScore),
		DistanceScore:       round3(distScore),
		CostScore:           round3(cScore),
		HourlyRate:          w.HourlyRate,
		EstimatedDistanceKm: round2(facts.distanceKm),
		EstimatedCost:       estimatedCost,
		ComplianceWarnings:  warnings,
	}
}

// rank orders matches by total score descending, breaking ties by lower
// distance, then lower hourly rate, then worker id so the ordering is fully
// deterministic.
func rank(matches []WorkerScore) {
	slices.SortFunc(matches, func(a, b WorkerScore) int {
		if c := cmp.Compare(b.TotalScore, a.TotalScore); c != 0 {
			return c
		}
		if c := cmp.Compare(a.EstimatedDistanceKm, b.EstimatedDistanceKm); c != 0 {
			return c
		}
		if c := cmp.Compare(a.HourlyRate, b.HourlyRate); c != 0 {
			return c
		}
		return cmp.Compare(a.WorkerID, b.WorkerID)
	})
	for i := range matches {
		matches[i].Rank = i + 1
	}
}
