package award

import (
	"fmt"
	"math"
)

const hoursEpsilon = 1e-9

// Calculate prices a shift under the configured award tables. It classifies
// the worked time, applies the ordinary-hours threshold and overtime tiers,
// and returns the full cost breakdown with advisory warnings. Break and
// budget violations never fail the calculation.
func Calculate(req ShiftRequest, cfg Config, cal HolidayCalendar) (*CostBreakdown, error) {
	if req.BaseHourlyRate <= 0 {
		return nil, ErrInvalidRate
	}
	if !req.End.After(req.Start) {
		return nil, ErrInvalidRange
	}

	levelMult, err := cfg.LevelMultiplier(req.WorkerLevel)
	if err != nil {
		return nil, fmt.Errorf("worker level %d: %w", req.WorkerLevel, err)
	}
	adjustedRate := req.BaseHourlyRate * levelMult

	totalHours := req.End.Sub(req.Start).Hours()

	isHoliday := req.PublicHoliday != ""
	if !isHoliday && cal != nil {
		isHoliday = cal.IsHoliday(req.Start)
	}

	var result *CostBreakdown
	if req.IsSleepover {
		result, err = sleepoverBreakdown(totalHours, adjustedRate, cfg)
	} else {
		result, err = pricedBreakdown(req, totalHours, adjustedRate, isHoliday, cfg)
	}
	if err != nil {
		return nil, err
	}

	result.MinBreakRequiredHours = cfg.MinBreakHours
	result.BreakCompliant = true
	if req.PreviousShiftEnd != nil {
		bc := CheckBreak(*req.PreviousShiftEnd, req.Start, cfg.MinBreakHours)
		result.BreakCompliance = bc
		result.BreakCompliant = bc.Compliant
		if !bc.Compliant {
			result.Warnings = append(result.Warnings, bc.Message)
		}
	}

	if req.BudgetLimit != nil && result.TotalCost > *req.BudgetLimit {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"estimated cost $%.2f exceeds budget limit $%.2f", result.TotalCost, *req.BudgetLimit))
	}

	return result, nil
}

// sleepoverBreakdown prices a sleepover shift as a flat allowance with no
// overtime or time-of-day stacking.
func sleepoverBreakdown(totalHours, adjustedRate float64, cfg Config) (*CostBreakdown, error) {
	mult, err := cfg.PenaltyMultiplier(SegmentSleepover)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, SegmentSleepover)
	}

	cost := adjustedRate * totalHours * mult
	return &CostBreakdown{
		TotalHours:    round2(totalHours),
		OrdinaryHours: round2(totalHours),
		ShiftType:     SegmentSleepover,
		Breakdown: []BreakdownLine{{
			Type:       SegmentSleepover,
			Hours:      round2(totalHours),
			Multiplier: mult,
			Cost:       round2(cost),
		}},
		PenaltyMultipliers: []PenaltySegment{{
			Name:       string(SegmentSleepover),
			Multiplier: mult,
			Hours:      round2(totalHours),
		}},
		TotalCost: round2(cost),
		Warnings:  []string{},
	}, nil
}

// pricedBreakdown prices a non-sleepover shift: normalize into calendar
// segments, then walk them in shift order splitting at the overtime
// threshold and tier boundaries.
func pricedBreakdown(req ShiftRequest, totalHours, adjustedRate float64, isHoliday bool, cfg Config) (*CostBreakdown, error) {
	segments, err := Normalize(req.Start, req.End, isHoliday, cfg)
	if err != nil {
		return nil, err
	}

	var (
		lines         []BreakdownLine
		worked        float64
		ordinaryHours float64
		overtimeHours float64
		totalCost     float64
	)

	for _, seg := range segments {
		penaltyMult, err := cfg.PenaltyMultiplier(seg.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, seg.Type)
		}

		remaining := seg.Hours
		for remaining > hoursEpsilon {
			var (
				chunk float64
				mult  float64
				tier  string
			)

			switch {
			case worked < cfg.OvertimeThresholdHours-hoursEpsilon:
				chunk = math.Min(remaining, cfg.OvertimeThresholdHours-worked)
				mult = penaltyMult
				ordinaryHours += chunk

			case worked < cfg.OvertimeThresholdHours+cfg.OvertimeFirstTierHours-hoursEpsilon:
				overtimeWorked := worked - cfg.OvertimeThresholdHours
				chunk = math.Min(remaining, cfg.OvertimeFirstTierHours-overtimeWorked)
				mult = penaltyMult * cfg.OvertimeFirstTierMultiplier
				tier = OvertimeFirstTier
				overtimeHours += chunk

			default:
				chunk = remaining
				mult = penaltyMult * cfg.OvertimeSecondTierMultiplier
				tier = OvertimeSecondTier
				overtimeHours += chunk
			}

			cost := adjustedRate * chunk * mult
			totalCost += cost
			lines = append(lines, BreakdownLine{
				Type:         seg.Type,
				OvertimeTier: tier,
				Hours:        round2(chunk),
				Multiplier:   mult,
				Cost:         round2(cost),
			})

			worked += chunk
			remaining -= chunk
		}
	}

	shiftType := SegmentOrdinary
	switch {
	case isHoliday:
		shiftType = SegmentPublicHoliday
	case overtimeHours > hoursEpsilon:
		shiftType = ShiftTypeOvertime
	}

	return &CostBreakdown{
		TotalHours:         round2(totalHours),
		OrdinaryHours:      round2(ordinaryHours),
		OvertimeHours:      round2(overtimeHours),
		ShiftType:          shiftType,
		Breakdown:          lines,
		PenaltyMultipliers: summarizePenalties(lines),
		TotalCost:          round2(totalCost),
		Warnings:           []string{},
	}, nil
}

// summarizePenalties lists each loaded run of hours, merging lines that
// share a name while preserving first-appearance order.
func summarizePenalties(lines []BreakdownLine) []PenaltySegment {
	penalties := []PenaltySegment{}
	index := map[string]int{}

	for _, line := range lines {
		if line.Multiplier == 1.0 {
			continue
		}

		name := string(line.Type)
		if line.OvertimeTier != "" {
			if line.Type == SegmentOrdinary {
				name = line.OvertimeTier
			} else {
				name = name + "+" + line.OvertimeTier
			}
		}

		if i, ok := index[name]; ok {
			penalties[i].Hours = round2(penalties[i].Hours + line.Hours)
			continue
		}
		index[name] = len(penalties)
		penalties = append(penalties, PenaltySegment{
			Name:       name,
			Multiplier: line.Multiplier,
			Hours:      line.Hours,
		})
	}

	return penalties
}

// EstimateCost prices a shift window for a specific worker using the shared
// rate tables. The matching engine uses this for pool-relative cost scoring.
func EstimateCost(hourlyRate float64, workerLevel int, req ShiftRequest, cfg Config, cal HolidayCalendar) (float64, error) {
	estimate := req
	estimate.BaseHourlyRate = hourlyRate
	estimate.WorkerLevel = workerLevel
	estimate.PreviousShiftEnd = nil
	estimate.BudgetLimit = nil

	breakdown, err := Calculate(estimate, cfg, cal)
	if err != nil {
		return 0, err
	}
	return breakdown.TotalCost, nil
}

// round2 rounds monetary and hour totals to 2 decimal places. Intermediate
// math stays at full precision; only reported figures are rounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
