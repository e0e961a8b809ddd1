package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	cfg := Default()
	cfg.Matching.Weights.Cost = 0.3

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidate_MissingPenaltyEntry(t *testing.T) {
	cfg := Default()
	delete(cfg.Award.PenaltyMultipliers, "saturday")

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saturday")
}

func TestValidate_BadHolidayRule(t *testing.T) {
	cfg := Default()
	cfg.Award.PublicHolidayRules = []string{"FREQ=NEVERLY"}

	assert.Error(t, Validate(cfg))
}

func TestValidate_BadHolidayDate(t *testing.T) {
	cfg := Default()
	cfg.Award.PublicHolidayDates = []string{"25/12/2026"}

	assert.Error(t, Validate(cfg))
}

func TestValidate_NonPositiveOvertimeThreshold(t *testing.T) {
	cfg := Default()
	cfg.Award.OvertimeThresholdHours = 0

	assert.Error(t, Validate(cfg))
}

func TestLoadFromPath(t *testing.T) {
	yaml := `
award:
  levelMultipliers:
    1: 1.0
    2: 1.08
  penaltyMultipliers:
    evening: 1.2
    night: 1.2
    saturday: 1.5
    sunday: 1.75
    public_holiday: 2.5
    sleepover: 0.6
  eveningStartHour: 19
  nightEndHour: 5
  overtimeThresholdHours: 10
  overtimeFirstTierHours: 2
  overtimeFirstTierMultiplier: 1.5
  overtimeSecondTierMultiplier: 2.0
  minBreakHours: 8
matching:
  weights:
    certification: 0.4
    training: 0.2
    experience: 0.2
    distance: 0.1
    cost: 0.1
  maxDistanceKm: 30
  experienceCeilingHours: 4000
  certExpiryWarningDays: 14
`
	path := filepath.Join(t.TempDir(), "roster_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.InDelta(t, 1.08, cfg.Award.LevelMultipliers[2], 1e-9)
	assert.Equal(t, 19, cfg.Award.EveningStartHour)
	assert.InDelta(t, 1.75, cfg.Award.PenaltyMultipliers["sunday"], 1e-9)
	assert.InDelta(t, 30.0, cfg.Matching.MaxDistanceKm, 1e-9)

	awardCfg := cfg.AwardConfig()
	assert.InDelta(t, 10.0, awardCfg.OvertimeThresholdHours, 1e-9)

	matchCfg := cfg.MatchingConfig()
	assert.InDelta(t, 8.0, matchCfg.Award.MinBreakHours, 1e-9)
	assert.True(t, matchCfg.Weights.Valid())
}

func TestLoadFromPath_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("award:\n  levelMultipliers: {}\n"), 0644))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestHolidayCalendar_FixedDate(t *testing.T) {
	cfg := Default()
	cfg.Award.PublicHolidayDates = []string{"2026-01-26"}

	cal, err := cfg.HolidayCalendar()
	require.NoError(t, err)

	assert.True(t, cal.IsHoliday(time.Date(2026, time.January, 26, 9, 0, 0, 0, time.UTC)))
	assert.False(t, cal.IsHoliday(time.Date(2026, time.January, 27, 9, 0, 0, 0, time.UTC)))
}

func TestHolidayCalendar_RecurringRule(t *testing.T) {
	cfg := Default()
	cfg.Award.PublicHolidayRules = []string{"FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"}

	cal, err := cfg.HolidayCalendar()
	require.NoError(t, err)

	assert.True(t, cal.IsHoliday(time.Date(2026, time.December, 25, 12, 0, 0, 0, time.UTC)))
	assert.True(t, cal.IsHoliday(time.Date(2031, time.December, 25, 12, 0, 0, 0, time.UTC)))
	assert.False(t, cal.IsHoliday(time.Date(2026, time.December, 24, 12, 0, 0, 0, time.UTC)))
}
