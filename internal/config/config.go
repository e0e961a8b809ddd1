package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/careloop/rosterengine/pkg/core/award"
	"github.com/careloop/rosterengine/pkg/core/matching"
)

const configFileName = "roster_config.yaml"

// AwardConfig holds the award schedule tables. Every figure is data, not
// policy: the schedule changes without code changes.
type AwardConfig struct {
	LevelMultipliers   map[int]float64    `yaml:"levelMultipliers" validate:"required,min=1,dive,gt=0"`
	PenaltyMultipliers map[string]float64 `yaml:"penaltyMultipliers" validate:"required,dive,gt=0"`

	EveningStartHour int `yaml:"eveningStartHour" validate:"min=0,max=24"`
	NightEndHour     int `yaml:"nightEndHour" validate:"min=0,max=24"`

	OvertimeThresholdHours       float64 `yaml:"overtimeThresholdHours" validate:"gt=0"`
	OvertimeFirstTierHours       float64 `yaml:"overtimeFirstTierHours" validate:"min=0"`
	OvertimeFirstTierMultiplier  float64 `yaml:"overtimeFirstTierMultiplier" validate:"gte=1"`
	OvertimeSecondTierMultiplier float64 `yaml:"overtimeSecondTierMultiplier" validate:"gte=1"`

	MinBreakHours float64 `yaml:"minBreakHours" validate:"gt=0"`

	// PublicHolidayDates are fixed YYYY-MM-DD dates
	PublicHolidayDates []string `yaml:"publicHolidayDates,omitempty"`
	// PublicHolidayRules are RFC 5545 recurrence rules, e.g.
	// "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"
	PublicHolidayRules []string `yaml:"publicHolidayRules,omitempty"`
}

// MatchingConfig holds the scoring weights and filter limits
type MatchingConfig struct {
	Weights                WeightsConfig `yaml:"weights"`
	MaxDistanceKm          float64       `yaml:"maxDistanceKm" validate:"gt=0"`
	ExperienceCeilingHours float64       `yaml:"experienceCeilingHours" validate:"gt=0"`
	CertExpiryWarningDays  int           `yaml:"certExpiryWarningDays" validate:"min=0"`
}

// WeightsConfig are the five criterion weights; they must sum to exactly 1.0
type WeightsConfig struct {
	Certification float64 `yaml:"certification" validate:"min=0,max=1"`
	Training      float64 `yaml:"training" validate:"min=0,max=1"`
	Experience    float64 `yaml:"experience" validate:"min=0,max=1"`
	Distance      float64 `yaml:"distance" validate:"min=0,max=1"`
	Cost          float64 `yaml:"cost" validate:"min=0,max=1"`
}

// Config represents the application configuration
type Config struct {
	Award    AwardConfig    `yaml:"award"`
	Matching MatchingConfig `yaml:"matching"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the documented default configuration, used when no config
// file is present.
func Default() *Config {
	return &Config{
		Award: AwardConfig{
			LevelMultipliers: map[int]float64{
				1: 1.0,
				2: 1.05,
				3: 1.1,
				4: 1.15,
			},
			PenaltyMultipliers: map[string]float64{
				"evening":        1.15,
				"night":          1.15,
				"saturday":       1.5,
				"sunday":         2.0,
				"public_holiday": 2.5,
				"sleepover":      0.57,
			},
			EveningStartHour:             18,
			NightEndHour:                 6,
			OvertimeThresholdHours:       8,
			OvertimeFirstTierHours:       2,
			OvertimeFirstTierMultiplier:  1.5,
			OvertimeSecondTierMultiplier: 2.0,
			MinBreakHours:                10,
		},
		Matching: MatchingConfig{
			Weights: WeightsConfig{
				Certification: 0.4,
				Training:      0.2,
				Experience:    0.2,
				Distance:      0.1,
				Cost:          0.1,
			},
			MaxDistanceKm:          50,
			ExperienceCeilingHours: 5000,
			CertExpiryWarningDays:  30,
		},
	}
}

// Load loads and validates the configuration from roster_config.yaml,
// looking in the current directory first, then the user's home directory.
// When no file exists the documented defaults are returned.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		cfg := Default()
		if err := Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration: struct tags, weight sum, penalty
// table completeness, and holiday date/rule syntax. Any failure here is
// fatal at startup, never silently defaulted.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if sum := cfg.Matching.Weights.sum(); math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %v", sum)
	}

	for _, segType := range award.PenaltySegmentTypes {
		if _, ok := cfg.Award.PenaltyMultipliers[string(segType)]; !ok {
			return fmt.Errorf("penaltyMultipliers missing entry for segment type %q", segType)
		}
	}

	for i, date := range cfg.Award.PublicHolidayDates {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date in publicHolidayDates[%d]: %w", i, err)
		}
	}
	for i, rule := range cfg.Award.PublicHolidayRules {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return fmt.Errorf("invalid rrule in publicHolidayRules[%d]: %w", i, err)
		}
	}

	return nil
}

func (w WeightsConfig) sum() float64 {
	return w.Certification + w.Training + w.Experience + w.Distance + w.Cost
}

// AwardConfig converts the loaded tables into the award engine's form.
func (c *Config) AwardConfig() award.Config {
	penalties := make(map[award.SegmentType]float64, len(c.Award.PenaltyMultipliers))
	for name, mult := range c.Award.PenaltyMultipliers {
		penalties[award.SegmentType(name)] = mult
	}

	return award.Config{
		LevelMultipliers:             c.Award.LevelMultipliers,
		PenaltyMultipliers:           penalties,
		EveningStartHour:             c.Award.EveningStartHour,
		NightEndHour:                 c.Award.NightEndHour,
		OvertimeThresholdHours:       c.Award.OvertimeThresholdHours,
		OvertimeFirstTierHours:       c.Award.OvertimeFirstTierHours,
		OvertimeFirstTierMultiplier:  c.Award.OvertimeFirstTierMultiplier,
		OvertimeSecondTierMultiplier: c.Award.OvertimeSecondTierMultiplier,
		MinBreakHours:                c.Award.MinBreakHours,
	}
}

// MatchingConfig converts the loaded settings into the matching engine's form.
func (c *Config) MatchingConfig() matching.Config {
	return matching.Config{
		Weights: matching.Weights{
			Certification: c.Matching.Weights.Certification,
			Training:      c.Matching.Weights.Training,
			Experience:    c.Matching.Weights.Experience,
			Distance:      c.Matching.Weights.Distance,
			Cost:          c.Matching.Weights.Cost,
		},
		MaxDistanceKm:          c.Matching.MaxDistanceKm,
		ExperienceCeilingHours: c.Matching.ExperienceCeilingHours,
		CertExpiryWarningDays:  c.Matching.CertExpiryWarningDays,
		Award:                  c.AwardConfig(),
	}
}

// findConfigFile searches for roster_config.yaml in the current directory
// and the user's home directory.
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
