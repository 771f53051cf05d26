// Package config holds the run configuration: horizon and period layout,
// scenario generation toggles and working directories for one analysis run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRegularSeasons is the season layout assumed when the configuration
// does not override it.
var DefaultRegularSeasons = []string{"winter", "spring", "summer", "fall"}

// Configuration is the parsed run configuration document. Zero values mean
// the key was absent; Validate enforces the keys a run cannot do without.
type Configuration struct {
	WACC                     float64  `yaml:"wacc"`
	LeapYearsInvestment      int      `yaml:"leap_years_investment"`
	NumberOfPeriods          int      `yaml:"number_of_periods"`
	ForecastHorizonYear      int      `yaml:"forecast_horizon_year"`
	NumberOfScenarios        int      `yaml:"number_of_scenarios"`
	LengthOfRegularSeason    int      `yaml:"length_of_regular_season"`
	UseTemporaryDirectory    bool     `yaml:"use_temporary_directory"`
	TemporaryDirectory       string   `yaml:"temporary_directory"`
	UseScenarioGeneration    bool     `yaml:"use_scenario_generation"`
	AdditionalLoadIsBaseload bool     `yaml:"additional_load_is_baseload"`
	BaseYear                 int      `yaml:"base_year"`
	RegularSeasons           []string `yaml:"regular_seasons"`
}

// FromFile reads and parses a YAML run configuration.
func FromFile(path string) (*Configuration, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return Parse(raw)
}

// Parse parses a YAML run configuration document.
func Parse(raw []byte) (*Configuration, error) {
	var cfg Configuration
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.RegularSeasons == nil {
		cfg.RegularSeasons = append([]string(nil), DefaultRegularSeasons...)
	}
	return &cfg, nil
}

// Validate checks the keys required to lay out the investment horizon.
func (c *Configuration) Validate() error {
	if c.NumberOfPeriods <= 0 {
		return &ConfigurationError{Key: "number_of_periods", Reason: "must be positive"}
	}
	if c.LeapYearsInvestment <= 0 {
		return &ConfigurationError{Key: "leap_years_investment", Reason: "must be positive"}
	}
	if c.ForecastHorizonYear <= 0 && c.BaseYear <= 0 {
		return &ConfigurationError{Key: "forecast_horizon_year", Reason: "either forecast_horizon_year or base_year is required"}
	}
	if c.UseTemporaryDirectory && c.TemporaryDirectory == "" {
		return &ConfigurationError{Key: "temporary_directory", Reason: "required when use_temporary_directory is set"}
	}
	return nil
}

// PeriodYear maps a 1-based investment period to the calendar year it
// starts. Without an explicit base_year the horizon is anchored so the last
// period lands on forecast_horizon_year.
func (c *Configuration) PeriodYear(period int) int {
	base := c.BaseYear
	if base == 0 {
		base = c.ForecastHorizonYear - (c.NumberOfPeriods-1)*c.LeapYearsInvestment
	}
	return base + (period-1)*c.LeapYearsInvestment
}
