package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/expanse-model/expanse/core/pkg/config"
)

func TestExpanse_Config(t *testing.T) {
	t.Parallel()

	t.Run("parses_complete_configuration", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`
wacc: 0.05
leap_years_investment: 5
number_of_periods: 8
forecast_horizon_year: 2060
number_of_scenarios: 10
use_temporary_directory: true
temporary_directory: /tmp
use_scenario_generation: true
`)
		cfg, err := config.Parse(raw)
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())
		require.Equal(t, 0.05, cfg.WACC)
		require.True(t, cfg.UseTemporaryDirectory)
		require.Equal(t, "/tmp", cfg.TemporaryDirectory)
		require.Equal(t, 10, cfg.NumberOfScenarios)
	})

	t.Run("missing_keys_get_zero_values_and_season_default", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`
use_temporary_directory: true
temporary_directory: /tmp
forecast_horizon_year: 2025
number_of_scenarios: 10
`)
		cfg, err := config.Parse(raw)
		require.NoError(t, err)
		require.Zero(t, cfg.WACC)
		require.Equal(t, []string{"winter", "spring", "summer", "fall"}, cfg.RegularSeasons)
	})

	t.Run("validate_rejects_missing_horizon_layout", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Parse([]byte(`number_of_periods: 8`))
		require.NoError(t, err)

		var cfgErr *config.ConfigurationError
		require.ErrorAs(t, cfg.Validate(), &cfgErr)
		require.Equal(t, "leap_years_investment", cfgErr.Key)
	})

	t.Run("from_file_reads_yaml_document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte("number_of_periods: 3\n"), 0o644))

		cfg, err := config.FromFile(path)
		require.NoError(t, err)
		require.Equal(t, 3, cfg.NumberOfPeriods)
	})

	t.Run("period_year_anchors_last_period_to_horizon", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Configuration{
			NumberOfPeriods:     8,
			LeapYearsInvestment: 5,
			ForecastHorizonYear: 2060,
		}
		require.Equal(t, 2025, cfg.PeriodYear(1))
		require.Equal(t, 2060, cfg.PeriodYear(8))
	})

	t.Run("explicit_base_year_wins", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Configuration{
			NumberOfPeriods:     8,
			LeapYearsInvestment: 5,
			ForecastHorizonYear: 2060,
			BaseYear:            2020,
		}
		require.Equal(t, 2020, cfg.PeriodYear(1))
		require.Equal(t, 2055, cfg.PeriodYear(8))
	})
}

func TestExpanse_Config_RunPaths(t *testing.T) {
	t.Parallel()

	t.Run("derives_run_layout", func(t *testing.T) {
		t.Parallel()

		p := config.NewRunPaths("/opt/expanse", "/opt/expanse/Results/run1")
		require.Equal(t, filepath.Join("/opt/expanse/Results/run1", "Input", "Xlsx"), p.Dataset)
		require.Equal(t, filepath.Join("/opt/expanse/Results/run1", "Output"), p.Results)
		require.Equal(t, filepath.Join("/opt/expanse", "config", "countries.json"), p.Countries)
		require.Equal(t, filepath.Join(p.Results, "results_objective.csv"), p.ObjectivePath())
	})

	t.Run("ensure_creates_directory_tree", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		p := config.NewRunPaths(root, filepath.Join(root, "Results", "run1"))
		require.NoError(t, p.Ensure())

		for _, dir := range []string{p.Dataset, p.ScenarioData, p.Results} {
			info, err := os.Stat(dir)
			require.NoError(t, err)
			require.True(t, info.IsDir())
		}
	})
}
