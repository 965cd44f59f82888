package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/EV_Dataset_IN_sales.csv", cfg.Inputs.Sales)
	assert.Equal(t, "data/ev-charging-stations-india.csv", cfg.Inputs.Chargers)
	assert.Equal(t, "data/in.csv", cfg.Inputs.Cities)
	assert.Equal(t, "data", cfg.Output.Dir)
	assert.Equal(t, 2023, cfg.Run.TargetYear)
	assert.InDelta(t, 0.12, cfg.Run.GrowthRate, 0.001)
	assert.Equal(t, 5, cfg.Run.HorizonYears)
	assert.InDelta(t, 55, cfg.Run.TargetPer10kEv, 0.001)
	assert.InDelta(t, 0.9, cfg.Run.GapHighThreshold, 0.001)
	assert.Len(t, cfg.Run.CitiesOfInterest, 24)
	assert.Contains(t, cfg.Run.CitiesOfInterest, "mumbai")
	assert.Contains(t, cfg.Run.CitiesOfInterest, "aurangabad")
	assert.InDelta(t, 74714, cfg.Run.FallbackStateEv["telangana"], 0.001)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
inputs:
  sales: /srv/data/sales.csv
run:
  target_year: 2024
  growth_rate: 0.08
  fallback_state_ev:
    telangana: 80000
    sikkim: 120
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/data/sales.csv", cfg.Inputs.Sales)
	assert.Equal(t, 2024, cfg.Run.TargetYear)
	assert.InDelta(t, 0.08, cfg.Run.GrowthRate, 0.001)
	assert.InDelta(t, 80000, cfg.Run.FallbackStateEv["telangana"], 0.001)
	assert.InDelta(t, 120, cfg.Run.FallbackStateEv["sikkim"], 0.001)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Defaults still apply for unset values
	assert.Equal(t, 5, cfg.Run.HorizonYears)
	assert.Len(t, cfg.Run.CitiesOfInterest, 24)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("EVGAP_RUN_TARGET_YEAR", "2022")
	t.Setenv("EVGAP_OUTPUT_DIR", "/tmp/out")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2022, cfg.Run.TargetYear)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NotNil(t, zap.L())

	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
