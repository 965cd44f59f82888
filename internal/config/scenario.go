package config

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Scenario is a declarative overlay of run parameters, loaded from a
// YAML file. Only fields present in the file override the base config,
// so one scenario file can tweak a single threshold without restating
// the rest. Enables running alternate what-if analyses without touching
// config.yaml or the environment.
type Scenario struct {
	TargetYear       *int               `yaml:"target_year"`
	GrowthRate       *float64           `yaml:"growth_rate"`
	HorizonYears     *int               `yaml:"horizon_years"`
	TargetPer10kEv   *float64           `yaml:"target_per_10k_ev"`
	GapHighThreshold *float64           `yaml:"gap_high_threshold"`
	CitiesOfInterest []string           `yaml:"cities_of_interest"`
	FallbackStateEv  map[string]float64 `yaml:"fallback_state_ev"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "config: read scenario %s", path)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, eris.Wrapf(err, "config: parse scenario %s", path)
	}
	return &s, nil
}

// Apply overlays the scenario onto a run configuration. Nil and absent
// fields leave the base value untouched.
func (s *Scenario) Apply(run *RunConfig) {
	if s.TargetYear != nil {
		run.TargetYear = *s.TargetYear
	}
	if s.GrowthRate != nil {
		run.GrowthRate = *s.GrowthRate
	}
	if s.HorizonYears != nil {
		run.HorizonYears = *s.HorizonYears
	}
	if s.TargetPer10kEv != nil {
		run.TargetPer10kEv = *s.TargetPer10kEv
	}
	if s.GapHighThreshold != nil {
		run.GapHighThreshold = *s.GapHighThreshold
	}
	if s.CitiesOfInterest != nil {
		run.CitiesOfInterest = s.CitiesOfInterest
	}
	if s.FallbackStateEv != nil {
		run.FallbackStateEv = s.FallbackStateEv
	}
}
