package pipeline

import (
	"github.com/gridsage/evgap-cli/internal/model"
)

// ApportionCities distributes each state's EV total across that state's
// cities of interest by population share.
//
// The state population denominator is the sum of populations over the
// selected cities only — a population-of-interest proxy, not the true
// state population — so population shares within a state sum to exactly
// 1 and estimated EV counts sum back to the state total.
//
// A city whose state is absent from stateTotals gets estimated_ev 0,
// not a missing value. Rows whose city key is not selected, or whose
// city or state key is empty (unjoinable), are dropped. Duplicate city
// names in different states survive as distinct rows: identity is the
// (city, state) pair. Output preserves gazetteer order.
func ApportionCities(locations []model.CityLocation, citiesOfInterest map[string]bool, stateTotals map[string]float64) []model.CityMetrics {
	var selected []model.CityLocation
	statePop := make(map[string]float64)
	for _, loc := range locations {
		if loc.CityKey == "" || loc.StateKey == "" || !citiesOfInterest[loc.CityKey] {
			continue
		}
		selected = append(selected, loc)
		statePop[loc.StateKey] += loc.Population
	}

	out := make([]model.CityMetrics, 0, len(selected))
	for _, loc := range selected {
		sp := statePop[loc.StateKey]
		share := 0.0
		if sp > 0 {
			share = loc.Population / sp
		}
		ev := stateTotals[loc.StateKey] // 0 when the state is absent

		out = append(out, model.CityMetrics{
			CityKey:         loc.CityKey,
			StateKey:        loc.StateKey,
			Lat:             loc.Lat,
			Lng:             loc.Lng,
			Population:      loc.Population,
			StatePopulation: sp,
			StateEv:         ev,
			PopulationShare: share,
			EstimatedEv:     ev * share,
		})
	}
	return out
}
