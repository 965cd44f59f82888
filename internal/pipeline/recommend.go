package pipeline

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/gridsage/evgap-cli/internal/model"
)

// cityState is the join identity for metrics and forecast rows.
type cityState struct {
	city, state string
}

// Recommend compares a future-year charger target against current
// counts. The join to the forecast's final-year value is by
// (city, state); both sides derive from the same metrics set, so a
// missing forecast row is a defect in the caller, reported as an error
// rather than recovered from.
//
// new_stations_needed = max(0, round(targetPer10k * future/10000 − stations)),
// never negative. chargers_per_10k_ev is 0 when future demand is 0.
func Recommend(metrics []model.CityMetrics, forecasts []model.ForecastRow, targetPer10k float64) ([]model.RecommendationRow, error) {
	byCity := make(map[cityState]model.ForecastRow, len(forecasts))
	for _, f := range forecasts {
		byCity[cityState{f.CityKey, f.StateKey}] = f
	}

	out := make([]model.RecommendationRow, len(metrics))
	for i, m := range metrics {
		f, ok := byCity[cityState{m.CityKey, m.StateKey}]
		if !ok {
			return nil, eris.Errorf("recommend: no forecast row for %s/%s", m.CityKey, m.StateKey)
		}
		future := f.FinalYearValue()

		per10k := 0.0
		if future > 0 {
			per10k = float64(m.ChargingStations) / (float64(future) / 10000)
		}

		needed := math.Round(targetPer10k*float64(future)/10000 - float64(m.ChargingStations))
		if needed < 0 {
			needed = 0
		}

		level := model.RecommendationAdequate
		if needed > 0 {
			level = model.RecommendationCritical
		}

		out[i] = model.RecommendationRow{
			CityMetrics:       m,
			FutureEvDemand:    future,
			ChargersPer10kEv:  per10k,
			NewStationsNeeded: int64(needed),
			Level:             level,
		}
	}
	return out, nil
}
