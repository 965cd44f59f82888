package pipeline

import (
	"math"

	"github.com/gridsage/evgap-cli/internal/model"
)

// ForecastDemand projects each city's estimated EV count forward under
// a fixed compound annual growth rate. For offset i in 1..horizonYears
// the projection for year baseYear+i is
//
//	round(estimated_ev * (1+growthRate)^i)
//
// rounded half away from zero after the full power computation; no
// intermediate term is rounded. The growth model is pure compounding —
// one global rate, no per-city calibration, no cap.
func ForecastDemand(metrics []model.CityMetrics, baseYear, horizonYears int, growthRate float64) []model.ForecastRow {
	years := ForecastYears(baseYear, horizonYears)

	out := make([]model.ForecastRow, len(metrics))
	for i, m := range metrics {
		values := make([]int64, horizonYears)
		for off := 1; off <= horizonYears; off++ {
			values[off-1] = int64(math.Round(m.EstimatedEv * math.Pow(1+growthRate, float64(off))))
		}
		out[i] = model.ForecastRow{
			CityKey:     m.CityKey,
			StateKey:    m.StateKey,
			EstimatedEv: m.EstimatedEv,
			Years:       years,
			Values:      values,
		}
	}
	return out
}

// ForecastYears lists the horizon: consecutive years starting the year
// after baseYear.
func ForecastYears(baseYear, horizonYears int) []int {
	years := make([]int, horizonYears)
	for i := range years {
		years[i] = baseYear + i + 1
	}
	return years
}
