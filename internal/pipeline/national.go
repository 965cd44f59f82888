package pipeline

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/gridsage/evgap-cli/internal/model"
)

// NationalForecast fits a linear trend over national yearly sales
// totals and projects it across the forecast horizon. Auxiliary report:
// it shares no state with the city-level pipeline.
//
// All sales rows count toward the yearly totals regardless of state.
// Projected values are truncated to integers. With fewer than two
// distinct years there is no trend to fit; the single year's total (or
// zero) carries forward flat.
func NationalForecast(sales []model.SalesRecord, baseYear, horizonYears int) []model.NationalForecast {
	byYear := make(map[int]float64)
	for _, rec := range sales {
		byYear[rec.Year] += rec.Quantity
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	predict := flatModel(byYear, years)
	if len(years) >= 2 {
		xs := make([]float64, len(years))
		ys := make([]float64, len(years))
		for i, y := range years {
			xs[i] = float64(y)
			ys[i] = byYear[y]
		}
		alpha, beta := stat.LinearRegression(xs, ys, nil, false)
		predict = func(year int) float64 { return alpha + beta*float64(year) }
	}

	out := make([]model.NationalForecast, horizonYears)
	for i, year := range ForecastYears(baseYear, horizonYears) {
		out[i] = model.NationalForecast{
			Year:    year,
			EvSales: int64(math.Trunc(predict(year))),
		}
	}
	return out
}

// flatModel carries the latest observed total forward unchanged, or
// zero when there is no data at all.
func flatModel(byYear map[int]float64, sortedYears []int) func(int) float64 {
	last := 0.0
	if len(sortedYears) > 0 {
		last = byYear[sortedYears[len(sortedYears)-1]]
	}
	return func(int) float64 { return last }
}
