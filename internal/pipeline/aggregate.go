// Package pipeline implements the batch stages that turn the three raw
// inputs into city-level gap metrics, demand forecasts, and expansion
// recommendations. Every stage is a pure function over in-memory tables;
// the orchestrator in pipeline.go wires them together.
package pipeline

import (
	"sort"

	"github.com/gridsage/evgap-cli/internal/model"
	"github.com/gridsage/evgap-cli/internal/normalize"
)

// AggregateStateSales reduces raw sales rows to one EV total per state
// for the target year. Rows for the same state are summed. Fallback
// entries backfill states known to be missing from the raw data; a
// fallback never overrides a state that aggregated from real rows.
//
// Rows with an unjoinable (empty) state key are excluded. The result is
// sorted by state key so emission order does not depend on input order.
func AggregateStateSales(sales []model.SalesRecord, targetYear int, fallback map[string]float64) []model.StateEvTotal {
	totals := make(map[string]float64)
	for _, rec := range sales {
		if rec.Year != targetYear || rec.StateKey == "" {
			continue
		}
		totals[rec.StateKey] += rec.Quantity
	}

	for state, ev := range fallback {
		key := normalize.Key(state)
		if key == "" {
			continue
		}
		if _, ok := totals[key]; !ok {
			totals[key] = ev
		}
	}

	out := make([]model.StateEvTotal, 0, len(totals))
	for key, ev := range totals {
		out = append(out, model.StateEvTotal{StateKey: key, StateEv: ev})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StateKey < out[j].StateKey })
	return out
}

// TotalsByState indexes state totals by key for the apportionment join.
func TotalsByState(totals []model.StateEvTotal) map[string]float64 {
	m := make(map[string]float64, len(totals))
	for _, t := range totals {
		m[t.StateKey] = t.StateEv
	}
	return m
}

// LatestSalesYear returns the most recent year present in the sales
// data. Forecast horizons start the year after it. With no sales rows
// at all it falls back to the given target year.
func LatestSalesYear(sales []model.SalesRecord, targetYear int) int {
	latest := targetYear
	for _, rec := range sales {
		if rec.Year > latest {
			latest = rec.Year
		}
	}
	return latest
}
