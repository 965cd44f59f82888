package pipeline

import (
	"github.com/gridsage/evgap-cli/internal/model"
)

// ScoreGaps left-joins charger counts onto the apportioned city metrics
// and fills in the adequacy scores. Total function: every input row
// produces exactly one output row, and the ratio is never NaN or Inf —
// a city with estimated_ev 0 gets ratio 0 by policy.
//
// Priority is HIGH when the gap score exceeds highThreshold, else
// MEDIUM. The gap score is 1 − ratio, so a well-served city can go
// negative; that still classifies as MEDIUM.
func ScoreGaps(metrics []model.CityMetrics, counts map[string]int, highThreshold float64) []model.CityMetrics {
	out := make([]model.CityMetrics, len(metrics))
	for i, m := range metrics {
		m.ChargingStations = counts[m.CityKey] // 0 on miss

		m.ChargerEvRatio = 0
		if m.EstimatedEv > 0 {
			m.ChargerEvRatio = float64(m.ChargingStations) / m.EstimatedEv
		}
		m.GapScore = 1 - m.ChargerEvRatio

		m.Priority = model.PriorityMedium
		if m.GapScore > highThreshold {
			m.Priority = model.PriorityHigh
		}
		out[i] = m
	}
	return out
}
