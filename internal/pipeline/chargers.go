package pipeline

import (
	"github.com/gridsage/evgap-cli/internal/model"
)

// CountChargersPerCity counts registered stations per normalized city
// key. Cities with no stations are absent from the map; the gap scorer
// defaults misses to 0. Rows with an empty city key are unjoinable and
// counted nowhere.
func CountChargersPerCity(chargers []model.ChargerRecord) map[string]int {
	counts := make(map[string]int)
	for _, rec := range chargers {
		if rec.CityKey == "" {
			continue
		}
		counts[rec.CityKey]++
	}
	return counts
}
