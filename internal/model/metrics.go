package model

// Priority classifies how under-provisioned a city is.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
)

// CityMetrics is the central derived entity: one row per city-of-interest
// gazetteer row. The effective identity is (CityKey, StateKey) — the same
// city name in two states produces two distinct rows.
type CityMetrics struct {
	CityKey          string   `json:"city"`
	StateKey         string   `json:"state"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	Population       float64  `json:"population"`
	StatePopulation  float64  `json:"state_population"` // sum over cities of interest, not true state population
	StateEv          float64  `json:"state_ev"`
	PopulationShare  float64  `json:"population_share"`
	EstimatedEv      float64  `json:"estimated_ev"`
	ChargingStations int      `json:"charging_stations"`
	ChargerEvRatio   float64  `json:"charger_ev_ratio"` // 0 when EstimatedEv is 0, never NaN/Inf
	GapScore         float64  `json:"gap_score"`
	Priority         Priority `json:"priority"`
}

// ForecastRow holds one city's projected EV counts for consecutive future
// years. Values[i] is the projection for Years[i].
type ForecastRow struct {
	CityKey     string  `json:"city"`
	StateKey    string  `json:"state"`
	EstimatedEv float64 `json:"estimated_ev"`
	Years       []int   `json:"years"`
	Values      []int64 `json:"values"`
}

// FinalYearValue returns the projection for the last forecast year, or 0
// for an empty horizon.
func (f ForecastRow) FinalYearValue() int64 {
	if len(f.Values) == 0 {
		return 0
	}
	return f.Values[len(f.Values)-1]
}

// Recommendation levels for charger expansion.
const (
	RecommendationCritical = "Critical Expansion Needed"
	RecommendationAdequate = "Adequate"
)

// RecommendationRow extends CityMetrics with the expansion recommendation
// derived from the final forecast year.
type RecommendationRow struct {
	CityMetrics
	FutureEvDemand    int64   `json:"future_ev_demand"`
	ChargersPer10kEv  float64 `json:"chargers_per_10k_ev"` // 0 when FutureEvDemand is 0
	NewStationsNeeded int64   `json:"new_stations_needed"` // never negative
	Level             string  `json:"recommendation_level"`
}

// NationalForecast is one projected national sales total from the
// auxiliary linear-trend model.
type NationalForecast struct {
	Year    int   `json:"year"`
	EvSales int64 `json:"ev_sales_forecast"`
}
