// Package model defines the input records and derived entities of the
// EV charger gap pipeline.
package model

// SalesRecord is one row of the national EV sales dataset: total EV
// units sold in one state in one year.
type SalesRecord struct {
	State    string  `json:"state"`
	StateKey string  `json:"state_key"` // normalized join key, empty when State is blank
	Year     int     `json:"year"`
	Quantity float64 `json:"ev_sales_quantity"`
}

// ChargerRecord is one row of the charging station registry. Each row is
// one physical station; only its city/state placement matters here.
type ChargerRecord struct {
	State    string `json:"state"`
	City     string `json:"city"`
	StateKey string `json:"state_key"`
	CityKey  string `json:"city_key"`
}

// CityLocation is one row of the city gazetteer.
type CityLocation struct {
	City       string  `json:"city"`
	AdminName  string  `json:"admin_name"`
	CityKey    string  `json:"city_key"`
	StateKey   string  `json:"state_key"`
	Population float64 `json:"population"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// StateEvTotal is the per-state EV sales total for the target year.
// StateKey values are unique within one aggregation result.
type StateEvTotal struct {
	StateKey string  `json:"state_key"`
	StateEv  float64 `json:"state_ev"`
}
