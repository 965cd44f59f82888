package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rotisserie/eris"
)

// Output file names. Downstream dashboards read these by name and by
// exact column order.
const (
	FileFinalMaster      = "final_master.csv"
	FileForecast         = "forecast_ev_5y.csv"
	FileRecommendations  = "charger_recommendations.csv"
	FileNationalForecast = "forecast_ev_5y_national.csv"
)

// WriteOutputs writes the four output tables into dir. All files are
// staged to temporary names first and renamed only after every table
// wrote cleanly, so a failed run never leaves a partial or corrupt
// output behind. Returns the paths written, in write order.
func WriteOutputs(res *Result, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "report: create output dir %s", dir)
	}

	files := []struct {
		name  string
		write func(*csv.Writer) error
	}{
		{FileFinalMaster, res.writeFinalMaster},
		{FileForecast, res.writeForecast},
		{FileRecommendations, res.writeRecommendations},
		{FileNationalForecast, res.writeNational},
	}

	staged := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for _, f := range files {
		tmp := filepath.Join(dir, f.name+".tmp")
		if err := writeCSV(tmp, f.write); err != nil {
			cleanup()
			return nil, eris.Wrapf(err, "report: write %s", f.name)
		}
		staged = append(staged, tmp)
	}

	paths := make([]string, 0, len(files))
	for i, f := range files {
		final := filepath.Join(dir, f.name)
		if err := os.Rename(staged[i], final); err != nil {
			cleanup()
			return nil, eris.Wrapf(err, "report: commit %s", f.name)
		}
		paths = append(paths, final)
	}
	return paths, nil
}

func writeCSV(path string, write func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "create")
	}
	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return eris.Wrap(err, "flush")
	}
	return eris.Wrap(f.Close(), "close")
}

func (res *Result) writeFinalMaster(w *csv.Writer) error {
	header := []string{
		"city", "state", "lat", "lng", "population", "chargingStations",
		"state_ev", "state_population", "population_share", "estimated_ev",
		"charger_ev_ratio", "gap_score", "priority",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, m := range res.Master {
		row := []string{
			m.CityKey,
			m.StateKey,
			formatFloat(m.Lat),
			formatFloat(m.Lng),
			formatFloat(m.Population),
			strconv.Itoa(m.ChargingStations),
			formatFloat(m.StateEv),
			formatFloat(m.StatePopulation),
			formatFloat(m.PopulationShare),
			formatFloat(m.EstimatedEv),
			formatFloat(m.ChargerEvRatio),
			formatFloat(m.GapScore),
			string(m.Priority),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (res *Result) writeForecast(w *csv.Writer) error {
	header := []string{"city", "state", "estimated_ev"}
	for _, y := range res.ForecastYears {
		header = append(header, fmt.Sprintf("ev_forecast_%d", y))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, f := range res.Forecasts {
		row := []string{f.CityKey, f.StateKey, formatFloat(f.EstimatedEv)}
		for _, v := range f.Values {
			row = append(row, strconv.FormatInt(v, 10))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (res *Result) writeRecommendations(w *csv.Writer) error {
	header := []string{
		"city", "state", "lat", "lng", "population", "chargingstations",
		"state_ev", "state_population", "population_share", "estimated_ev",
		"charger_ev_ratio", "gap_score", "priority",
		"future_ev_demand", "chargers_per_10k_ev", "new_stations_needed",
		"recommendation_level",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range res.Recommendations {
		row := []string{
			r.CityKey,
			r.StateKey,
			formatFloat(r.Lat),
			formatFloat(r.Lng),
			formatFloat(r.Population),
			strconv.Itoa(r.ChargingStations),
			formatFloat(r.StateEv),
			formatFloat(r.StatePopulation),
			formatFloat(r.PopulationShare),
			formatFloat(r.EstimatedEv),
			formatFloat(r.ChargerEvRatio),
			formatFloat(r.GapScore),
			string(r.Priority),
			strconv.FormatInt(r.FutureEvDemand, 10),
			formatFloat(r.ChargersPer10kEv),
			strconv.FormatInt(r.NewStationsNeeded, 10),
			r.Level,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (res *Result) writeNational(w *csv.Writer) error {
	if err := w.Write([]string{"year", "ev_sales_forecast"}); err != nil {
		return err
	}
	for _, n := range res.National {
		row := []string{strconv.Itoa(n.Year), strconv.FormatInt(n.EvSales, 10)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// formatFloat renders with the minimal digits that round-trip, never in
// exponent notation, so re-running on identical inputs is byte-identical.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
