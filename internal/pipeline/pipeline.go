package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gridsage/evgap-cli/internal/config"
	"github.com/gridsage/evgap-cli/internal/model"
	"github.com/gridsage/evgap-cli/internal/normalize"
)

// Inputs are the three fully loaded source tables. All loading happens
// before Run; no stage touches I/O mid-computation.
type Inputs struct {
	Sales    []model.SalesRecord
	Chargers []model.ChargerRecord
	Cities   []model.CityLocation
}

// Result holds every derived table of one batch run.
type Result struct {
	RunID           string
	BaseYear        int // most recent sales year; forecasts start the year after
	ForecastYears   []int
	StateTotals     []model.StateEvTotal
	Master          []model.CityMetrics
	Forecasts       []model.ForecastRow
	Recommendations []model.RecommendationRow
	National        []model.NationalForecast
}

// Run executes the full pipeline over immutable inputs. Each run fully
// regenerates every derived table; nothing is updated in place.
//
// The two independent input aggregations (state sales totals, charger
// counts) run concurrently; both are order-independent reductions, so
// the result is deterministic regardless of scheduling.
func Run(ctx context.Context, run config.RunConfig, in Inputs) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	log := zap.L().With(zap.String("run_id", res.RunID))

	res.BaseYear = LatestSalesYear(in.Sales, run.TargetYear)
	res.ForecastYears = ForecastYears(res.BaseYear, run.HorizonYears)

	var chargerCounts map[string]int
	var g errgroup.Group
	g.Go(func() error {
		res.StateTotals = AggregateStateSales(in.Sales, run.TargetYear, run.FallbackStateEv)
		return nil
	})
	g.Go(func() error {
		chargerCounts = CountChargersPerCity(in.Chargers)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info("state sales aggregated",
		zap.Int("target_year", run.TargetYear),
		zap.Int("states", len(res.StateTotals)),
	)
	log.Info("charger counts computed", zap.Int("cities", len(chargerCounts)))

	cities := normalize.Keys(run.CitiesOfInterest)
	partial := ApportionCities(in.Cities, cities, TotalsByState(res.StateTotals))
	log.Info("city EV distribution computed", zap.Int("rows", len(partial)))

	res.Master = ScoreGaps(partial, chargerCounts, run.GapHighThreshold)

	res.Forecasts = ForecastDemand(res.Master, res.BaseYear, run.HorizonYears, run.GrowthRate)
	log.Info("demand forecast computed",
		zap.Int("base_year", res.BaseYear),
		zap.Int("horizon_years", run.HorizonYears),
		zap.Float64("growth_rate", run.GrowthRate),
	)

	recs, err := Recommend(res.Master, res.Forecasts, run.TargetPer10kEv)
	if err != nil {
		return nil, err
	}
	res.Recommendations = recs

	res.National = NationalForecast(in.Sales, res.BaseYear, run.HorizonYears)
	log.Info("national forecast computed", zap.Int("years", len(res.National)))

	return res, nil
}
