package main

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gridsage/evgap-cli/internal/config"
	"github.com/gridsage/evgap-cli/internal/ingest"
	"github.com/gridsage/evgap-cli/internal/pipeline"
)

var (
	runSales    string
	runChargers string
	runCities   string
	runOut      string
	runScenario string
	runDryRun   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full gap analysis pipeline",
	Long: `Loads the three input tables, runs every pipeline stage, and writes
the four output tables. Structural input problems (missing columns,
unparseable numbers) abort before anything is written; data gaps
(unmatched names, zero denominators) are absorbed with explicit
defaults and never fail the batch.

Examples:
  # Reference run using paths from config.yaml
  evgap run

  # Explicit inputs and output directory
  evgap run --sales sales.csv --chargers stations.csv --cities in.csv --out ./out

  # Parse and validate inputs only, write nothing
  evgap run --dry-run

  # Overlay what-if parameters without editing config
  evgap run --scenario aggressive-growth.yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		run := cfg.Run
		if runScenario != "" {
			s, err := config.LoadScenario(runScenario)
			if err != nil {
				return err
			}
			s.Apply(&run)
			zap.L().Info("scenario applied", zap.String("path", runScenario))
		}

		paths := inputPaths(runSales, runChargers, runCities)
		in, err := loadInputs(ctx, paths)
		if err != nil {
			return err
		}
		zap.L().Info("inputs loaded",
			zap.Int("sales_rows", len(in.Sales)),
			zap.Int("charger_rows", len(in.Chargers)),
			zap.Int("city_rows", len(in.Cities)),
		)

		if runDryRun {
			zap.L().Info("dry run: inputs parsed cleanly, skipping pipeline")
			return nil
		}

		res, err := pipeline.Run(ctx, run, in)
		if err != nil {
			return eris.Wrap(err, "run: pipeline")
		}

		outDir := cfg.Output.Dir
		if runOut != "" {
			outDir = runOut
		}
		written, err := pipeline.WriteOutputs(res, outDir)
		if err != nil {
			return eris.Wrap(err, "run: write outputs")
		}
		for _, p := range written {
			zap.L().Info("output written", zap.String("path", p))
		}
		zap.L().Info("run complete",
			zap.String("run_id", res.RunID),
			zap.Int("cities", len(res.Master)),
			zap.Int("outputs", len(written)),
		)
		return nil
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runSales, "sales", "", "EV sales CSV (overrides config)")
	f.StringVar(&runChargers, "chargers", "", "charging station registry CSV (overrides config)")
	f.StringVar(&runCities, "cities", "", "city gazetteer CSV (overrides config)")
	f.StringVar(&runOut, "out", "", "output directory (overrides config)")
	f.StringVar(&runScenario, "scenario", "", "YAML scenario overlay for run parameters")
	f.BoolVar(&runDryRun, "dry-run", false, "parse and validate inputs, then exit")

	rootCmd.AddCommand(runCmd)
}

// inputPaths resolves input locations: flags win over config.
func inputPaths(sales, chargers, cities string) config.InputsConfig {
	p := cfg.Inputs
	if sales != "" {
		p.Sales = sales
	}
	if chargers != "" {
		p.Chargers = chargers
	}
	if cities != "" {
		p.Cities = cities
	}
	return p
}

// loadInputs reads the three input tables concurrently. All loading
// completes before any transformation starts; the first structural
// error aborts the lot.
func loadInputs(ctx context.Context, paths config.InputsConfig) (pipeline.Inputs, error) {
	var in pipeline.Inputs

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := os.Open(paths.Sales)
		if err != nil {
			return eris.Wrapf(err, "open sales %s", paths.Sales)
		}
		defer f.Close()
		in.Sales, err = ingest.ReadSales(gCtx, f)
		return err
	})
	g.Go(func() error {
		f, err := os.Open(paths.Chargers)
		if err != nil {
			return eris.Wrapf(err, "open chargers %s", paths.Chargers)
		}
		defer f.Close()
		in.Chargers, err = ingest.ReadChargers(gCtx, f)
		return err
	})
	g.Go(func() error {
		f, err := os.Open(paths.Cities)
		if err != nil {
			return eris.Wrapf(err, "open cities %s", paths.Cities)
		}
		defer f.Close()
		in.Cities, err = ingest.ReadCities(gCtx, f)
		return err
	})

	if err := g.Wait(); err != nil {
		return pipeline.Inputs{}, err
	}
	return in, nil
}
