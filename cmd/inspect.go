package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gridsage/evgap-cli/internal/pipeline"
)

var (
	inspectSales    string
	inspectChargers string
	inspectCities   string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Preview input data quality without running the pipeline",
	Long: `Parses the three input tables and reports row counts, distinct key
counts, the sales year range, and how many rows carry unjoinable
(blank) names. Useful before a run to see what a join will drop.

Examples:
  evgap inspect
  evgap inspect --sales sales.csv --chargers stations.csv --cities in.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		in, err := loadInputs(cmd.Context(), inputPaths(inspectSales, inspectChargers, inspectCities))
		if err != nil {
			return err
		}
		printInspection(cmd.OutOrStdout(), in)
		return nil
	},
}

func init() {
	f := inspectCmd.Flags()
	f.StringVar(&inspectSales, "sales", "", "EV sales CSV (overrides config)")
	f.StringVar(&inspectChargers, "chargers", "", "charging station registry CSV (overrides config)")
	f.StringVar(&inspectCities, "cities", "", "city gazetteer CSV (overrides config)")

	rootCmd.AddCommand(inspectCmd)
}

func printInspection(w io.Writer, in pipeline.Inputs) {
	states := make(map[string]bool)
	years := make(map[int]bool)
	var salesBlank int
	for _, r := range in.Sales {
		if r.StateKey == "" {
			salesBlank++
			continue
		}
		states[r.StateKey] = true
		years[r.Year] = true
	}

	chargerCities := make(map[string]bool)
	var chargerBlank int
	for _, r := range in.Chargers {
		if r.CityKey == "" {
			chargerBlank++
			continue
		}
		chargerCities[r.CityKey] = true
	}

	gazetteerCities := make(map[string]bool)
	var cityBlank int
	for _, r := range in.Cities {
		if r.CityKey == "" || r.StateKey == "" {
			cityBlank++
			continue
		}
		gazetteerCities[r.CityKey] = true
	}

	fmt.Fprintf(w, "sales:    %d rows, %d states, years %s, %d unjoinable\n",
		len(in.Sales), len(states), yearRange(years), salesBlank)
	fmt.Fprintf(w, "chargers: %d rows, %d cities, %d unjoinable\n",
		len(in.Chargers), len(chargerCities), chargerBlank)
	fmt.Fprintf(w, "cities:   %d rows, %d distinct cities, %d unjoinable\n",
		len(in.Cities), len(gazetteerCities), cityBlank)
}

func yearRange(years map[int]bool) string {
	if len(years) == 0 {
		return "none"
	}
	sorted := make([]int, 0, len(years))
	for y := range years {
		sorted = append(sorted, y)
	}
	sort.Ints(sorted)
	return fmt.Sprintf("%d-%d", sorted[0], sorted[len(sorted)-1])
}
