package ingest

import (
	"context"
	"io"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/gridsage/evgap-cli/internal/model"
	"github.com/gridsage/evgap-cli/internal/normalize"
)

// Input column contracts. Consumers depend on these exact names (after
// header trimming); anything else in the files is ignored.
const (
	salesColState = "State"
	salesColYear  = "Year"
	salesColQty   = "EV_Sales_Quantity"

	chargerColState = "state"
	chargerColCity  = "city"

	cityColCity  = "city"
	cityColAdmin = "admin_name"
	cityColPop   = "population"
	cityColLat   = "lat"
	cityColLng   = "lng"
)

// ReadSales parses the EV sales table. Year must coerce to an integer;
// a blank quantity reads as 0, a malformed one is fatal.
func ReadSales(ctx context.Context, r io.Reader) ([]model.SalesRecord, error) {
	t, err := readTable(ctx, "sales", r)
	if err != nil {
		return nil, err
	}
	idx, err := t.require(salesColState, salesColYear, salesColQty)
	if err != nil {
		return nil, err
	}

	records := make([]model.SalesRecord, 0, len(t.rows))
	for i, row := range t.rows {
		yearRaw := t.cell(row, idx[1])
		year, err := strconv.Atoi(yearRaw)
		if err != nil {
			return nil, eris.Wrapf(ErrTypeCoercion, "ingest: sales: row %d: %s %q is not an integer", i+2, salesColYear, yearRaw)
		}
		qty, err := parseNumber("sales", salesColQty, i, t.cell(row, idx[2]))
		if err != nil {
			return nil, err
		}

		state := t.cell(row, idx[0])
		records = append(records, model.SalesRecord{
			State:    state,
			StateKey: normalize.Key(state),
			Year:     year,
			Quantity: qty,
		})
	}
	return records, nil
}

// ReadChargers parses the charging station registry. One record per row;
// extra columns beyond state/city are ignored.
func ReadChargers(ctx context.Context, r io.Reader) ([]model.ChargerRecord, error) {
	t, err := readTable(ctx, "chargers", r)
	if err != nil {
		return nil, err
	}
	idx, err := t.require(chargerColState, chargerColCity)
	if err != nil {
		return nil, err
	}

	records := make([]model.ChargerRecord, 0, len(t.rows))
	for _, row := range t.rows {
		state := t.cell(row, idx[0])
		city := t.cell(row, idx[1])
		records = append(records, model.ChargerRecord{
			State:    state,
			City:     city,
			StateKey: normalize.Key(state),
			CityKey:  normalize.Key(city),
		})
	}
	return records, nil
}

// ReadCities parses the city gazetteer.
func ReadCities(ctx context.Context, r io.Reader) ([]model.CityLocation, error) {
	t, err := readTable(ctx, "cities", r)
	if err != nil {
		return nil, err
	}
	idx, err := t.require(cityColCity, cityColAdmin, cityColPop, cityColLat, cityColLng)
	if err != nil {
		return nil, err
	}

	records := make([]model.CityLocation, 0, len(t.rows))
	for i, row := range t.rows {
		pop, err := parseNumber("cities", cityColPop, i, t.cell(row, idx[2]))
		if err != nil {
			return nil, err
		}
		lat, err := parseNumber("cities", cityColLat, i, t.cell(row, idx[3]))
		if err != nil {
			return nil, err
		}
		lng, err := parseNumber("cities", cityColLng, i, t.cell(row, idx[4]))
		if err != nil {
			return nil, err
		}

		city := t.cell(row, idx[0])
		admin := t.cell(row, idx[1])
		records = append(records, model.CityLocation{
			City:       city,
			AdminName:  admin,
			CityKey:    normalize.Key(city),
			StateKey:   normalize.Key(admin),
			Population: pop,
			Lat:        lat,
			Lng:        lng,
		})
	}
	return records, nil
}

// parseNumber coerces a cell to float64. Blank cells read as 0 (a data
// gap, absorbed); non-blank unparseable cells are fatal.
func parseNumber(input, col string, rowIdx int, raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, eris.Wrapf(ErrTypeCoercion, "ingest: %s: row %d: %s %q is not numeric", input, rowIdx+2, col, raw)
	}
	return v, nil
}
