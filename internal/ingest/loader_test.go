package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSales(t *testing.T) {
	t.Parallel()

	csv := "State,Year,EV_Sales_Quantity\n" +
		"Maharashtra,2023,1200.5\n" +
		" Telangana ,2022,300\n" +
		"Maharashtra,2023,\n"

	records, err := ReadSales(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "maharashtra", records[0].StateKey)
	assert.Equal(t, 2023, records[0].Year)
	assert.Equal(t, 1200.5, records[0].Quantity)

	// Field-level trimming feeds normalization.
	assert.Equal(t, "telangana", records[1].StateKey)

	// Blank quantity reads as 0.
	assert.Equal(t, 0.0, records[2].Quantity)
}

func TestReadSales_HeaderTrimmed(t *testing.T) {
	t.Parallel()

	csv := " State , Year , EV_Sales_Quantity \nGoa,2023,10\n"
	records, err := ReadSales(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "goa", records[0].StateKey)
}

func TestReadSales_MissingColumn(t *testing.T) {
	t.Parallel()

	csv := "State,EV_Sales_Quantity\nGoa,10\n"
	_, err := ReadSales(context.Background(), strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "Year")
}

func TestReadSales_BadYear(t *testing.T) {
	t.Parallel()

	csv := "State,Year,EV_Sales_Quantity\nGoa,twenty23,10\n"
	_, err := ReadSales(context.Background(), strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrTypeCoercion))
	assert.Contains(t, err.Error(), "twenty23")
}

func TestReadSales_BadQuantity(t *testing.T) {
	t.Parallel()

	csv := "State,Year,EV_Sales_Quantity\nGoa,2023,lots\n"
	_, err := ReadSales(context.Background(), strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrTypeCoercion))
}

func TestReadSales_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := ReadSales(context.Background(), strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestReadChargers(t *testing.T) {
	t.Parallel()

	// Extra columns are ignored; blank city normalizes to the empty key.
	csv := "name,state,city,power_kw\n" +
		"Station A,Maharashtra,Mumbai,50\n" +
		"Station B,Maharashtra,Mumbaī,22\n" +
		"Station C,Karnataka,,7\n"

	records, err := ReadChargers(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "mumbai", records[0].CityKey)
	assert.Equal(t, "mumbai", records[1].CityKey, "accented spelling joins to the same key")
	assert.Equal(t, "", records[2].CityKey)
	assert.Equal(t, "karnataka", records[2].StateKey)
}

func TestReadChargers_MissingColumn(t *testing.T) {
	t.Parallel()

	csv := "name,city\nStation A,Mumbai\n"
	_, err := ReadChargers(context.Background(), strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "state")
}

func TestReadCities(t *testing.T) {
	t.Parallel()

	csv := "city,lat,lng,admin_name,population\n" +
		"Mumbai,19.0761,72.8775,Mahārāshtra,12691836\n" +
		"Pune,18.5203,73.8567,Maharashtra,3124458\n"

	records, err := ReadCities(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "mumbai", records[0].CityKey)
	assert.Equal(t, "maharashtra", records[0].StateKey, "admin_name accents stripped")
	assert.Equal(t, 12691836.0, records[0].Population)
	assert.Equal(t, 19.0761, records[0].Lat)
	assert.Equal(t, 72.8775, records[0].Lng)
}

func TestReadCities_BadPopulation(t *testing.T) {
	t.Parallel()

	csv := "city,lat,lng,admin_name,population\nMumbai,19.0,72.8,Maharashtra,many\n"
	_, err := ReadCities(context.Background(), strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrTypeCoercion))
}

func TestReadCities_ShortRow(t *testing.T) {
	t.Parallel()

	// Rows shorter than the header read missing cells as blank.
	csv := "city,admin_name,population,lat,lng\nMumbai,Maharashtra\n"
	records, err := ReadCities(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].Population)
}

func TestReadSales_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	csv := "State,Year,EV_Sales_Quantity\nGoa,2023,10\n"
	_, err := ReadSales(ctx, strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}
