// Package ingest reads the three input tables — EV sales, the charging
// station registry, and the city gazetteer — from CSV into typed records
// with normalized join keys attached.
package ingest

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// table is a fully loaded CSV with trimmed header names resolved to
// column indexes. Inputs are small enough to hold in memory; the whole
// pipeline operates on in-memory tables.
type table struct {
	name string // input name used in error messages, e.g. "sales"
	cols map[string]int
	rows [][]string
}

// readTable parses r as a comma-separated table with a header row.
// Header names are trimmed before indexing; field values are trimmed as
// they are read. Rows may carry extra columns beyond the header.
func readTable(ctx context.Context, name string, r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.Errorf("ingest: %s: empty input, no header row", name)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: %s: read header", name)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	t := &table{name: name, cols: cols}
	for {
		if ctx.Err() != nil {
			return nil, eris.Wrapf(ctx.Err(), "ingest: %s: cancelled", name)
		}
		record, err := reader.Read()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: %s: read row %d", name, len(t.rows)+2)
		}
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
		t.rows = append(t.rows, record)
	}
}

// require resolves column names to indexes, failing with ErrMissingColumn
// on the first absent name. Called before any row is transformed so a
// malformed input aborts the run up front.
func (t *table) require(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		c, ok := t.cols[name]
		if !ok {
			return nil, eris.Wrapf(ErrMissingColumn, "ingest: %s: column %q", t.name, name)
		}
		idx[i] = c
	}
	return idx, nil
}

// cell returns the value at column c for the given row, or "" when the
// row is shorter than the header.
func (t *table) cell(row []string, c int) string {
	if c >= len(row) {
		return ""
	}
	return row[c]
}
