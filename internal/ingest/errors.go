package ingest

import "github.com/rotisserie/eris"

// Structural input errors. Both are fatal: the run aborts before any
// transformation and no output file is written.
var (
	// ErrMissingColumn means a required column is absent from an input
	// table's header row.
	ErrMissingColumn = eris.New("required column missing")

	// ErrTypeCoercion means a cell value could not be coerced to its
	// expected numeric type.
	ErrTypeCoercion = eris.New("value cannot be coerced")
)
