package tables

import "errors"

// Sentinel errors for table parsing.
var (
	ErrMalformedTable  = errors.New("malformed table")
	ErrNoTable         = errors.New("no table found in markup")
	ErrColumnMismatch  = errors.New("column count mismatch")
	ErrNoDataRows      = errors.New("table has no data rows")
	ErrUnsupportedSpan = errors.New("unsupported span format")
)
