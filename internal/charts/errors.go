package charts

import "errors"

// Sentinel errors for chart operations.
var (
	ErrChartRequest   = errors.New("chart service request failed")
	ErrChartResponse  = errors.New("unexpected chart service response")
	ErrEmptyChartID   = errors.New("chart service returned an empty chart id")
	ErrNoDocumentID   = errors.New("document id cannot be empty")
	ErrCacheRead      = errors.New("failed to read chart cache")
	ErrCacheWrite     = errors.New("failed to write chart cache")
	ErrMissingToken   = errors.New("chart service token is not set")
	ErrInvalidBaseURL = errors.New("invalid chart service URL")
)
