package md2substack

import (
	"errors"

	"github.com/alnah/go-md2substack/internal/assets"
	"github.com/alnah/go-md2substack/internal/charts"
	"github.com/alnah/go-md2substack/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrInvalidNumbering = errors.New("invalid table numbering")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrHTMLConversion   = pipeline.ErrHTMLConversion

	// Chart service errors. A run that returns one of these saved nothing
	// to the chart cache.
	ErrChartRequest   = charts.ErrChartRequest
	ErrChartResponse  = charts.ErrChartResponse
	ErrEmptyChartID   = charts.ErrEmptyChartID
	ErrInvalidBaseURL = charts.ErrInvalidBaseURL

	// Chart cache errors.
	ErrCacheRead  = charts.ErrCacheRead
	ErrCacheWrite = charts.ErrCacheWrite

	ErrStyleNotFound = assets.ErrStyleNotFound
)
