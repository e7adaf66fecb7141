package main

import (
	"errors"

	md2substack "github.com/alnah/go-md2substack"
	"github.com/alnah/go-md2substack/internal/config"
	"github.com/alnah/go-md2substack/internal/fileutil"
	"github.com/alnah/go-md2substack/internal/hints"
	"github.com/alnah/go-md2substack/internal/preview"
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Searched)
	case errors.Is(err, md2substack.ErrChartRequest),
		errors.Is(err, md2substack.ErrChartResponse),
		errors.Is(err, md2substack.ErrEmptyChartID):
		return hints.ForChartService(err.Error())
	case errors.Is(err, preview.ErrBrowserLaunch):
		return hints.ForBrowserConnect()
	case errors.Is(err, preview.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, fileutil.ErrOutputDirectory):
		return hints.ForOutputDirectory()
	}
	return ""
}
