package main

import (
	"errors"
	"os"

	md2substack "github.com/alnah/go-md2substack"
	"github.com/alnah/go-md2substack/internal/config"
	"github.com/alnah/go-md2substack/internal/fileutil"
	"github.com/alnah/go-md2substack/internal/preview"
)

// Exit codes for md2substack CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Post prepared
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Post unreadable, output or chart cache not writable
	ExitChart   = 4 // Datawrapper request or response failure
	ExitBrowser = 5 // Preview browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 5)
	if errors.Is(err, preview.ErrBrowserLaunch) ||
		errors.Is(err, preview.ErrPageLoad) ||
		errors.Is(err, preview.ErrPageMissing) {
		return ExitBrowser
	}

	// Chart service errors (exit 4)
	if errors.Is(err, md2substack.ErrChartRequest) ||
		errors.Is(err, md2substack.ErrChartResponse) ||
		errors.Is(err, md2substack.ErrEmptyChartID) {
		return ExitChart
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadPost) ||
		errors.Is(err, md2substack.ErrCacheRead) ||
		errors.Is(err, md2substack.ErrCacheWrite) ||
		errors.Is(err, fileutil.ErrOutputDirectory) ||
		errors.Is(err, fileutil.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrOpenWithoutHTML) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, fileutil.ErrSuffixPathTraversal) ||
		errors.Is(err, md2substack.ErrEmptyMarkdown) ||
		errors.Is(err, md2substack.ErrInvalidNumbering) ||
		errors.Is(err, md2substack.ErrInvalidAssetPath) ||
		errors.Is(err, md2substack.ErrInvalidBaseURL) ||
		errors.Is(err, md2substack.ErrStyleNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
