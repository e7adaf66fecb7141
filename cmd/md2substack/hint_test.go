package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	md2substack "github.com/alnah/go-md2substack"
	"github.com/alnah/go-md2substack/internal/fileutil"
	"github.com/alnah/go-md2substack/internal/preview"
)

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantSubstr string
	}{
		{"unauthorized", fmt.Errorf("%w: create: POST /charts: status 401: no", md2substack.ErrChartRequest), "DATAWRAPPER_TOKEN"},
		{"chart timeout", fmt.Errorf("%w: upload: context deadline exceeded", md2substack.ErrChartRequest), "--timeout"},
		{"bad response", fmt.Errorf("%w: create: eof", md2substack.ErrChartResponse), "not cached"},
		{"page load", preview.ErrPageLoad, "--timeout"},
		{"output dir", fileutil.ErrOutputDirectory, "writable"},
		{"unrelated", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.wantSubstr == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.HasPrefix(got, "\n  hint: ") || !strings.Contains(got, tt.wantSubstr) {
				t.Errorf("hintFor() = %q, want hint containing %q", got, tt.wantSubstr)
			}
		})
	}
}
