package assets

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name     string
		style    string
		contains string
		wantErr  error
	}{
		{name: "default style", style: DefaultStyleName, contains: "max-width: 680px"},
		{name: "plain style", style: "plain", contains: "body"},
		{name: "unknown style", style: "neon", wantErr: ErrStyleNotFound},
		{name: "traversal rejected", style: "../x", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.style, err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("LoadStyle(%q) missing %q", tt.style, tt.contains)
			}
		})
	}
}

func TestEmbeddedLoader_Styles(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]string{"plain", "substack"}, NewEmbeddedLoader().Styles()); diff != "" {
		t.Errorf("Styles() mismatch (-want +got):\n%s", diff)
	}
}
