package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver(\"\") error = %v", err)
	}
	if r.HasCustomLoader() {
		t.Error("HasCustomLoader() = true without base path")
	}

	if _, err := NewAssetResolver("/nonexistent/abc123"); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("error = %v, want ErrInvalidBasePath", err)
	}
}

func TestAssetResolver_CustomOverridesEmbedded(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, DefaultStyleName, "/* mine */")
	writeStyle(t, base, "extra", "/* extra */")

	r, err := NewAssetResolver(base)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	got, err := r.LoadStyle(DefaultStyleName)
	if err != nil || got != "/* mine */" {
		t.Errorf("LoadStyle(default) = (%q, %v), want custom content", got, err)
	}

	got, err = r.LoadStyle("plain")
	if err != nil || !strings.Contains(got, "body") {
		t.Errorf("LoadStyle(plain) = (%q, %v), want embedded fallback", got, err)
	}

	if diff := cmp.Diff([]string{"extra", "plain", "substack"}, r.Styles()); diff != "" {
		t.Errorf("Styles() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssetResolver_ValidationErrorsNotFallenBack(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.LoadStyle("a.b"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("error = %v, want ErrInvalidAssetName", err)
	}
}

func TestAssetResolver_Resolve(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "site.css")
	if err := os.WriteFile(path, []byte("h1{}"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "empty uses default", input: "", want: "max-width: 680px"},
		{name: "file path", input: path, want: "h1{}"},
		{name: "missing file", input: filepath.Join(filepath.Dir(path), "nope.css"), wantErr: ErrStyleNotFound},
		{name: "unknown name", input: "neon", wantErr: ErrStyleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Resolve(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.input, err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Resolve(%q) = %q, want containing %q", tt.input, got, tt.want)
			}
		})
	}
}
