package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-md2substack/internal/config"
)

func mapLookup(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable parsing
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want envConfig
	}{
		{
			name: "empty",
			vars: nil,
			want: envConfig{},
		},
		{
			name: "all set",
			vars: map[string]string{
				"DATAWRAPPER_TOKEN":    " tok ",
				"MD2SUBSTACK_CONFIG":   "work",
				"MD2SUBSTACK_SITE_URL": "https://example.com",
				"MD2SUBSTACK_TIMEOUT":  "45s",
			},
			want: envConfig{
				Token:      "tok",
				ConfigPath: "work",
				SiteURL:    "https://example.com",
				Timeout:    45 * time.Second,
			},
		},
		{
			name: "invalid timeout ignored",
			vars: map[string]string{"MD2SUBSTACK_TIMEOUT": "soon"},
			want: envConfig{},
		},
		{
			name: "negative timeout ignored",
			vars: map[string]string{"MD2SUBSTACK_TIMEOUT": "-5s"},
			want: envConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := loadEnvConfig(mapLookup(tt.vars))
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("loadEnvConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReadDotEnv - .env file loading
// ---------------------------------------------------------------------------

func TestReadDotEnv(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		vars, err := readDotEnv(filepath.Join(t.TempDir(), ".env"))
		if err != nil || vars != nil {
			t.Errorf("readDotEnv() = %v, %v; want nil, nil", vars, err)
		}
	})

	t.Run("no path", func(t *testing.T) {
		t.Parallel()

		vars, err := readDotEnv("")
		if err != nil || vars != nil {
			t.Errorf("readDotEnv() = %v, %v; want nil, nil", vars, err)
		}
	})

	t.Run("reads pairs", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".env")
		content := "# credentials\nDATAWRAPPER_TOKEN=abc\nexport MD2SUBSTACK_TIMEOUT=\"1m\"\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		vars, err := readDotEnv(path)
		if err != nil {
			t.Fatalf("readDotEnv() error: %v", err)
		}
		want := map[string]string{"DATAWRAPPER_TOKEN": "abc", "MD2SUBSTACK_TIMEOUT": "1m"}
		if diff := cmp.Diff(want, vars); diff != "" {
			t.Errorf("readDotEnv() mismatch (-want +got):\n%s", diff)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWithFallback - Process environment wins over .env
// ---------------------------------------------------------------------------

func TestWithFallback(t *testing.T) {
	t.Parallel()

	lookup := withFallback(
		mapLookup(map[string]string{"DATAWRAPPER_TOKEN": "exported"}),
		map[string]string{"DATAWRAPPER_TOKEN": "file", "MD2SUBSTACK_CONFIG": "work"},
	)

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"DATAWRAPPER_TOKEN", "exported", true},
		{"MD2SUBSTACK_CONFIG", "work", true},
		{"MD2SUBSTACK_TIMEOUT", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			got, ok := lookup(tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("lookup(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	names := envNames(
		[]string{"HOME=/root", "MD2SUBSTACK_CONFIG=work", "MD2SUBSTACK_TIMOUT=5s"},
		map[string]string{"MD2SUBSTACK_SITEURL": "x", "DATAWRAPPER_TOKEN": "t"},
	)

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, names)

	want := "warning: unknown environment variable MD2SUBSTACK_SITEURL (typo?)\n" +
		"warning: unknown environment variable MD2SUBSTACK_TIMOUT (typo?)\n"
	if buf.String() != want {
		t.Errorf("warnings = %q, want %q", buf.String(), want)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env beats the config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Site.URL = "https://from-file.example"

	applyEnvConfig(&envConfig{}, cfg)
	if cfg.Site.URL != "https://from-file.example" {
		t.Errorf("empty env changed site.url to %q", cfg.Site.URL)
	}

	applyEnvConfig(&envConfig{SiteURL: "https://from-env.example"}, cfg)
	if cfg.Site.URL != "https://from-env.example" {
		t.Errorf("site.url = %q, want env value", cfg.Site.URL)
	}
}
