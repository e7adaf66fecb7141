package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/alnah/go-md2substack/internal/config"
)

// Environment variable names.
const (
	envToken      = "DATAWRAPPER_TOKEN"
	envConfigPath = "MD2SUBSTACK_CONFIG"
	envSiteURL    = "MD2SUBSTACK_SITE_URL"
	envTimeout    = "MD2SUBSTACK_TIMEOUT"
	envPrefix     = "MD2SUBSTACK_"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	Token      string        // DATAWRAPPER_TOKEN: chart service credential
	ConfigPath string        // MD2SUBSTACK_CONFIG: config file name or path
	SiteURL    string        // MD2SUBSTACK_SITE_URL: public site URL
	Timeout    time.Duration // MD2SUBSTACK_TIMEOUT: chart request timeout
}

// knownEnvVars lists valid MD2SUBSTACK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfigPath: true,
	envSiteURL:    true,
	envTimeout:    true,
}

// readDotEnv reads key/value pairs from a .env file. A missing file is not
// an error.
func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vars, nil
}

// withFallback returns a lookup that consults the process environment first
// and fileVars second, so exported variables win over .env entries.
func withFallback(lookup func(string) (string, bool), fileVars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
}

// loadEnvConfig reads configuration through lookup.
// An unparsable or non-positive timeout is ignored.
func loadEnvConfig(lookup func(string) (string, bool)) *envConfig {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &envConfig{
		Token:      get(envToken),
		ConfigPath: get(envConfigPath),
		SiteURL:    get(envSiteURL),
	}

	if timeout := get(envTimeout); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// envNames collects variable names from KEY=VALUE pairs and .env entries.
func envNames(environ []string, fileVars map[string]string) []string {
	seen := make(map[string]bool, len(environ)+len(fileVars))
	for _, kv := range environ {
		seen[strings.SplitN(kv, "=", 2)[0]] = true
	}
	for k := range fileVars {
		seen[k] = true
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// warnUnknownEnvVars logs warnings for unrecognized MD2SUBSTACK_* variables.
// Helps catch typos like MD2SUBSTACK_SITEURL instead of MD2SUBSTACK_SITE_URL.
func warnUnknownEnvVars(w io.Writer, names []string) {
	for _, name := range names {
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment values over the loaded config.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags; timeout in resolveTimeout)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.SiteURL != "" {
		cfg.Site.URL = env.SiteURL
	}
}
