package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2substack/internal/fileutil"
	"github.com/alnah/go-md2substack/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxURLLength       = 2048 // Browser limit
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxChartTypeLength = 50   // "tables", "d3-bars-stacked"
	MaxSuffixLength    = 50
	MaxStyleLength     = 100
)

// Numbering orders accepted by tables.numbering.
const (
	NumberingFormat   = "format"
	NumberingPosition = "position"
)

// DefaultSiteURL prefixes image sources found in the built site.
const DefaultSiteURL = "https://tristinb.github.io"

// UserConfigDirName is the directory searched under the user config dir.
const UserConfigDirName = "go-md2substack"

// Config holds all configuration for preparing a post.
type Config struct {
	Site        SiteConfig        `yaml:"site"`
	Datawrapper DatawrapperConfig `yaml:"datawrapper"`
	Tables      TablesConfig      `yaml:"tables"`
	Output      OutputConfig      `yaml:"output"`
	Assets      AssetsConfig      `yaml:"assets"`
}

// SiteConfig locates the built static site that holds published images.
type SiteConfig struct {
	URL  string `yaml:"url"`  // Prefix for root-relative image sources
	Root string `yaml:"root"` // Project root (empty = search for eleventy.config.js)
}

// DatawrapperConfig tunes the chart service client. The token is never
// read from the file.
type DatawrapperConfig struct {
	APIURL    string `yaml:"apiURL"`
	EmbedHost string `yaml:"embedHost"`
	Timeout   string `yaml:"timeout"` // Go duration, e.g. "45s"
	ChartType string `yaml:"chartType"`
}

// TablesConfig controls how tables are numbered.
type TablesConfig struct {
	Numbering string `yaml:"numbering"` // "format" (HTML first) or "position"
}

// OutputConfig controls where and what is written.
type OutputConfig struct {
	Suffix string `yaml:"suffix"` // Appended to the post stem (default "_substack")
	HTML   *bool  `yaml:"html"`   // Write the HTML page (default true)
	Style  string `yaml:"style"`  // Stylesheet name or path for the HTML page
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// WriteHTML reports whether the HTML page should be written.
func (o OutputConfig) WriteHTML() bool {
	return o.HTML == nil || *o.HTML
}

// TimeoutDuration parses datawrapper.timeout. An empty value yields zero.
func (d DatawrapperConfig) TimeoutDuration() (time.Duration, error) {
	if d.Timeout == "" {
		return 0, nil
	}
	v, err := time.ParseDuration(d.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: datawrapper.timeout %q: %v", ErrInvalidValue, d.Timeout, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: datawrapper.timeout must be positive, got %s", ErrInvalidValue, v)
	}
	return v, nil
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"site.url", c.Site.URL, MaxURLLength},
		{"site.root", c.Site.Root, MaxPathLength},
		{"datawrapper.apiURL", c.Datawrapper.APIURL, MaxURLLength},
		{"datawrapper.embedHost", c.Datawrapper.EmbedHost, MaxURLLength},
		{"datawrapper.chartType", c.Datawrapper.ChartType, MaxChartTypeLength},
		{"output.suffix", c.Output.Suffix, MaxSuffixLength},
		{"output.style", c.Output.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.Site.URL != "" && !fileutil.IsURL(c.Site.URL) {
		return fmt.Errorf("%w: site.url %q must start with http:// or https://", ErrInvalidValue, c.Site.URL)
	}
	if c.Datawrapper.APIURL != "" && !fileutil.IsURL(c.Datawrapper.APIURL) {
		return fmt.Errorf("%w: datawrapper.apiURL %q must start with http:// or https://", ErrInvalidValue, c.Datawrapper.APIURL)
	}
	if _, err := c.Datawrapper.TimeoutDuration(); err != nil {
		return err
	}
	switch strings.ToLower(c.Tables.Numbering) {
	case "", NumberingFormat, NumberingPosition:
	default:
		return fmt.Errorf("%w: tables.numbering %q (must be format or position)", ErrInvalidValue, c.Tables.Numbering)
	}
	if err := fileutil.ValidateSuffix(c.Output.Suffix); err != nil {
		return fmt.Errorf("%w: output.suffix: %v", ErrInvalidValue, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Site:   SiteConfig{URL: DefaultSiteURL},
		Tables: TablesConfig{Numbering: NumberingFormat},
		Output: OutputConfig{Suffix: fileutil.DefaultSuffix},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Searched: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NotFoundError lists the locations searched for a config file.
type NotFoundError struct {
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %s", ErrConfigNotFound, strings.Join(e.Searched, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-md2substack/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileutil.FileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, UserConfigDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &NotFoundError{Searched: tried}
}
