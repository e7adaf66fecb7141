package md2substack

import (
	"log/slog"
	"time"

	"github.com/alnah/go-md2substack/internal/charts"
	"github.com/alnah/go-md2substack/internal/images"
	"github.com/alnah/go-md2substack/internal/pipeline"
	"github.com/alnah/go-md2substack/internal/tables"
)

// Input is one post to prepare.
type Input struct {
	Markdown string // Full file content, frontmatter included
	PostPath string // Post location; keys the chart cache and the built-site lookup
	DryRun   bool   // No network calls and no cache I/O
}

// Table numbering orders accepted by WithNumbering.
const (
	NumberingFormat   = string(tables.OrderByFormat)   // HTML tables first, then Markdown tables
	NumberingPosition = string(tables.OrderByPosition) // Strict document order
)

// Table kinds reported in TableReport.Kind.
const (
	KindStatic      = string(tables.KindStatic)
	KindInteractive = string(tables.KindInteractive)
)

// TableReport describes what happened to one located table.
type TableReport struct {
	Number   int
	Format   string // "html" or "markdown"
	Kind     string // KindStatic or KindInteractive
	Title    string // Chart title, "<post title> — Table <n>"
	Rows     int    // Data rows, header excluded
	ChartID  string
	EmbedURL string
	Cached   bool   // Chart reused from the cache
	Preview  string // Dry run only: first rows as aligned text
	Err      error  // Parse failure; the table was left as-is
}

// Result is the outcome of Prepare.
type Result struct {
	Markdown         string
	Title            string
	Tables           []TableReport
	TablesSkipped    bool     // No chart client: every table was left as-is
	UnresolvedImages []string // Image sources that need a manual upload
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds settings resolved by New.
type serviceConfig struct {
	token     string
	apiURL    string
	embedHost string
	chartType string
	timeout   time.Duration
	siteURL   string
	siteRoot  string
	numbering string
	style     string
	assetPath string
}

// DefaultSiteURL prefixes root-relative image sources.
const DefaultSiteURL = "https://tristinb.github.io"

// previewRows is the number of data rows shown in dry-run previews.
const previewRows = 4

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithToken sets the Datawrapper API token. Without one, tables are left
// as-is outside dry runs.
func WithToken(token string) Option {
	return func(s *Service) { s.cfg.token = token }
}

// WithAPIURL overrides the Datawrapper API base URL.
func WithAPIURL(u string) Option {
	return func(s *Service) { s.cfg.apiURL = u }
}

// WithEmbedHost overrides the host used to derive embed URLs from chart ids.
func WithEmbedHost(host string) Option {
	return func(s *Service) { s.cfg.embedHost = host }
}

// WithChartType sets the Datawrapper chart type for new charts.
func WithChartType(t string) Option {
	return func(s *Service) { s.cfg.chartType = t }
}

// WithTimeout bounds each chart service request.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cfg.timeout = d
		}
	}
}

// WithSiteURL sets the public site URL prefixed to image sources.
func WithSiteURL(u string) Option {
	return func(s *Service) { s.cfg.siteURL = u }
}

// WithSiteRoot sets the Eleventy project root instead of searching for it.
func WithSiteRoot(dir string) Option {
	return func(s *Service) { s.cfg.siteRoot = dir }
}

// WithNumbering selects NumberingFormat or NumberingPosition.
func WithNumbering(order string) Option {
	return func(s *Service) { s.cfg.numbering = order }
}

// WithStyle selects the stylesheet for RenderHTML by name or file path.
func WithStyle(nameOrPath string) Option {
	return func(s *Service) { s.cfg.style = nameOrPath }
}

// WithAssetPath adds a directory whose styles/ override the built-in ones.
func WithAssetPath(dir string) Option {
	return func(s *Service) { s.cfg.assetPath = dir }
}

// Compile-time interface checks.
var (
	_ charts.Client          = (*charts.DatawrapperClient)(nil)
	_ images.Resolver        = (*images.SiteResolver)(nil)
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector   = (*pipeline.CSSInjection)(nil)
)
