package md2substack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alnah/go-md2substack/internal/assets"
	"github.com/alnah/go-md2substack/internal/charts"
	"github.com/alnah/go-md2substack/internal/fileutil"
	"github.com/alnah/go-md2substack/internal/frontmatter"
	"github.com/alnah/go-md2substack/internal/images"
	"github.com/alnah/go-md2substack/internal/pipeline"
	"github.com/alnah/go-md2substack/internal/tables"
)

// Service prepares posts for Substack. It holds no per-document state and
// may be reused across posts, one post at a time.
type Service struct {
	cfg           serviceConfig
	order         tables.Order
	logger        *slog.Logger
	client        charts.Client // nil when no token is configured
	store         charts.Store
	imageResolver images.Resolver
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	styleLoader   *assets.AssetResolver
}

// New creates a Service. It fails on an unknown numbering order, an invalid
// API URL, or an unreadable asset path.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			timeout:   charts.DefaultTimeout,
			siteURL:   DefaultSiteURL,
			embedHost: charts.DefaultEmbedHost,
		},
		logger:        slog.New(slog.DiscardHandler),
		store:         charts.NewFileStore(),
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(s)
	}

	order, ok := tables.ParseOrder(s.cfg.numbering)
	if !ok {
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidNumbering, s.cfg.numbering, NumberingFormat, NumberingPosition)
	}
	s.order = order

	if s.client == nil && s.cfg.token != "" {
		clientOpts := []charts.ClientOption{
			charts.WithRequestTimeout(s.cfg.timeout),
			charts.WithChartType(s.cfg.chartType),
		}
		if s.cfg.apiURL != "" {
			clientOpts = append(clientOpts, charts.WithAPIURL(s.cfg.apiURL))
		}
		client, err := charts.NewDatawrapperClient(s.cfg.token, clientOpts...)
		if err != nil {
			return nil, err
		}
		s.client = client
	}

	if s.imageResolver == nil {
		s.imageResolver = &images.SiteResolver{SiteURL: s.cfg.siteURL, Root: s.cfg.siteRoot}
	}

	resolver, err := assets.NewAssetResolver(s.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	s.styleLoader = resolver

	return s, nil
}

// Prepare runs the whole pipeline over one post.
// Only chart service and chart cache failures are fatal; malformed tables,
// unresolved images and a missing token are logged and reported in Result.
func (s *Service) Prepare(ctx context.Context, in Input) (*Result, error) {
	if in.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	text := pipeline.NormalizeLineEndings(in.Markdown)

	fields, body, err := frontmatter.Parse(text)
	if err != nil {
		s.logger.Warn("ignoring unreadable frontmatter", "error", err)
	}
	stem := ""
	if in.PostPath != "" {
		stem = fileutil.Stem(in.PostPath)
	}
	res := &Result{Title: frontmatter.Title(fields, stem)}
	s.logger.Info("preparing post", "title", res.Title, "dry_run", in.DryRun)

	body, err = s.processTables(ctx, body, in, res)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body = s.rewriteImages(ctx, body, in.PostPath, res)
	body = pipeline.RewriteMath(body)
	body = pipeline.RewriteFootnotes(body)
	body = pipeline.StripNunjucks(body)
	body = pipeline.StripHTMLArtifacts(body)
	body = pipeline.CompressBlankLines(body)

	res.Markdown = pipeline.Finalize(body)
	return res, nil
}

// rewriteImages swaps image shortcodes for Markdown images. Lookup failures
// leave every image unresolved rather than failing the run.
func (s *Service) rewriteImages(ctx context.Context, body, postPath string, res *Result) string {
	if !images.Contains(body) {
		return body
	}

	urls, err := s.imageResolver.Resolve(ctx, postPath)
	if err != nil {
		s.logger.Warn("could not read built site for image URLs", "error", err)
		urls = nil
	}

	body, missing := images.Rewrite(body, urls)
	for _, m := range missing {
		s.logger.Warn("could not resolve image URL", "alt", m.Alt, "src", m.Src)
		res.UnresolvedImages = append(res.UnresolvedImages, m.Src)
	}
	return body
}

// RenderHTML renders prepared Markdown as a styled standalone page.
func (s *Service) RenderHTML(ctx context.Context, markdown, title string) (string, error) {
	css, err := s.styleLoader.Resolve(s.cfg.style)
	if err != nil {
		return "", err
	}
	page, err := s.htmlConverter.ToHTML(ctx, markdown, title)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}
	return s.cssInjector.InjectCSS(ctx, page, css), nil
}

// Styles lists the stylesheet names RenderHTML accepts.
func (s *Service) Styles() []string {
	return s.styleLoader.Styles()
}
