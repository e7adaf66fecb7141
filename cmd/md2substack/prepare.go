package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	md2substack "github.com/alnah/go-md2substack"
	"github.com/alnah/go-md2substack/internal/config"
	"github.com/alnah/go-md2substack/internal/fileutil"
	"github.com/alnah/go-md2substack/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage           = errors.New("invalid usage")
	ErrNoInput         = errors.New("no post specified")
	ErrReadPost        = errors.New("failed to read post")
	ErrOpenWithoutHTML = errors.New("--open needs the HTML page")
	ErrInvalidTimeout  = errors.New("invalid timeout")
)

// runPrepare prepares one post and writes its outputs.
func runPrepare(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePrepareFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	switch len(positional) {
	case 0:
		return ErrNoInput
	case 1:
	default:
		return fmt.Errorf("%w: expected one post, got %d", ErrUsage, len(positional))
	}
	postPath := positional[0]

	fileVars, err := readDotEnv(env.DotEnv)
	if err != nil {
		fmt.Fprintf(env.Stderr, "warning: %v\n", err)
	}
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, envNames(env.Environ(), fileVars))
	}
	envCfg := loadEnvConfig(withFallback(env.LookupEnv, fileVars))

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flags.output.open && !cfg.Output.WriteHTML() {
		return ErrOpenWithoutHTML
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout, cfg)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(postPath) // #nosec G304 -- post path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadPost, err)
	}

	logger := newLogger(env.Stderr, flags.common)
	svc, err := md2substack.New(serviceOptions(cfg, envCfg.Token, timeout, logger, env)...)
	if err != nil {
		return err
	}

	start := env.Now()
	res, err := svc.Prepare(ctx, md2substack.Input{
		Markdown: string(content),
		PostPath: postPath,
		DryRun:   flags.dryRun,
	})
	if err != nil {
		return fmt.Errorf("preparing %s: %w", postPath, err)
	}
	if res.TablesSkipped && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "warning: tables left as-is%s\n", hints.ForMissingToken())
	}
	if flags.dryRun && !flags.common.quiet {
		printTablePreviews(env.Stdout, res.Tables)
	}

	mdPath, htmlPath, err := fileutil.OutputPaths(postPath, flags.output.path, cfg.Output.Suffix)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(mdPath, res.Markdown); err != nil {
		return err
	}
	report(env, flags.common, "Markdown written to: %s\n", mdPath)

	if cfg.Output.WriteHTML() {
		page, err := svc.RenderHTML(ctx, res.Markdown, res.Title)
		if err != nil {
			if errors.Is(err, md2substack.ErrStyleNotFound) {
				return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(svc.Styles()))
			}
			return err
		}
		if err := fileutil.WriteFile(htmlPath, page); err != nil {
			return err
		}
		report(env, flags.common, "HTML written to: %s\n", htmlPath)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	if flags.output.open {
		if err := env.Opener.Open(ctx, htmlPath); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig loads the config named by the flag, then the environment.
// Without either, defaults are used.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set flags over cfg (CLI wins).
func mergeFlags(flags *prepareFlags, cfg *config.Config) {
	if flags.numbering != "" {
		cfg.Tables.Numbering = flags.numbering
	}
	if flags.output.style != "" {
		cfg.Output.Style = flags.output.style
	}
	if flags.output.noHTML {
		off := false
		cfg.Output.HTML = &off
	}
}

// resolveTimeout picks the chart request timeout: flag, then env, then
// config. Zero means the library default.
func resolveTimeout(flagValue string, envValue time.Duration, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, d)
		}
		return d, nil
	}
	if envValue > 0 {
		return envValue, nil
	}
	d, err := cfg.Datawrapper.TimeoutDuration()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTimeout, err)
	}
	return d, nil
}

// serviceOptions translates the resolved settings into service options.
func serviceOptions(cfg *config.Config, token string, timeout time.Duration, logger *slog.Logger, env *Environment) []md2substack.Option {
	opts := []md2substack.Option{
		md2substack.WithLogger(logger),
		md2substack.WithToken(token),
		md2substack.WithAPIURL(cfg.Datawrapper.APIURL),
		md2substack.WithChartType(cfg.Datawrapper.ChartType),
		md2substack.WithTimeout(timeout),
		md2substack.WithSiteURL(cfg.Site.URL),
		md2substack.WithSiteRoot(cfg.Site.Root),
		md2substack.WithNumbering(cfg.Tables.Numbering),
		md2substack.WithStyle(cfg.Output.Style),
		md2substack.WithAssetPath(cfg.Assets.BasePath),
	}
	if cfg.Datawrapper.EmbedHost != "" {
		opts = append(opts, md2substack.WithEmbedHost(cfg.Datawrapper.EmbedHost))
	}
	return append(opts, env.ServiceOptions...)
}

// newLogger builds the stderr logger: errors only with --quiet, debug with
// --verbose, info otherwise.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// report prints a progress line unless --quiet is set.
func report(env *Environment, f commonFlags, format string, args ...any) {
	if f.quiet {
		return
	}
	fmt.Fprintf(env.Stdout, format, args...)
}

// printTablePreviews prints what a real run would upload.
func printTablePreviews(w io.Writer, tables []md2substack.TableReport) {
	for _, t := range tables {
		switch {
		case t.Kind == md2substack.KindInteractive:
			fmt.Fprintf(w, "Table %d (%s): interactive, left for manual handling\n", t.Number, t.Format)
		case t.Err != nil:
			fmt.Fprintf(w, "Table %d (%s): skipped: %v\n", t.Number, t.Format, t.Err)
		default:
			fmt.Fprintf(w, "Table %d (%s, %d rows): would upload to Datawrapper as %q\n", t.Number, t.Format, t.Rows, t.Title)
			fmt.Fprintf(w, "    Preview:\n%s\n", indent(t.Preview, "    "))
		}
	}
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
