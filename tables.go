package md2substack

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2substack/internal/charts"
	"github.com/alnah/go-md2substack/internal/pipeline"
	"github.com/alnah/go-md2substack/internal/tables"
)

// ChartTitle names the chart for table n of a post.
func ChartTitle(postTitle string, n int) string {
	return fmt.Sprintf("%s — Table %d", postTitle, n)
}

// DryRunPlaceholder stands in for the embed URL of table n in a dry run.
func DryRunPlaceholder(postTitle string, n int) string {
	return fmt.Sprintf("[DATAWRAPPER EMBED — Table %d: \"%s\"]", n, ChartTitle(postTitle, n))
}

// processTables replaces every located table in body and records a report
// per table in res. The chart cache is loaded before the first table and
// saved only after every replacement succeeded.
func (s *Service) processTables(ctx context.Context, body string, in Input, res *Result) (string, error) {
	spans := tables.Locate(body, s.order)
	if len(spans) == 0 {
		return body, nil
	}

	var prov *charts.Provisioner
	if !in.DryRun {
		if s.client == nil {
			s.logger.Error("DATAWRAPPER_TOKEN not set; tables left as-is", "tables", len(spans))
			res.TablesSkipped = true
			return body, nil
		}
		entries, err := s.loadCache(in.PostPath)
		if err != nil {
			return "", err
		}
		prov = charts.NewProvisioner(s.client, entries, s.cfg.embedHost)
	}

	replacements := make([]pipeline.Replacement, 0, len(spans))
	for i, span := range spans {
		n := i + 1
		report := TableReport{
			Number: n,
			Format: string(span.Format),
			Kind:   string(tables.Classify(span, body)),
			Title:  ChartTitle(res.Title, n),
		}

		text, err := s.replaceTable(ctx, span, res.Title, prov, &report, in.DryRun)
		res.Tables = append(res.Tables, report)
		if err != nil {
			return "", fmt.Errorf("table %d: %w", n, err)
		}
		if text == "" {
			continue
		}
		if strings.HasSuffix(span.Raw, "\n") {
			text += "\n"
		}
		replacements = append(replacements, pipeline.Replacement{Start: span.Start, End: span.End, Text: text})
	}

	out, err := pipeline.Apply(body, replacements)
	if err != nil {
		return "", err
	}

	if prov != nil {
		if err := s.saveCache(in.PostPath, prov.Entries()); err != nil {
			return "", err
		}
	}
	return out, nil
}

// replaceTable returns the replacement text for one span, or "" when the
// span must stay as written.
func (s *Service) replaceTable(ctx context.Context, span tables.Span, postTitle string, prov *charts.Provisioner, report *TableReport, dryRun bool) (string, error) {
	if report.Kind == KindInteractive {
		s.logger.Warn("interactive table left for manual handling", "table", report.Number)
		return pipeline.InteractivePlaceholder(report.Number), nil
	}

	tbl, err := tables.Parse(span)
	if err != nil {
		report.Err = err
		s.logger.Warn("skipping malformed table", "table", report.Number, "format", report.Format, "error", err)
		return "", nil
	}
	report.Rows = len(tbl.Rows)

	if dryRun {
		report.Preview = tbl.Preview(previewRows)
		s.logger.Info("would upload table", "table", report.Number, "format", report.Format,
			"rows", report.Rows, "title", report.Title)
		return DryRunPlaceholder(postTitle, report.Number), nil
	}

	key, err := tbl.Key()
	if err != nil {
		return "", err
	}
	csv, err := tbl.CSV()
	if err != nil {
		return "", err
	}

	embed, err := prov.Ensure(ctx, key, []byte(csv), report.Title)
	if err != nil {
		return "", err
	}
	report.ChartID = embed.ChartID
	report.EmbedURL = embed.URL
	report.Cached = embed.Cached
	if embed.Cached {
		s.logger.Info("using cached chart", "table", report.Number, "chart", embed.ChartID)
	} else {
		s.logger.Info("created chart", "table", report.Number, "chart", embed.ChartID)
	}
	return embed.URL, nil
}

func (s *Service) loadCache(postPath string) (map[string]string, error) {
	if postPath == "" {
		s.logger.Warn("no post path; chart cache will not be read or saved")
		return nil, nil
	}
	return s.store.Load(postPath)
}

func (s *Service) saveCache(postPath string, entries map[string]string) error {
	if postPath == "" {
		return nil
	}
	return s.store.Save(postPath, entries)
}
