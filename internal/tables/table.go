package tables

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"text/tabwriter"
)

// Table is the syntax-independent form of a table: a header row followed by
// data rows, every row holding exactly len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// CSV serializes the table as comma-separated values, header first,
// one record per line.
func (t *Table) CSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return "", fmt.Errorf("writing CSV rows: %w", err)
	}
	return buf.String(), nil
}

// Key returns the cache key for the table: its CSV serialization without
// the trailing newline. Equal content yields an equal key regardless of the
// syntax it was parsed from.
func (t *Table) Key() (string, error) {
	s, err := t.CSV()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// Preview renders up to maxRows data rows as aligned plain text.
// Omitted rows are summarized on a trailing line.
func (t *Table) Preview(maxRows int) string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header, "\t"))

	shown := t.Rows
	if maxRows >= 0 && len(shown) > maxRows {
		shown = shown[:maxRows]
	}
	for _, row := range shown {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()

	if hidden := len(t.Rows) - len(shown); hidden > 0 {
		fmt.Fprintf(&buf, "... %d more row(s)\n", hidden)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// validate checks the shape invariants shared by both syntaxes.
func (t *Table) validate() error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("%w: %w", ErrMalformedTable, ErrNoDataRows)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%w: %w: row %d has %d cells, header has %d",
				ErrMalformedTable, ErrColumnMismatch, i+1, len(row), len(t.Header))
		}
	}
	return nil
}
