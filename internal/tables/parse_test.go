package tables

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    *Table
		wantErr error
	}{
		{
			name: "simple table",
			raw:  "| A | B |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |\n",
			want: &Table{Header: []string{"A", "B"}, Rows: [][]string{{"1", "2"}, {"3", "4"}}},
		},
		{
			name: "aligned separator and inner whitespace",
			raw:  "|  Name   |  Score |\n|:-------|-------:|\n|  Ada  Lovelace | 10 |\n",
			want: &Table{Header: []string{"Name", "Score"}, Rows: [][]string{{"Ada Lovelace", "10"}}},
		},
		{
			name: "extra separator rows are skipped",
			raw:  "| A |\n|---|\n| 1 |\n|---|\n| 2 |\n",
			want: &Table{Header: []string{"A"}, Rows: [][]string{{"1"}, {"2"}}},
		},
		{
			name:    "missing separator",
			raw:     "| A | B |\n| 1 | 2 |\n",
			wantErr: ErrMalformedTable,
		},
		{
			name:    "no data rows",
			raw:     "| A | B |\n|---|---|\n",
			wantErr: ErrNoDataRows,
		},
		{
			name:    "column mismatch",
			raw:     "| A | B |\n|---|---|\n| 1 | 2 | 3 |\n",
			wantErr: ErrColumnMismatch,
		},
		{
			name:    "single line",
			raw:     "| A |",
			wantErr: ErrMalformedTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMarkdown(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMarkdown() error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrMalformedTable) {
					t.Errorf("error %v does not wrap ErrMalformedTable", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMarkdown() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseMarkdown() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		markup  string
		want    *Table
		wantErr error
	}{
		{
			name:   "thead and tbody",
			markup: "<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>",
			want:   &Table{Header: []string{"A", "B"}, Rows: [][]string{{"1", "2"}}},
		},
		{
			name:   "rows without sections and inline markup",
			markup: "<table>\n<tr><th>Name</th><th>Note</th></tr>\n<tr><td><b>Ada</b></td><td>first\n   programmer</td></tr>\n</table>",
			want:   &Table{Header: []string{"Name", "Note"}, Rows: [][]string{{"Ada", "first programmer"}}},
		},
		{
			name:   "entities are decoded",
			markup: "<table><tr><th>Q&amp;A</th></tr><tr><td>caf&eacute;</td></tr></table>",
			want:   &Table{Header: []string{"Q&A"}, Rows: [][]string{{"café"}}},
		},
		{
			name:   "colspan repeats text",
			markup: `<table><tr><th colspan="2">Both</th></tr><tr><td>1</td><td>2</td></tr></table>`,
			want:   &Table{Header: []string{"Both", "Both"}, Rows: [][]string{{"1", "2"}}},
		},
		{
			name:   "rowspan fills following rows",
			markup: `<table><tr><th>G</th><th>V</th></tr><tr><td rowspan="2">x</td><td>1</td></tr><tr><td>2</td></tr></table>`,
			want:   &Table{Header: []string{"G", "V"}, Rows: [][]string{{"x", "1"}, {"x", "2"}}},
		},
		{
			name:   "nested table rows are ignored",
			markup: "<table><tr><th>Outer</th></tr><tr><td><table><tr><td>inner</td></tr></table></td></tr></table>",
			want:   &Table{Header: []string{"Outer"}, Rows: [][]string{{"inner"}}},
		},
		{
			name:    "column mismatch",
			markup:  "<table><tr><th>A</th><th>B</th></tr><tr><td>1</td></tr></table>",
			wantErr: ErrColumnMismatch,
		},
		{
			name:    "header only",
			markup:  "<table><tr><th>A</th></tr></table>",
			wantErr: ErrNoDataRows,
		},
		{
			name:    "no table element",
			markup:  "<p>nothing</p>",
			wantErr: ErrNoTable,
		},
		{
			name:    "empty table",
			markup:  "<table></table>",
			wantErr: ErrNoTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseHTML(tt.markup)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseHTML() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHTML() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseHTML() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := Parse(Span{Format: "rst", Raw: "x"})
	if !errors.Is(err, ErrUnsupportedSpan) {
		t.Errorf("Parse() error = %v, want ErrUnsupportedSpan", err)
	}
}

func TestKey_EquivalentAcrossSyntaxes(t *testing.T) {
	t.Parallel()

	html := "<table><thead><tr><th>City</th><th>Pop, 2020</th></tr></thead>" +
		"<tbody><tr><td>Caf&eacute; Town</td><td>1,200</td></tr></tbody></table>"
	md := "| City | Pop, 2020 |\n|---|---|\n| Café Town | 1,200 |\n"

	ht, err := ParseHTML(html)
	if err != nil {
		t.Fatalf("ParseHTML() error: %v", err)
	}
	mt, err := ParseMarkdown(md)
	if err != nil {
		t.Fatalf("ParseMarkdown() error: %v", err)
	}

	hk, err := ht.Key()
	if err != nil {
		t.Fatalf("Key() error: %v", err)
	}
	mk, err := mt.Key()
	if err != nil {
		t.Fatalf("Key() error: %v", err)
	}
	if hk != mk {
		t.Errorf("keys differ:\nhtml: %q\nmd:   %q", hk, mk)
	}

	want := "City,\"Pop, 2020\"\nCafé Town,\"1,200\""
	if hk != want {
		t.Errorf("Key() = %q, want %q", hk, want)
	}
}

func TestTable_CSV(t *testing.T) {
	t.Parallel()

	tbl := &Table{Header: []string{"A", "B"}, Rows: [][]string{{"1", `say "hi"`}}}
	got, err := tbl.CSV()
	if err != nil {
		t.Fatalf("CSV() error: %v", err)
	}
	want := "A,B\n1,\"say \"\"hi\"\"\"\n"
	if got != want {
		t.Errorf("CSV() = %q, want %q", got, want)
	}
}

func TestTable_Preview(t *testing.T) {
	t.Parallel()

	tbl := &Table{
		Header: []string{"A", "B"},
		Rows:   [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}},
	}

	got := tbl.Preview(2)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("Preview() has %d lines, want 4:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "A") || !strings.Contains(lines[0], "B") {
		t.Errorf("header line = %q", lines[0])
	}
	if lines[3] != "... 1 more row(s)" {
		t.Errorf("summary line = %q", lines[3])
	}
}
