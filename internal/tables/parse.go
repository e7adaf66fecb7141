package tables

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// maxSpan caps colspan/rowspan attributes.
const maxSpan = 1000

// Separator-shaped data lines (pipes optional) are dropped from the body.
var looseSeparatorLine = regexp.MustCompile(`^\|?[\s\-:|]+\|?$`)

// Parse converts a static span into a Table.
// Errors wrap ErrMalformedTable; the caller is expected to leave the
// original markup in place.
func Parse(span Span) (*Table, error) {
	switch span.Format {
	case FormatHTML:
		return ParseHTML(span.Raw)
	case FormatMarkdown:
		return ParseMarkdown(span.Raw)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedSpan, span.Format)
}

// ParseMarkdown parses a pipe table. The first line is the header, the
// second must be a separator.
func ParseMarkdown(raw string) (*Table, error) {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need a header and a separator line", ErrMalformedTable)
	}
	if !IsSeparator(lines[1]) {
		return nil, fmt.Errorf("%w: second line is not a separator", ErrMalformedTable)
	}

	t := &Table{Header: splitPipeRow(lines[0])}
	for _, l := range lines[2:] {
		if looseSeparatorLine.MatchString(l) {
			continue
		}
		t.Rows = append(t.Rows, splitPipeRow(l))
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func splitPipeRow(line string) []string {
	parts := strings.Split(strings.Trim(strings.TrimSpace(line), "|"), "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = normalizeCell(p)
	}
	return cells
}

// htmlCell is a parsed <td>/<th> before span expansion.
type htmlCell struct {
	text    string
	rowspan int
	colspan int
}

// ParseHTML parses the first <table> found in markup. Rows of nested tables
// are ignored; colspan and rowspan are expanded by repeating the cell text.
func ParseHTML(markup string) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, ErrNoTable)
	}

	grid := expandSpans(collectRows(table))
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, ErrNoTable)
	}

	t := &Table{Header: grid[0], Rows: grid[1:]}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// collectRows reads the table's own rows, section by section.
func collectRows(table *goquery.Selection) [][]htmlCell {
	var rows [][]htmlCell
	addRow := func(tr *goquery.Selection) {
		var row []htmlCell
		tr.ChildrenFiltered("th, td").Each(func(_ int, c *goquery.Selection) {
			row = append(row, htmlCell{
				text:    normalizeCell(c.Text()),
				rowspan: spanAttr(c, "rowspan"),
				colspan: spanAttr(c, "colspan"),
			})
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	table.Children().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "tr":
			addRow(child)
		case "thead", "tbody", "tfoot":
			child.ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
				addRow(tr)
			})
		}
	})
	return rows
}

// expandSpans lays cells out on a rectangular grid.
// Cells covered by a rowspan from a previous row are filled with its text.
func expandSpans(rows [][]htmlCell) [][]string {
	type pos struct{ row, col int }
	carried := make(map[pos]string)
	grid := make([][]string, 0, len(rows))

	for r, row := range rows {
		out := make([]string, 0, len(row))
		fillCarried := func() {
			for {
				text, ok := carried[pos{r, len(out)}]
				if !ok {
					return
				}
				delete(carried, pos{r, len(out)})
				out = append(out, text)
			}
		}

		for _, c := range row {
			fillCarried()
			for k := 0; k < c.colspan; k++ {
				col := len(out)
				for dr := 1; dr < c.rowspan && r+dr < len(rows); dr++ {
					carried[pos{r + dr, col}] = c.text
				}
				out = append(out, c.text)
			}
		}
		fillCarried()
		grid = append(grid, out)
	}
	return grid
}

func spanAttr(s *goquery.Selection, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s.AttrOr(name, "1")))
	if err != nil || n < 1 {
		return 1
	}
	if n > maxSpan {
		return maxSpan
	}
	return n
}

// normalizeCell collapses internal whitespace and applies NFC so the same
// visible text produces the same bytes in either syntax.
func normalizeCell(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}
