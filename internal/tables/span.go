package tables

import (
	"regexp"
	"sort"
	"strings"
)

// Format identifies the syntax a table was written in.
type Format string

// Table syntaxes.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Order controls how spans from both syntaxes are sequenced (and numbered).
type Order string

const (
	// OrderByFormat lists every HTML table before any markdown table,
	// regardless of where they appear in the document.
	OrderByFormat Order = "format"

	// OrderByPosition lists tables strictly by document position.
	OrderByPosition Order = "position"
)

// ParseOrder converts a configuration value into an Order.
// The empty string selects OrderByFormat.
func ParseOrder(s string) (Order, bool) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderByFormat:
		return OrderByFormat, true
	case OrderByPosition:
		return OrderByPosition, true
	}
	return "", false
}

// Span is a contiguous region of the source text holding one table.
// Start and End are byte offsets; Raw == text[Start:End].
type Span struct {
	Format Format
	Start  int
	End    int
	Raw    string
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// overlaps reports whether two half-open spans share any byte.
func (s Span) overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

var (
	htmlTablePattern = regexp.MustCompile(`(?is)<table.*?>.*?</table>`)

	// Two or more newline-terminated pipe lines, plus an optional last pipe
	// line that ends the text without a newline.
	pipeTablePattern = regexp.MustCompile(`(?m)((?:^\|.+\|[ \t]*\n){2,}(?:^\|.+\|[ \t]*$)?)`)

	separatorLine = regexp.MustCompile(`^\|[\s\-:|]+\|$`)
)

// LocateHTML returns the HTML table spans in document order.
// Matching is non-greedy: a nested table ends the span at its first </table>.
func LocateHTML(text string) []Span {
	locs := htmlTablePattern.FindAllStringIndex(text, -1)
	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, Span{
			Format: FormatHTML,
			Start:  loc[0],
			End:    loc[1],
			Raw:    text[loc[0]:loc[1]],
		})
	}
	return spans
}

// LocateMarkdown returns the markdown pipe-table spans in document order.
// A candidate whose second line is not a separator is not a table.
func LocateMarkdown(text string) []Span {
	locs := pipeTablePattern.FindAllStringIndex(text, -1)
	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		raw := text[loc[0]:loc[1]]
		lines := strings.Split(strings.TrimSpace(raw), "\n")
		if len(lines) < 2 || !IsSeparator(lines[1]) {
			continue
		}
		spans = append(spans, Span{
			Format: FormatMarkdown,
			Start:  loc[0],
			End:    loc[1],
			Raw:    raw,
		})
	}
	return spans
}

// IsSeparator reports whether line is a pipe-table separator row.
func IsSeparator(line string) bool {
	return separatorLine.MatchString(strings.TrimSpace(line))
}

// Locate returns all table spans in text, sequenced according to order.
// Markdown candidates that overlap an HTML span (pipe lines inside a <table>
// block) are dropped so the result never contains overlapping spans.
func Locate(text string, order Order) []Span {
	htmlSpans := LocateHTML(text)
	mdSpans := LocateMarkdown(text)

	spans := make([]Span, 0, len(htmlSpans)+len(mdSpans))
	spans = append(spans, htmlSpans...)
	for _, md := range mdSpans {
		if !overlapsAny(md, htmlSpans) {
			spans = append(spans, md)
		}
	}

	if order == OrderByPosition {
		sort.SliceStable(spans, func(i, j int) bool {
			return spans[i].Start < spans[j].Start
		})
	}
	return spans
}

func overlapsAny(s Span, others []Span) bool {
	for _, o := range others {
		if s.overlaps(o) {
			return true
		}
	}
	return false
}
