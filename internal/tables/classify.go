package tables

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Kind is the classification of a located table.
type Kind string

// Table kinds.
const (
	KindStatic      Kind = "static"
	KindInteractive Kind = "interactive"
)

// controlSelector matches form controls that make a table interactive.
const controlSelector = "input, select, textarea, button"

var (
	sectionBoundary = regexp.MustCompile(`\n## `)
	scriptOpenTag   = regexp.MustCompile(`(?i)<script\b`)
)

// Classify decides whether span is static data or an interactive widget.
// text is the full document the span was located in; it is used to look
// for a script block between the table and the next "## " section.
// Markdown tables are always static.
func Classify(span Span, text string) Kind {
	if span.Format != FormatHTML {
		return KindStatic
	}
	if hasControls(span.Raw) || hasTrailingScript(text, span.End) {
		return KindInteractive
	}
	return KindStatic
}

// hasControls reports whether the markup embeds any form control.
func hasControls(markup string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return false
	}
	return doc.Find(controlSelector).Length() > 0
}

// hasTrailingScript reports whether a <script> tag follows the table before
// the next second-level heading (or the end of the document).
func hasTrailingScript(text string, end int) bool {
	if end < 0 || end > len(text) {
		return false
	}
	region := text[end:]
	if loc := sectionBoundary.FindStringIndex(region); loc != nil {
		region = region[:loc[0]]
	}
	return scriptOpenTag.MatchString(region)
}
