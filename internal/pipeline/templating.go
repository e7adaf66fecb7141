package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// InteractivePlaceholderPrefix starts the comment left where an interactive
// table was found. StripHTMLArtifacts keeps these comments.
const InteractivePlaceholderPrefix = "<!-- INTERACTIVE TABLE "

var (
	nunjucksTag        = regexp.MustCompile(`\{%.*?%\}`)
	nunjucksExpression = regexp.MustCompile(`\{\{.*?\}\}`)

	scriptBlock   = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
	htmlComment   = regexp.MustCompile(`(?s)<!--.*?-->`)
	strayInlineEl = regexp.MustCompile(`(?i)</?(?:div|span|button)\b[^>]*>`)
)

// StripNunjucks removes leftover template tags ({% ... %}) and expressions
// ({{ ... }}) that sit on a single line.
func StripNunjucks(text string) string {
	text = nunjucksTag.ReplaceAllString(text, "")
	return nunjucksExpression.ReplaceAllString(text, "")
}

// StripHTMLArtifacts removes script blocks, HTML comments other than
// interactive-table placeholders, and stray div/span/button tags.
func StripHTMLArtifacts(text string) string {
	text = scriptBlock.ReplaceAllString(text, "")
	text = htmlComment.ReplaceAllStringFunc(text, func(c string) string {
		if strings.HasPrefix(c, InteractivePlaceholderPrefix) {
			return c
		}
		return ""
	})
	return strayInlineEl.ReplaceAllString(text, "")
}

// InteractivePlaceholder is the comment that replaces interactive table n.
func InteractivePlaceholder(n int) string {
	return InteractivePlaceholderPrefix + strconv.Itoa(n) + " — manually handle for Substack -->"
}
