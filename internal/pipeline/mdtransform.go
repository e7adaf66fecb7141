package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Four or more newlines collapse to three (two blank lines).
	excessBlankLines = regexp.MustCompile(`\n{4,}`)
)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits runs of blank lines to two.
func CompressBlankLines(content string) string {
	return excessBlankLines.ReplaceAllString(content, "\n\n\n")
}

// Finalize trims surrounding whitespace and ends the text with one newline.
func Finalize(content string) string {
	return strings.TrimSpace(content) + "\n"
}
