package pipeline

import (
	"regexp"
	"strings"
)

// Markers that replace LaTeX delimiters in the output.
const (
	mathBlockPrefix  = "[LATEX_BLOCK: "
	mathInlinePrefix = "[LATEX: "
	mathSuffix       = "]"
)

var blockMathPattern = regexp.MustCompile(`(?s)\$\$(.*?)\$\$`)

// RewriteMath wraps block math ($$...$$) and then inline math ($...$) in
// explicit markers. Block math is resolved first so its delimiters are never
// read as two inline delimiters.
func RewriteMath(text string) string {
	return RewriteInlineMath(RewriteBlockMath(text))
}

// RewriteBlockMath replaces every $$...$$ region, across lines, with
// [LATEX_BLOCK: ...].
func RewriteBlockMath(text string) string {
	return blockMathPattern.ReplaceAllStringFunc(text, func(m string) string {
		inner := m[2 : len(m)-2]
		return mathBlockPrefix + strings.TrimSpace(inner) + mathSuffix
	})
}

// RewriteInlineMath replaces $...$ on a single line with [LATEX: ...].
//
// An opening $ must not touch another $, and must not be followed by a
// digit or a space, so currency such as "$100" or "$ 5" is left alone.
// The expression is the shortest non-empty run up to a $ that is not
// followed by another $.
func RewriteInlineMath(text string) string {
	var b strings.Builder
	last := 0
	i := 0
	for i < len(text) {
		if text[i] != '$' || !isInlineOpener(text, i) {
			i++
			continue
		}
		closing := findInlineCloser(text, i)
		if closing < 0 {
			i++
			continue
		}
		b.WriteString(text[last:i])
		b.WriteString(mathInlinePrefix)
		b.WriteString(strings.TrimSpace(text[i+1 : closing]))
		b.WriteString(mathSuffix)
		last = closing + 1
		i = last
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// isInlineOpener checks the context around a candidate opening $ at i.
func isInlineOpener(text string, i int) bool {
	if i > 0 && text[i-1] == '$' {
		return false
	}
	if i+1 >= len(text) {
		return false
	}
	next := text[i+1]
	return next != '$' && next != ' ' && next != '\n' && (next < '0' || next > '9')
}

// findInlineCloser returns the index of the closing $ for an opener at i,
// or -1 when the line ends first.
func findInlineCloser(text string, i int) int {
	for j := i + 2; j < len(text); j++ {
		switch text[j] {
		case '\n':
			return -1
		case '$':
			if j+1 < len(text) && text[j+1] == '$' {
				continue
			}
			return j
		}
	}
	return -1
}
