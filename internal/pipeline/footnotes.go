package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// EndnotesHeader opens the endnotes block appended after the body.
const EndnotesHeader = "---\n\n**Notes** *(Use Substack's native footnote feature: Cmd+Shift+8)*"

var (
	footnoteDefinitionLine = regexp.MustCompile(`^\[\^([^\]]+)\]:\s*(.*)$`)
	footnoteReference      = regexp.MustCompile(`\[\^([^\]]+)\]`)
	footnotesHeading       = regexp.MustCompile(`(?m)^#{1,6}[ \t]+Footnotes[ \t]*(?:\n|$)`)
	lineBreakWithIndent    = regexp.MustCompile(`[ \t]*\n\s*`)
)

var superscriptDigits = [10]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// FootnoteDefinition is one [^name]: body block, with continuation lines
// joined by single spaces.
type FootnoteDefinition struct {
	Name string
	Body string
}

// ToSuperscript renders n with Unicode superscript digits.
func ToSuperscript(n int) string {
	var b strings.Builder
	for _, d := range strconv.Itoa(n) {
		if d == '-' {
			b.WriteString("⁻")
			continue
		}
		b.WriteString(superscriptDigits[d-'0'])
	}
	return b.String()
}

// ExtractFootnotes removes every definition block from text and returns the
// remaining text with the definitions in source order.
//
// A definition starts on a line beginning with "[^name]:" and continues
// until a line starting with "[^", a "## " heading, a blank line followed by
// non-indented text, or the end of the text.
func ExtractFootnotes(text string) (string, []FootnoteDefinition) {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	var defs []FootnoteDefinition

	for i := 0; i < len(lines); {
		m := footnoteDefinitionLine.FindStringSubmatch(lines[i])
		if m == nil {
			kept = append(kept, lines[i])
			i++
			continue
		}

		body := []string{m[2]}
		j := i + 1
		for j < len(lines) && continuesDefinition(lines, j) {
			body = append(body, lines[j])
			j++
		}
		defs = append(defs, FootnoteDefinition{
			Name: m[1],
			Body: collapseBody(strings.Join(body, "\n")),
		})
		i = j
	}

	if len(defs) == 0 {
		return text, nil
	}
	return strings.Join(kept, "\n"), defs
}

// continuesDefinition reports whether lines[j] still belongs to the
// definition that precedes it.
func continuesDefinition(lines []string, j int) bool {
	line := lines[j]
	if strings.HasPrefix(line, "[^") || strings.HasPrefix(line, "## ") {
		return false
	}
	if strings.TrimSpace(line) != "" {
		return true
	}
	for k := j + 1; k < len(lines); k++ {
		if strings.TrimSpace(lines[k]) == "" {
			continue
		}
		return startsIndented(lines[k])
	}
	return false
}

func startsIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

func collapseBody(body string) string {
	return lineBreakWithIndent.ReplaceAllString(strings.TrimSpace(body), " ")
}

// NumberFootnoteReferences replaces each [^name] with its number in
// superscript, numbering distinct names by first appearance. It returns the
// rewritten text and the names in numbering order.
func NumberFootnoteReferences(text string) (string, []string) {
	var order []string
	index := make(map[string]int)

	out := footnoteReference.ReplaceAllStringFunc(text, func(m string) string {
		name := m[2 : len(m)-1]
		n, ok := index[name]
		if !ok {
			order = append(order, name)
			n = len(order)
			index[name] = n
		}
		return ToSuperscript(n)
	})
	return out, order
}

// Endnotes renders the notes block for names in numbering order. A name
// without a definition gets an empty note.
func Endnotes(order []string, bodies map[string]string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(EndnotesHeader)
	b.WriteString("\n\n")
	for i, name := range order {
		b.WriteString(ToSuperscript(i + 1))
		b.WriteString(" ")
		b.WriteString(bodies[name])
		b.WriteString("\n\n")
	}
	return b.String()
}

// RewriteFootnotes turns markdown footnotes into superscript numbers plus an
// endnotes section. Definitions and "Footnotes" headings are removed; when
// the text has no references it is returned without endnotes.
func RewriteFootnotes(text string) string {
	text, defs := ExtractFootnotes(text)
	text = footnotesHeading.ReplaceAllString(text, "")

	bodies := make(map[string]string, len(defs))
	for _, d := range defs {
		bodies[d.Name] = d.Body
	}

	text, order := NumberFootnoteReferences(text)
	if len(order) == 0 {
		return text
	}
	return strings.TrimRight(text, " \t\r\n") + Endnotes(order, bodies)
}
