// Package frontmatter splits a leading YAML block off a post and reads the
// post title from it.
package frontmatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2substack/internal/yamlutil"
)

// DefaultTitle is used when neither frontmatter nor a file name names the post.
const DefaultTitle = "Untitled"

var block = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n`)

// Split returns the raw YAML between the leading --- fences and the body
// after them. Text without frontmatter is returned whole as the body.
func Split(text string) (yamlBlock, body string, ok bool) {
	loc := block.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", text, false
	}
	return text[loc[2]:loc[3]], text[loc[1]:], true
}

// Parse decodes the frontmatter of text and returns it with the body.
// A missing or empty block yields an empty map.
func Parse(text string) (map[string]any, string, error) {
	raw, body, ok := Split(text)
	if !ok || strings.TrimSpace(raw) == "" {
		return map[string]any{}, body, nil
	}
	fields, err := yamlutil.Mapping([]byte(raw))
	if err != nil {
		return nil, body, fmt.Errorf("frontmatter: %w", err)
	}
	return fields, body, nil
}

// Title returns the title field rendered as text, then fallback, then
// DefaultTitle.
func Title(fields map[string]any, fallback string) string {
	if v, ok := fields["title"]; ok && v != nil {
		if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
			return s
		}
	}
	if fallback != "" {
		return fallback
	}
	return DefaultTitle
}
