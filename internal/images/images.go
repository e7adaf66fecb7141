// Package images turns Eleventy image shortcodes into Markdown images whose
// URLs point at the hashed files of the built site.
package images

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2substack/internal/fileutil"
)

// ProjectMarker names the file that marks the site project root.
const ProjectMarker = "eleventy.config.js"

// ErrRenderedPage indicates the built page exists but could not be read.
var ErrRenderedPage = errors.New("reading rendered page")

var shortcode = regexp.MustCompile(`\{%\s*image\s+"([^"]+)"\s*,\s*"([^"]*)"\s*(?:,\s*[^%]*)?\s*%\}`)

// Resolver maps image alt text to a public URL for the post at postPath.
type Resolver interface {
	Resolve(ctx context.Context, postPath string) (map[string]string, error)
}

// SiteResolver reads image URLs out of the page Eleventy rendered for a post,
// at <root>/_site/blog/<post dir>/index.html.
type SiteResolver struct {
	// SiteURL prefixes every root-relative src.
	SiteURL string
	// Root overrides the project root search when set.
	Root string
}

// Resolve returns alt -> URL for every <img> with both attributes. A
// missing rendered page yields an empty map.
func (r *SiteResolver) Resolve(ctx context.Context, postPath string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if postPath == "" {
		return map[string]string{}, nil
	}

	root := r.Root
	if root == "" {
		root = FindProjectRoot(postPath)
	}
	page := filepath.Join(root, "_site", "blog", filepath.Base(filepath.Dir(postPath)), "index.html")

	f, err := os.Open(page) // #nosec G304 -- path derived from the post location
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderedPage, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderedPage, page, err)
	}

	urls := make(map[string]string)
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.Data != "img" {
			continue
		}
		alt, src := attr(n, "alt"), attr(n, "src")
		if alt != "" && src != "" {
			urls[alt] = r.absolute(src)
		}
	}
	return urls, nil
}

func (r *SiteResolver) absolute(src string) string {
	if fileutil.IsURL(src) {
		return src
	}
	return strings.TrimRight(r.SiteURL, "/") + src
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// FindProjectRoot walks up from postPath to the first directory holding
// ProjectMarker. Without one it returns the filesystem root.
func FindProjectRoot(postPath string) string {
	dir, err := filepath.Abs(postPath)
	if err != nil {
		dir = postPath
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectMarker)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

// Unresolved describes a shortcode whose alt text had no known URL.
type Unresolved struct {
	Src string
	Alt string
}

// NotFound is the URL written for an image that must be uploaded by hand.
func NotFound(src string) string {
	return "[IMAGE URL NOT FOUND — upload " + path.Base(src) + " manually]"
}

// Contains reports whether text holds at least one image shortcode.
func Contains(text string) bool {
	return shortcode.MatchString(text)
}

// Rewrite replaces each {% image "src", "alt" ... %} shortcode with
// ![alt](url), looking url up by alt text in urls.
func Rewrite(text string, urls map[string]string) (string, []Unresolved) {
	var missing []Unresolved
	out := shortcode.ReplaceAllStringFunc(text, func(m string) string {
		sub := shortcode.FindStringSubmatch(m)
		src := trimQuotes(sub[1])
		alt := trimQuotes(sub[2])
		url, ok := urls[alt]
		if !ok {
			url = NotFound(src)
			missing = append(missing, Unresolved{Src: src, Alt: alt})
		}
		return "![" + alt + "](" + url + ")"
	})
	return out, missing
}

func trimQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}
