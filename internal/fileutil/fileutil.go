// Package fileutil derives output paths for prepared posts and writes them.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSuffix is appended to the post stem for the prepared Markdown file.
const DefaultSuffix = "_substack"

// Sentinel errors for output handling.
var (
	ErrSuffixPathTraversal = errors.New("suffix contains path separator or null byte")
	ErrOutputDirectory     = errors.New("creating output directory")
	ErrWriteOutput         = errors.New("writing output file")
)

// Stem returns the file name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ValidateSuffix checks that suffix is safe to splice into a file name.
func ValidateSuffix(suffix string) error {
	if strings.ContainsAny(suffix, "/\\\x00") {
		return ErrSuffixPathTraversal
	}
	return nil
}

// OutputPaths returns where the prepared Markdown and its HTML page go.
// An explicit output path wins; otherwise the Markdown sits next to the post
// as <stem><suffix>.md. The HTML page always shares the Markdown's stem.
func OutputPaths(postPath, output, suffix string) (markdown, html string, err error) {
	if output != "" {
		markdown = output
	} else {
		if suffix == "" {
			suffix = DefaultSuffix
		}
		if err := ValidateSuffix(suffix); err != nil {
			return "", "", err
		}
		markdown = filepath.Join(filepath.Dir(postPath), Stem(postPath)+suffix+".md")
	}
	html = strings.TrimSuffix(markdown, filepath.Ext(markdown)) + ".html"
	return markdown, html, nil
}

// WriteFile writes content to path, creating missing parent directories.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: %v", ErrOutputDirectory, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { // #nosec G306 -- output is meant to be shared
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
//
// Examples:
//   - "substack" -> false (name)
//   - "./custom.css" -> true
//   - "C:\styles\x.css" -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like an absolute http(s) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
