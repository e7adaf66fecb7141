// Package pipeline implements the text rewriting stages that flatten a post
// for Substack's editor, and the final Markdown-to-HTML rendering.
//
// Each stage is a small function from text to text (plus any structure it
// extracts), so stages can be tested and ordered independently:
//   - Apply splices precomputed replacements in reverse document order
//   - RewriteMath wraps $$...$$ and $...$ in explicit LaTeX markers
//   - RewriteFootnotes renumbers [^name] references and appends endnotes
//   - StripNunjucks and StripHTMLArtifacts remove template and markup debris
//   - NormalizeLineEndings and CompressBlankLines tidy whitespace
//
// HTML rendering goes through Goldmark (GFM tables, syntax highlighting with
// inline styles) and a page template with an injected stylesheet.
package pipeline
