// Package md2substack prepares an Eleventy blog post for Substack's editor.
//
// # Quick Start
//
//	svc, err := md2substack.New(
//	    md2substack.WithToken(os.Getenv("DATAWRAPPER_TOKEN")),
//	    md2substack.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := svc.Prepare(ctx, md2substack.Input{
//	    Markdown: content,
//	    PostPath: "src/blog/rent-check/index.md",
//	})
//
// # Pipeline
//
// Prepare runs these stages in order over the post body:
//
//  1. Line ending normalization and frontmatter removal (the title is kept)
//  2. Tables: static tables become Datawrapper embed URLs, interactive
//     tables become placeholder comments
//  3. Image shortcodes become Markdown images pointing at the built site
//  4. $$...$$ and $...$ become explicit LaTeX markers
//  5. Footnotes become superscript numbers plus an endnotes block
//  6. Nunjucks tags and stray HTML are removed, blank lines compressed
//
// Charts are cached per post in a <stem>_datawrapper.json side file, so
// unchanged tables are never uploaded twice. With Input.DryRun set no
// network call or cache I/O happens and each table is replaced by a
// descriptive placeholder instead.
//
// RenderHTML turns the prepared Markdown into a styled standalone page for
// rich-text copy and paste.
package md2substack
