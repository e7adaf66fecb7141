// Package tables finds tables embedded in a post body and reduces them to a
// canonical header-plus-rows form.
//
// Two syntaxes are recognized:
//   - HTML tables (<table>...</table>, possibly spanning many lines)
//   - Markdown pipe tables (header line, separator line, data lines)
//
// Locate returns non-overlapping spans with byte offsets into the original
// text. Classify decides whether an HTML span is interactive (input controls
// or an associated script) and must be handled by hand. Parse converts a
// static span into a Table whose Key is identical for equal content written
// in either syntax.
package tables
