// Package pipeline implements the text stages that produce a card heading:
//   - Markdown to HTML conversion via Goldmark (GFM, ==highlight== marks,
//     emoji shortcodes, syntax highlighting), filtered through a bluemonday
//     policy
//   - HTML escaping of plain text and attribute/CSS values
//   - Emoji substitution with Twemoji inline images
//
// Assembling the document (stylesheet, logo row, heading wrapper) is done by
// the root ogimage package. Every stage here is stateless after construction
// and safe for concurrent use.
package pipeline
