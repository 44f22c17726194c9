// Package ogimage renders the HTML document behind a social preview card:
// a row of logos joined by "+" glyphs above a heading, on a dotted
// background, with the card fonts embedded as base64 data URIs.
//
// # Quick Start
//
// Create a renderer once and reuse it; it is safe for concurrent use:
//
//	r, err := ogimage.NewRenderer(ogimage.WithFontDir("/usr/share/ogimage/fonts"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := r.Render(ctx, ogimage.Request{
//	    Text:       "**Hello** :smile:",
//	    Theme:      ogimage.ThemeDark,
//	    Markdown:   true,
//	    FontFamily: "Source Sans Pro",
//	    FontSize:   "96px",
//	    Images:     []string{"https://example.com/logo.svg"},
//	})
//
// The returned string is a complete HTML document, ready for a headless
// browser to screenshot.
//
// # Rendering Pipeline
//
//  1. Heading: markdown via Goldmark (GFM, highlighting, UGC policy) or
//     plain text via HTML escaping, then emoji to Twemoji images
//  2. Logo row: one <img> per image, a "+" separator before all but the first
//  3. Stylesheet: @font-face rules, theme palette, heading font
//  4. Document assembly
//
// # Themes
//
// Only "dark" selects the dark palette. Every other value, including the
// empty string and typos, renders the light palette.
//
// # Fonts
//
// Four woff2 files are read once, when the renderer is built:
//
//	SourceSansPro-Regular.woff2    SourceSansPro-Bold.woff2
//	RobotoCondensed-Regular.woff2  RobotoCondensed-Bold.woff2
//
// Without WithFonts or WithFontDir, the directories returned by
// DefaultFontDirs are searched, and the result is shared process-wide.
// A missing font is reported as ErrFontLoad and no renderer is returned.
package ogimage
