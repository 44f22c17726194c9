package ogimage

import "github.com/alnah/go-ogimage/internal/pipeline"

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds settings resolved by NewRenderer.
type rendererConfig struct {
	fonts          *Fonts
	fontDir        string
	emojiBaseURL   string
	lightCodeStyle string
	darkCodeStyle  string
}

// WithFonts uses an already loaded font set. It takes precedence over
// WithFontDir and must hold every face in the default set.
func WithFonts(fonts *Fonts) Option {
	return func(r *Renderer) {
		r.cfg.fonts = fonts
	}
}

// WithFontDir loads fonts from dir instead of the default search path.
func WithFontDir(dir string) Option {
	return func(r *Renderer) {
		r.cfg.fontDir = dir
	}
}

// WithEmojiBaseURL sets the URL prefix of Twemoji SVG files.
// An empty URL keeps the default CDN.
func WithEmojiBaseURL(url string) Option {
	return func(r *Renderer) {
		r.cfg.emojiBaseURL = url
	}
}

// WithCodeStyles sets the chroma styles used for highlighted code in
// markdown headings, per theme. Empty names keep the defaults.
func WithCodeStyles(light, dark string) Option {
	return func(r *Renderer) {
		if light != "" {
			r.cfg.lightCodeStyle = light
		}
		if dark != "" {
			r.cfg.darkCodeStyle = dark
		}
	}
}

// withHTMLConverter replaces the markdown stage (tests).
func withHTMLConverter(c pipeline.HTMLConverter) Option {
	return func(r *Renderer) {
		r.markdown = c
	}
}

// withEmojifier replaces the emoji stage (tests).
func withEmojifier(e pipeline.Emojifier) Option {
	return func(r *Renderer) {
		r.emojifier = e
	}
}
