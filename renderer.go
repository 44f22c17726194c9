package ogimage

import (
	"context"
	"fmt"
	"sync"

	"github.com/alnah/go-ogimage/internal/assets"
	"github.com/alnah/go-ogimage/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.Emojifier     = (*pipeline.Twemoji)(nil)
)

// Renderer turns Requests into HTML documents. Create with NewRenderer.
// A Renderer is safe for concurrent use: everything it holds is read-only
// after construction.
type Renderer struct {
	cfg       rendererConfig
	fonts     *Fonts
	markdown  pipeline.HTMLConverter
	emojifier pipeline.Emojifier
	codeCSS   map[bool]string // keyed by dark theme
}

// NewRenderer creates a Renderer. Fonts come from WithFonts, WithFontDir or
// DefaultFontDirs, in that order; failing to load them, or a WithFonts set
// missing a default face, returns ErrFontLoad.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			lightCodeStyle: DefaultLightCodeStyle,
			darkCodeStyle:  DefaultDarkCodeStyle,
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	fonts, err := r.resolveFonts()
	if err != nil {
		return nil, err
	}
	r.fonts = fonts

	if r.markdown == nil {
		r.markdown = pipeline.NewGoldmarkConverter()
	}
	if r.emojifier == nil {
		r.emojifier = pipeline.NewTwemoji(r.cfg.emojiBaseURL)
	}

	light, err := buildCodeCSS(r.cfg.lightCodeStyle)
	if err != nil {
		return nil, err
	}
	dark, err := buildCodeCSS(r.cfg.darkCodeStyle)
	if err != nil {
		return nil, err
	}
	r.codeCSS = map[bool]string{false: light, true: dark}

	return r, nil
}

func (r *Renderer) resolveFonts() (*Fonts, error) {
	switch {
	case r.cfg.fonts != nil:
		if err := r.cfg.fonts.Covers(assets.DefaultFaces); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
		}
		return r.cfg.fonts, nil
	case r.cfg.fontDir != "":
		return LoadFonts(r.cfg.fontDir)
	default:
		return defaultFonts()
	}
}

// Render produces the complete HTML document for req.
// Errors come only from the markdown and emoji stages or from ctx; no
// partial document is returned. Recovers from internal panics so they do
// not reach callers.
func (r *Renderer) Render(ctx context.Context, req Request) (doc string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc, err = "", fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	heading, err := r.renderHeading(ctx, req)
	if err != nil {
		return "", err
	}

	styles := buildStyles(req.Theme, req.FontFamily, req.FontSize, r.fonts)
	if req.Markdown {
		styles += r.codeCSS[req.Theme == ThemeDark]
	}

	return buildDocument(styles, buildImageRow(req), heading), nil
}

// renderHeading converts or escapes the heading text, then swaps emoji for
// Twemoji images.
func (r *Renderer) renderHeading(ctx context.Context, req Request) (string, error) {
	var body string
	if req.Markdown {
		var err error
		body, err = r.markdown.ToHTML(ctx, req.Text)
		if err != nil {
			return "", fmt.Errorf("converting heading to HTML: %w", err)
		}
	} else {
		body = pipeline.EscapeHTML(req.Text)
	}

	out, err := r.emojifier.Emojify(ctx, body)
	if err != nil {
		return "", fmt.Errorf("rendering heading emoji: %w", err)
	}
	return out, nil
}

// Fonts returns the font set embedded in every document.
func (r *Renderer) Fonts() *Fonts {
	return r.fonts
}

// defaultRenderer backs the package-level Render.
var defaultRenderer = sync.OnceValues(func() (*Renderer, error) {
	return NewRenderer()
})

// Render renders req with a process-wide Renderer using default options.
// The first call loads fonts from DefaultFontDirs.
func Render(ctx context.Context, req Request) (string, error) {
	r, err := defaultRenderer()
	if err != nil {
		return "", err
	}
	return r.Render(ctx, req)
}
