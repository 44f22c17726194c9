package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates markdown conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// classPattern restricts class attributes kept by the policy to plain tokens.
var classPattern = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
//
// Raw HTML in the source is passed through by goldmark and then filtered by
// a UGC policy, so inline markup like <b> survives while <script>, event
// handlers and style attributes do not.
type GoldmarkConverter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM, ==highlight==
// marks, emoji shortcodes rendered as Unicode and class-based syntax
// highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			// Shortcodes become code points so the emoji stage sees one form.
			emoji.New(emoji.WithRenderingMethod(emoji.Unicode)),
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			html.WithUnsafe(), // filtered by policy below
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(classPattern).Globally()

	return &GoldmarkConverter{md: md, policy: policy}
}

// ToHTML converts Markdown content to a sanitized HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// the caller stops waiting on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(prepareMarkdown(content)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: c.policy.Sanitize(finishHighlights(buf.String()))}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)
