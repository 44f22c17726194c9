package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/enescakir/emoji"
	"golang.org/x/net/html"
)

// ErrEmojify indicates the emoji stage could not tokenize its input.
var ErrEmojify = errors.New("emoji conversion failed")

// DefaultTwemojiBaseURL serves Twemoji SVGs by code point file name.
const DefaultTwemojiBaseURL = "https://cdn.jsdelivr.net/gh/twitter/twemoji@14.0.2/assets/svg/"

const (
	zwj       = '\u200d'
	variation = '\ufe0f'
)

// skipEmojiTags never have their text touched.
var skipEmojiTags = map[string]bool{
	"iframe":   true,
	"noframes": true,
	"noscript": true,
	"script":   true,
	"select":   true,
	"style":    true,
	"textarea": true,
}

// aliasSkipTags keep their :alias: text literal; code points inside them
// are still replaced.
var aliasSkipTags = map[string]bool{
	"code": true,
	"pre":  true,
}

// Emojifier replaces emoji in an HTML fragment with inline image markup.
type Emojifier interface {
	Emojify(ctx context.Context, htmlContent string) (string, error)
}

// emojiTable is the set of known emoji sequences, built once.
type emojiTable struct {
	sequences map[string]struct{}
	maxRunes  int
}

var loadEmojiTable = sync.OnceValue(func() *emojiTable {
	t := &emojiTable{sequences: make(map[string]struct{})}
	add := func(seq string) {
		if seq == "" {
			return
		}
		t.sequences[seq] = struct{}{}
		if n := len([]rune(seq)); n > t.maxRunes {
			t.maxRunes = n
		}
	}
	for _, seq := range emoji.Map() {
		add(seq)
		// Emoji also match without FE0F, except keycap digits and the
		// trademark signs, which are ordinary text without the selector.
		stripped := strings.ReplaceAll(seq, string(variation), "")
		if stripped != seq && !textDefault([]rune(stripped)[0]) {
			add(stripped)
		}
	}
	return t
})

// textDefault reports whether r only renders as emoji when followed by FE0F.
func textDefault(r rune) bool {
	switch r {
	case 0x00A9, 0x00AE, 0x2122: // © ® ™
		return true
	}
	return r < 0x80
}

// Twemoji replaces emoji code points and :alias: shortcodes in text content
// with <img class="emoji"> tags pointing at Twemoji SVG files. Markup,
// attribute values and the contents of script-like elements are left as is;
// inside code and pre only code points are replaced.
type Twemoji struct {
	baseURL string
}

// NewTwemoji creates a Twemoji emojifier. An empty baseURL selects
// DefaultTwemojiBaseURL.
func NewTwemoji(baseURL string) *Twemoji {
	if baseURL == "" {
		baseURL = DefaultTwemojiBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Twemoji{baseURL: baseURL}
}

// BaseURL returns the URL prefix used for image sources.
func (e *Twemoji) BaseURL() string {
	return e.baseURL
}

// Emojify rewrites text tokens of htmlContent. Input that is not markup is
// treated as a single text token.
func (e *Twemoji) Emojify(ctx context.Context, htmlContent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	table := loadEmojiTable()
	z := html.NewTokenizer(strings.NewReader(htmlContent))

	var b strings.Builder
	b.Grow(len(htmlContent))
	skipDepth, codeDepth := 0, 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.String(), nil
			}
			return "", fmt.Errorf("%w: %v", ErrEmojify, z.Err())
		case html.StartTagToken:
			name, _ := z.TagName()
			if skipEmojiTags[string(name)] {
				skipDepth++
			}
			if aliasSkipTags[string(name)] {
				codeDepth++
			}
			b.Write(z.Raw())
		case html.EndTagToken:
			name, _ := z.TagName()
			if skipEmojiTags[string(name)] && skipDepth > 0 {
				skipDepth--
			}
			if aliasSkipTags[string(name)] && codeDepth > 0 {
				codeDepth--
			}
			b.Write(z.Raw())
		case html.TextToken:
			if skipDepth > 0 {
				b.Write(z.Raw())
				continue
			}
			text := string(z.Raw())
			if codeDepth == 0 {
				text = emoji.Parse(text)
			}
			b.WriteString(e.replaceText(table, text))
		default:
			b.Write(z.Raw())
		}
	}
}

// replaceText swaps every known emoji sequence in text for an image tag,
// preferring the longest match at each position.
func (e *Twemoji) replaceText(table *emojiTable, text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runes); {
		if !mayStartEmoji(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		matched := 0
		for n := min(table.maxRunes, len(runes)-i); n > 0; n-- {
			if _, ok := table.sequences[string(runes[i:i+n])]; ok {
				matched = n
				break
			}
		}
		if matched == 0 {
			b.WriteRune(runes[i])
			i++
			continue
		}

		seq := string(runes[i : i+matched])
		b.WriteString(e.imageTag(seq))
		i += matched
	}
	return b.String()
}

// imageTag renders the inline image for one emoji sequence.
func (e *Twemoji) imageTag(seq string) string {
	return `<img class="emoji" draggable="false" alt="` + seq + `" src="` + e.baseURL + TwemojiCodePoint(seq) + `.svg"/>`
}

// mayStartEmoji filters out runes that never begin an emoji sequence.
func mayStartEmoji(r rune) bool {
	if r >= 0x80 {
		return true
	}
	return r == '#' || r == '*' || (r >= '0' && r <= '9')
}

// TwemojiCodePoint returns the Twemoji file name for seq: lowercase hex code
// points joined by "-". FE0F is dropped unless the sequence contains a ZWJ.
func TwemojiCodePoint(seq string) string {
	if !strings.ContainsRune(seq, zwj) {
		seq = strings.ReplaceAll(seq, string(variation), "")
	}
	parts := make([]string, 0, 4)
	for _, r := range seq {
		parts = append(parts, strconv.FormatInt(int64(r), 16))
	}
	return strings.Join(parts, "-")
}

// Compile-time interface check.
var _ Emojifier = (*Twemoji)(nil)
