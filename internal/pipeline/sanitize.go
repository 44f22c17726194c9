package pipeline

import (
	"regexp"
	"strings"
)

// entityPattern matches a complete character reference at the start of a string.
var entityPattern = regexp.MustCompile(`^&(?:#[0-9]{1,7}|#[xX][0-9a-fA-F]{1,6}|[A-Za-z][A-Za-z0-9]{1,31});`)

// EscapeHTML escapes & < > " ' and / so text can be interpolated into HTML
// content, attribute values or CSS declarations.
//
// An ampersand that already starts a character reference is kept as is,
// which makes EscapeHTML idempotent.
func EscapeHTML(text string) string {
	if !strings.ContainsAny(text, `&<>"'/`) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		case '/':
			b.WriteString("&#x2F;")
		case '&':
			if entityPattern.MatchString(text[i:]) {
				b.WriteByte('&')
			} else {
				b.WriteString("&amp;")
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
