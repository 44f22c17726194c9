package pipeline

import (
	"regexp"
	"strings"
)

// Highlight markers from the Private Use Area. Goldmark passes them through
// untouched.
const (
	markOpen  = "\uE000"
	markClose = "\uE001"
)

var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	highlightPattern = regexp.MustCompile(`==([^=\n]+?)==`)
	fencePattern     = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
)

// prepareMarkdown normalizes line endings and swaps ==text== for highlight
// markers ahead of conversion. Fenced blocks and code spans keep their
// text.
func prepareMarkdown(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")

	lines := strings.Split(content, "\n")
	fence := ""
	for i, line := range lines {
		if fence != "" {
			if m := fencePattern.FindStringSubmatch(line); m != nil &&
				m[1][0] == fence[0] && len(m[1]) >= len(fence) &&
				strings.TrimSpace(line[len(m[0]):]) == "" {
				fence = ""
			}
			continue
		}
		if m := fencePattern.FindStringSubmatch(line); m != nil {
			// A backtick fence with a backtick in its info string is a code
			// span, not a fence.
			if m[1][0] != '`' || !strings.Contains(line[len(m[0]):], "`") {
				fence = m[1]
				continue
			}
		}
		lines[i] = highlightOutsideCode(line)
	}
	return strings.Join(lines, "\n")
}

// highlightOutsideCode applies highlight markers to the parts of line that
// are not inside a code span. A run of n backticks opens a span closed by
// the next run of exactly n; an unmatched run is literal text.
func highlightOutsideCode(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	text := 0 // start of the pending non-code segment
	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++
			continue
		}
		open := backtickRun(line, i)
		end := closingRun(line, i+open, open)
		if end < 0 {
			i += open
			continue
		}
		b.WriteString(highlightPattern.ReplaceAllString(line[text:i], markOpen+"$1"+markClose))
		b.WriteString(line[i : end+open])
		i = end + open
		text = i
	}
	b.WriteString(highlightPattern.ReplaceAllString(line[text:], markOpen+"$1"+markClose))
	return b.String()
}

// backtickRun returns the length of the backtick run starting at i.
func backtickRun(s string, i int) int {
	n := 0
	for i+n < len(s) && s[i+n] == '`' {
		n++
	}
	return n
}

// closingRun returns the index of the first run of exactly n backticks at
// or after from, or -1.
func closingRun(s string, from, n int) int {
	for i := from; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		run := backtickRun(s, i)
		if run == n {
			return i
		}
		i += run
	}
	return -1
}

// finishHighlights turns highlight markers into <mark> elements. Runs before
// the sanitizer policy, which keeps <mark>.
func finishHighlights(htmlContent string) string {
	return strings.NewReplacer(markOpen, "<mark>", markClose, "</mark>").Replace(htmlContent)
}
