package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "heading",
			input:    "# Hi",
			contains: []string{"<h1>Hi</h1>"},
		},
		{
			name:     "emphasis",
			input:    "Hello **World**",
			contains: []string{"<strong>World</strong>"},
		},
		{
			name:     "inline code",
			input:    "Run `go test`",
			contains: []string{"<code>go test</code>"},
		},
		{
			name:     "strikethrough from GFM",
			input:    "~~old~~ new",
			contains: []string{"<del>old</del>"},
		},
		{
			name:        "shortcode becomes code point",
			input:       "Ship it :smile:",
			contains:    []string{"\U0001F604"},
			notContains: []string{":smile:"},
		},
		{
			name:        "script removed by policy",
			input:       "Hi <script>alert(1)</script>",
			notContains: []string{"<script", "alert(1)"},
		},
		{
			name:        "event handler removed by policy",
			input:       `<b onclick="steal()">bold</b>`,
			contains:    []string{"<b>bold</b>"},
			notContains: []string{"onclick"},
		},
		{
			name:        "highlight becomes mark",
			input:       "Ship ==today==",
			contains:    []string{"<mark>today</mark>"},
			notContains: []string{"=="},
		},
		{
			name:        "code span keeps equality operators",
			input:       "`x == 1 || y == 2` and `:smile:`",
			contains:    []string{"<code>x == 1 || y == 2</code>", "<code>:smile:</code>"},
			notContains: []string{"<mark>"},
		},
		{
			name:        "fenced code keeps equality operators",
			input:       "```\nif a == b || c == d {}\n```",
			notContains: []string{"<mark>"},
		},
		{
			name:        "carriage returns normalized",
			input:       "one\r\ntwo",
			contains:    []string{"one<br/>"},
			notContains: []string{"\r"},
		},
		{
			name:     "fenced code is highlighted with classes",
			input:    "```go\nfunc main() {}\n```",
			contains: []string{`class="chroma"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) = %q, want it to contain %q", tt.input, got, want)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("ToHTML(%q) = %q, should not contain %q", tt.input, got, unwanted)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_Fragment(t *testing.T) {
	t.Parallel()

	got, err := NewGoldmarkConverter().ToHTML(context.Background(), "plain")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	for _, tag := range []string{"<html", "<body", "<!DOCTYPE"} {
		if strings.Contains(got, tag) {
			t.Errorf("ToHTML() = %q, want a fragment without %s", got, tag)
		}
	}
}

func TestGoldmarkConverter_ToHTML_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "# Hi")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
