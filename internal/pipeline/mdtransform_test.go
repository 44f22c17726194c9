package pipeline

import "testing"

func TestPrepareMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no markup", input: "plain", want: "plain"},
		{name: "crlf", input: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "highlight", input: "a ==b== c", want: "a " + markOpen + "b" + markClose + " c"},
		{name: "unclosed highlight", input: "a ==b", want: "a ==b"},
		{name: "highlight stops at newline", input: "==a\nb==", want: "==a\nb=="},
		{name: "code span untouched", input: "`x == 1 || y == 2`", want: "`x == 1 || y == 2`"},
		{
			name:  "highlight beside code span",
			input: "==hot== `a == b` ==new==",
			want:  markOpen + "hot" + markClose + " `a == b` " + markOpen + "new" + markClose,
		},
		{name: "double backtick span", input: "``a ` ==b== ``", want: "``a ` ==b== ``"},
		{name: "unmatched backtick is text", input: "` ==a==", want: "` " + markOpen + "a" + markClose},
		{name: "fenced block untouched", input: "```\nx == 1 || y == 2\n```\n==z==", want: "```\nx == 1 || y == 2\n```\n" + markOpen + "z" + markClose},
		{name: "tilde fence untouched", input: "~~~go\n==a==\n~~~", want: "~~~go\n==a==\n~~~"},
		{name: "unclosed fence runs to end", input: "```\n==a==", want: "```\n==a=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := prepareMarkdown(tt.input); got != tt.want {
				t.Errorf("prepareMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFinishHighlights(t *testing.T) {
	t.Parallel()

	got := finishHighlights("<p>" + markOpen + "hi" + markClose + "</p>")
	if want := "<p><mark>hi</mark></p>"; got != want {
		t.Errorf("finishHighlights() = %q, want %q", got, want)
	}
}
