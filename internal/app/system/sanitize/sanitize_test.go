package sanitize_test

import (
	"testing"

	"github.com/dalemusser/studyhub/internal/app/system/sanitize"
)

func TestText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Algorithms study group", "Algorithms study group"},
		{"strips tags", "<b>bold</b> name", "bold name"},
		{"strips script", `<script>alert("x")</script>notes`, "notes"},
		{"trims whitespace", "  padded  ", "padded"},
		{"empty", "", ""},
		{"only markup", "<img src=x onerror=alert(1)>", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitize.Text(tc.input)
			if got != tc.want {
				t.Errorf("Text(%q): got %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFields(t *testing.T) {
	got := sanitize.Fields([]string{"<i>CS101</i>", "  Math 230 "})
	if got[0] != "CS101" || got[1] != "Math 230" {
		t.Errorf("Fields: got %v", got)
	}
}
