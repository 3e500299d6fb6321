package history

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClip(t *testing.T) {
	cases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short stays whole", "review pointers", 40, "review pointers"},
		{"long gets ellipsis", strings.Repeat("y", 30), 12, "yyyyyyyyy..."},
		{"floor applies to tiny widths", strings.Repeat("y", 30), 3, "yyyyyyy..."},
		{"multibyte at the cut", "業界のトレンドを毎週確認してください", 12, "業界のトレンドを毎..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := clip(tc.in, tc.n)
			if got != tc.want {
				t.Errorf("clip(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("clip produced invalid UTF-8: %q", got)
			}
		})
	}
}
