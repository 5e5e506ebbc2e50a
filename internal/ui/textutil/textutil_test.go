package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "delectus aut autem", 40, "delectus aut autem"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "quis ut nam facilis", 8, "quis ut…"},
		{"zero width", "abc", 0, ""},
		{"wide runes not split", "日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
			}
			if Width(got) > tt.maxWidth {
				t.Errorf("Truncate(%q, %d) width %d exceeds max", tt.in, tt.maxWidth, Width(got))
			}
		})
	}
}

func TestFit(t *testing.T) {
	if got := Fit("ab", 5); got != "ab   " {
		t.Errorf("Fit pad = %q", got)
	}
	if got := Fit("abcdefgh", 5); Width(got) != 5 {
		t.Errorf("Fit truncate width = %d (%q)", Width(got), got)
	}
	if got := Fit("x", 0); got != "" {
		t.Errorf("Fit zero = %q", got)
	}
}
