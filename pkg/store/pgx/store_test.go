package pgx

import "testing"

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"acme", "%acme%"},
		{"Apple Inc", "%Apple Inc%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
		{"", "%%"},
	}

	for _, tt := range tests {
		if got := containsPattern(tt.term); got != tt.want {
			t.Fatalf("containsPattern(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}
