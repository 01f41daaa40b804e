package patmatch

import "testing"

// TestFindIndices tests leftmost haystack search across prefilter strategies
func TestFindIndices(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		haystack  string
		wantStart int
		wantEnd   int
		wantFound bool
	}{
		// Literal lead: substring prefilter.
		{"literal lead", "foo.", "xx fooX yy", 3, 7, true},
		{"literal lead no match", "foo.", "xx foo", -1, -1, false},
		{"literal at start", "ab", "abab", 0, 2, true},

		// Alternation lead: Aho-Corasick prefilter.
		{"alternation lead", "(cat|dog)s", "raining dogs here", 8, 12, true},
		{"alternation candidate rejected then found", "(ca|do)gs", "cat dogs", 4, 8, true},
		{"alternation lead no match", "(cat|dog)s", "catalog and dog", -1, -1, false},

		// Wildcard lead: no prefilter, every position is tried.
		{"wildcard lead", ".bc", "zabc", 1, 4, true},
		{"wildcard lead whole haystack", "..z", "abz", 0, 3, true},
		{"wildcard lead no match", "..z", "ab", -1, -1, false},

		{"no occurrence", "abc", "xyz", -1, -1, false},
		{"empty haystack", "abc", "", -1, -1, false},
		{"empty pattern", "", "xyz", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MustCompile(tt.pattern)
			start, end, found := m.FindIndices(tt.haystack)
			if start != tt.wantStart || end != tt.wantEnd || found != tt.wantFound {
				t.Errorf("FindIndices(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.haystack, start, end, found, tt.wantStart, tt.wantEnd, tt.wantFound)
			}
		})
	}
}

// TestFind tests the matched-text convenience wrapper
func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		haystack string
		want     string
	}{
		{"found", "(cat|dog)s", "raining dogs here", "dogs"},
		{"wildcard consumed", "a.c", "xxabcxx", "abc"},
		{"not found", "(cat|dog)s", "sunny day", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MustCompile(tt.pattern)
			if got := m.Find(tt.haystack); got != tt.want {
				t.Errorf("Find(%q) = %q, want %q", tt.haystack, got, tt.want)
			}
		})
	}
}

// TestFindDoesNotDisturbCounter tests that search leaves the Match contract alone
func TestFindDoesNotDisturbCounter(t *testing.T) {
	m := MustCompile("abc(d|e|f).")

	m.Match("abcde")
	m.FindIndices("zz abcde zz")

	if m.MostTokensMatched() != 3 {
		t.Errorf("MostTokensMatched() = %d after FindIndices, want 3 from the last Match", m.MostTokensMatched())
	}
}
