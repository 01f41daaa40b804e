package patmatch

// FindIndices returns the byte range of the leftmost position in haystack
// where the whole pattern matches, or (-1, -1, false) if there is none.
//
// Candidate positions come from the prefilter when the pattern has one
// (literal or alternation lead); otherwise every position is tried. Each
// candidate is verified with the full match loop, so a prefilter hit that
// fails verification just advances the search.
//
// An empty pattern matches the empty prefix at position 0.
//
// Example:
//
//	m := patmatch.MustCompile("(cat|dog)s")
//	start, end, ok := m.FindIndices("raining dogs here")
//	// start == 8, end == 12
func (m *Matcher) FindIndices(haystack string) (start, end int, found bool) {
	if len(m.tokens) == 0 {
		return 0, 0, true
	}

	var hb []byte
	if m.pf != nil {
		hb = []byte(haystack)
	}

	at := 0
	for at <= len(haystack) {
		pos := at
		if m.pf != nil {
			pos = m.pf.Find(hb, at)
			if pos == -1 {
				return -1, -1, false
			}
		}
		if n, ok := m.matchedLen(haystack[pos:]); ok {
			return pos, pos + n, true
		}
		at = pos + 1
	}

	return -1, -1, false
}

// Find returns the text of the leftmost occurrence of the pattern in
// haystack, or the empty string if there is none. Note that an empty
// pattern also yields an empty string; use FindIndices to tell the two
// apart.
func (m *Matcher) Find(haystack string) string {
	start, end, ok := m.FindIndices(haystack)
	if !ok {
		return ""
	}
	return haystack[start:end]
}
