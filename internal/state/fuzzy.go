package state

import "strings"

// FuzzyMatch finds entries whose name starts with the query,
// case-insensitively. It returns the index of the first match (-1 when
// there is none) and the total match count.
func FuzzyMatch(entries []FileEntry, query string) (int, int) {
	if query == "" {
		return -1, 0
	}

	queryLower := strings.ToLower(query)
	first := -1
	count := 0
	for i, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Name), queryLower) {
			if first == -1 {
				first = i
			}
			count++
		}
	}
	return first, count
}

// ApplyFuzzyQuery updates the selection for the current fuzzy query: the
// selection jumps only when the query narrows to exactly one entry.
func ApplyFuzzyQuery(s *AppState) {
	idx, count := FuzzyMatch(s.Entries, s.FuzzyQuery)
	if count == 1 && idx >= 0 {
		s.Selected = idx
	}
}
