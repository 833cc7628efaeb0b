package search

import "strings"

// MatchScalar reports whether value is non-empty and contains term,
// ignoring case.
func MatchScalar(term, value string) bool {
	if value == "" {
		return false
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// MatchCollection returns the items for which any string produced by extract
// contains term, in their original order. Each item appears at most once no
// matter how many of its strings match.
func MatchCollection[T any](term string, items []T, extract func(T) []string) []T {
	var matched []T
	for _, item := range items {
		for _, value := range extract(item) {
			if MatchScalar(term, value) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// NormalizeTerm lowercases and trims a raw search term.
func NormalizeTerm(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
