package search

import (
	"slices"

	"github.com/poiesic/cvfind/core"
)

// Keyword runs a free-text search over records with the keyword weight table.
// An empty or whitespace-only term yields an empty result.
func Keyword(records []*core.CVRecord, rawTerm string) []*core.SearchResult {
	term := NormalizeTerm(rawTerm)
	if term == "" {
		return []*core.SearchResult{}
	}
	return Rank(records, term, ScopeAll, KeywordWeights)
}

// Rank scores every record and returns those with a positive score, highest
// first. Records with equal scores keep their relative input order.
func Rank(records []*core.CVRecord, term string, scope Scope, weights Weights) []*core.SearchResult {
	return rank(records, term, scope, weights, &noopMonitor{})
}

func rank(records []*core.CVRecord, term string, scope Scope, weights Weights, monitor SearchMonitor) []*core.SearchResult {
	results := make([]*core.SearchResult, 0)
	for _, record := range records {
		score, fields := Score(record, term, scope, weights)
		if score == 0 {
			continue
		}
		monitor.Scored(record, score, fields)
		results = append(results, &core.SearchResult{
			Record:        record,
			Score:         score,
			MatchedFields: fields,
		})
	}

	slices.SortStableFunc(results, func(a, b *core.SearchResult) int {
		return b.Score - a.Score
	})
	return results
}
