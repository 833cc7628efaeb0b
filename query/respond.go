package query

import (
	"fmt"
	"strings"

	"github.com/poiesic/cvfind/core"
)

// NoResultsMessage is the response for a question that matched no records.
const NoResultsMessage = "I couldn't find any CVs matching your query. Try a different search term or check if the information you're looking for is available in the database."

const topMatches = 3

// Respond renders a one-paragraph answer for intent from its ranked results.
// The output depends only on its inputs.
func Respond(intent Intent, results []*core.SearchResult) string {
	if len(results) == 0 {
		return NoResultsMessage
	}

	switch intent.Phrase {
	case PhraseExperienceWith, PhraseKnows:
		return fmt.Sprintf("I found %d people with relevant experience: %s. You can view their detailed profiles for more information.",
			len(results), joinNames(results))
	case PhraseListCandidates:
		lines := make([]string, len(results))
		for i, r := range results {
			position, company := currentRole(r.Record)
			lines[i] = fmt.Sprintf("%d. %s - %s at %s", i+1, r.Record.Name, position, company)
		}
		return fmt.Sprintf("Here are %d candidates matching your criteria:\n\n%s", len(results), strings.Join(lines, "\n"))
	case PhraseMention:
		return fmt.Sprintf("I found %d CVs mentioning your search term. The most relevant ones are from %s.",
			len(results), joinNames(results[:min(topMatches, len(results))]))
	default:
		return fmt.Sprintf("I found %d results matching your query. The top matches are from %s. You can view their detailed profiles for more information.",
			len(results), joinNames(results[:min(topMatches, len(results))]))
	}
}

func joinNames(results []*core.SearchResult) string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Record.Name
	}
	return strings.Join(names, ", ")
}

// currentRole returns the position and company of the first experience entry.
func currentRole(record *core.CVRecord) (string, string) {
	position, company := "No position", "No company"
	if len(record.Experience) == 0 {
		return position, company
	}
	first := record.Experience[0]
	if first.Position != "" {
		position = first.Position
	}
	if first.Company != "" {
		company = first.Company
	}
	return position, company
}
