package query

import (
	"regexp"
	"strings"

	"github.com/poiesic/cvfind/search"
)

// Phrase identifies which question form a question was recognised as.
// The responder picks its sentence template from it.
type Phrase int

const (
	// PhraseNone means no question form matched; the whole question is the term.
	PhraseNone Phrase = iota
	PhraseExperienceWith
	PhraseKnows
	PhraseListCandidates
	PhraseMention
	PhraseStudied
	PhraseWorkedAt
)

var phraseNames = map[Phrase]string{
	PhraseNone:           "none",
	PhraseExperienceWith: "who has experience with",
	PhraseKnows:          "who knows",
	PhraseListCandidates: "list all candidates",
	PhraseMention:        "which cvs mention",
	PhraseStudied:        "find people who studied",
	PhraseWorkedAt:       "who worked at",
}

func (p Phrase) String() string {
	if name, ok := phraseNames[p]; ok {
		return name
	}
	return phraseNames[PhraseNone]
}

// MarshalText encodes the phrase by name.
func (p Phrase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phrase name. Unknown names decode as PhraseNone.
func (p *Phrase) UnmarshalText(text []byte) error {
	*p = PhraseNone
	for phrase, name := range phraseNames {
		if name == string(text) {
			*p = phrase
			break
		}
	}
	return nil
}

// Intent is the classification of a natural-language question.
type Intent struct {
	Question string       `json:"question"`
	Scope    search.Scope `json:"scope"`
	Term     string       `json:"term"`
	Phrase   Phrase       `json:"phrase"`
}

type questionPattern struct {
	phrase Phrase
	scope  search.Scope
	re     *regexp.Regexp
}

// Checked in order; the first match wins.
var questionPatterns = []questionPattern{
	{PhraseExperienceWith, search.ScopeExperience, regexp.MustCompile(`(?i)who has experience with (.+?)\??$`)},
	{PhraseKnows, search.ScopeSkills, regexp.MustCompile(`(?i)who knows (.+?)\??$`)},
	{PhraseListCandidates, search.ScopeExperience, regexp.MustCompile(`(?i)list all candidates with (.+?) experience\??$`)},
	{PhraseMention, search.ScopeAll, regexp.MustCompile(`(?i)which cvs mention (.+?)\??$`)},
	{PhraseStudied, search.ScopeEducation, regexp.MustCompile(`(?i)find people who studied (.+?)\??$`)},
	{PhraseWorkedAt, search.ScopeExperience, regexp.MustCompile(`(?i)who worked at (.+?)\??$`)},
}

// Classify extracts the field scope and search term from a question.
// A question that matches no known form searches every field for the whole
// lowercased question. The term is trimmed, so it is exactly what gets
// searched. Classify never fails.
func Classify(question string) Intent {
	lowered := strings.ToLower(strings.TrimSpace(question))

	for _, p := range questionPatterns {
		if m := p.re.FindStringSubmatch(lowered); m != nil {
			return Intent{
				Question: question,
				Scope:    p.scope,
				Term:     strings.TrimSpace(m[1]),
				Phrase:   p.phrase,
			}
		}
	}

	return Intent{
		Question: question,
		Scope:    search.ScopeAll,
		Term:     lowered,
		Phrase:   PhraseNone,
	}
}
