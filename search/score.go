package search

import (
	"strings"

	"github.com/poiesic/cvfind/core"
)

// Scope restricts scoring to a subset of a record's fields.
type Scope int

const (
	// ScopeAll scores every field in the weight table.
	ScopeAll Scope = iota
	// ScopeSkills scores only skills.
	ScopeSkills
	// ScopeExperience scores only experience entries.
	ScopeExperience
	// ScopeEducation scores only education entries.
	ScopeEducation
)

func (s Scope) String() string {
	switch s {
	case ScopeSkills:
		return "skills"
	case ScopeExperience:
		return "experience"
	case ScopeEducation:
		return "education"
	default:
		return "all"
	}
}

// MarshalText encodes the scope by name.
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a scope name written by MarshalText.
func (s *Scope) UnmarshalText(text []byte) error {
	*s = ParseScope(string(text))
	return nil
}

// ParseScope converts a scope name back into a Scope. Unknown names yield ScopeAll.
func ParseScope(name string) Scope {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "skills":
		return ScopeSkills
	case "experience":
		return ScopeExperience
	case "education":
		return ScopeEducation
	default:
		return ScopeAll
	}
}

// Includes reports whether field is scored under this scope.
func (s Scope) Includes(field core.Field) bool {
	switch s {
	case ScopeSkills:
		return field == core.FieldSkills
	case ScopeExperience:
		return field == core.FieldExperience
	case ScopeEducation:
		return field == core.FieldEducation
	default:
		return true
	}
}

// Rule is one row of a weight table. A per-match rule multiplies Weight by
// the number of matching entries; otherwise Weight is added once.
type Rule struct {
	Field    core.Field
	Weight   int
	PerMatch bool
}

// Weights is an ordered weight table. Row order is the order in which fields
// are reported in SearchResult.MatchedFields.
type Weights []Rule

// KeywordWeights favours name lookups.
var KeywordWeights = Weights{
	{Field: core.FieldName, Weight: 10},
	{Field: core.FieldEmail, Weight: 2},
	{Field: core.FieldSkills, Weight: 5, PerMatch: true},
	{Field: core.FieldExperience, Weight: 3, PerMatch: true},
	{Field: core.FieldEducation, Weight: 3, PerMatch: true},
	{Field: core.FieldSummary, Weight: 2},
	{Field: core.FieldTags, Weight: 4},
}

// QuestionWeights favours background (experience and education) over identity.
var QuestionWeights = Weights{
	{Field: core.FieldSkills, Weight: 5, PerMatch: true},
	{Field: core.FieldExperience, Weight: 4, PerMatch: true},
	{Field: core.FieldEducation, Weight: 4, PerMatch: true},
	{Field: core.FieldName, Weight: 5},
	{Field: core.FieldSummary, Weight: 2},
	{Field: core.FieldPublications, Weight: 3, PerMatch: true},
	{Field: core.FieldTags, Weight: 4},
}

// Score computes the relevance of record for term, restricted to scope.
// It returns the summed weight of every triggered rule and the matched fields
// in table order. term is matched as given; callers normalize it first.
func Score(record *core.CVRecord, term string, scope Scope, weights Weights) (int, []core.Field) {
	if record == nil {
		return 0, nil
	}

	score := 0
	var matched []core.Field
	for _, rule := range weights {
		if !scope.Includes(rule.Field) {
			continue
		}
		count := countMatches(record, rule.Field, term)
		if count == 0 {
			continue
		}
		if rule.PerMatch {
			score += rule.Weight * count
		} else {
			score += rule.Weight
		}
		matched = append(matched, rule.Field)
	}
	return score, matched
}

// countMatches returns how many entries of field match term.
// Scalar fields count at most one.
func countMatches(record *core.CVRecord, field core.Field, term string) int {
	switch field {
	case core.FieldName:
		return scalarCount(term, record.Name)
	case core.FieldEmail:
		return scalarCount(term, record.Email)
	case core.FieldSummary:
		return scalarCount(term, record.Summary)
	case core.FieldSkills:
		return len(MatchCollection(term, record.Skills, skillStrings))
	case core.FieldExperience:
		return len(MatchCollection(term, record.Experience, experienceStrings))
	case core.FieldEducation:
		return len(MatchCollection(term, record.Education, educationStrings))
	case core.FieldPublications:
		return len(MatchCollection(term, record.Publications, stringItself))
	case core.FieldTags:
		return len(MatchCollection(term, record.Tags, stringItself))
	default:
		return 0
	}
}

func scalarCount(term, value string) int {
	if MatchScalar(term, value) {
		return 1
	}
	return 0
}

func skillStrings(s core.Skill) []string {
	return []string{s.Name}
}

func experienceStrings(e core.Experience) []string {
	return []string{e.Company, e.Position, e.Description}
}

func educationStrings(e core.Education) []string {
	return []string{e.Institution, e.Degree, e.Field}
}

func stringItself(s string) []string {
	return []string{s}
}
