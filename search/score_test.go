package search

import (
	"testing"

	"github.com/poiesic/cvfind/core"
	"github.com/stretchr/testify/assert"
)

func scoringRecord() *core.CVRecord {
	return &core.CVRecord{
		ID:      "r1",
		Name:    "Ada Research",
		Email:   "ada@research.example.com",
		Summary: "Research engineer",
		Skills: []core.Skill{
			{Name: "Research Ethics"},
			{Name: "Qualitative Research"},
			{Name: "Go"},
		},
		Experience: []core.Experience{
			{Company: "Research Co", Position: "Research Engineer", Description: "Research"},
			{Company: "Other", Position: "Developer"},
		},
		Education: []core.Education{
			{Institution: "Uni", Degree: "MSc", Field: "Research Methods"},
		},
		Publications: []string{"On research", "More research", "Unrelated"},
		Tags:         []string{"Research", "research-heavy"},
	}
}

func TestScore_KeywordWeights(t *testing.T) {
	score, fields := Score(scoringRecord(), "research", ScopeAll, KeywordWeights)

	// name 10 + email 2 + skills 2*5 + experience 1*3 + education 1*3 + summary 2 + tags 4
	assert.Equal(t, 34, score)
	assert.Equal(t, []core.Field{
		core.FieldName,
		core.FieldEmail,
		core.FieldSkills,
		core.FieldExperience,
		core.FieldEducation,
		core.FieldSummary,
		core.FieldTags,
	}, fields)
}

func TestScore_QuestionWeights(t *testing.T) {
	score, fields := Score(scoringRecord(), "research", ScopeAll, QuestionWeights)

	// skills 2*5 + experience 1*4 + education 1*4 + name 5 + summary 2 + publications 2*3 + tags 4
	assert.Equal(t, 35, score)
	assert.Equal(t, []core.Field{
		core.FieldSkills,
		core.FieldExperience,
		core.FieldEducation,
		core.FieldName,
		core.FieldSummary,
		core.FieldPublications,
		core.FieldTags,
	}, fields)
	assert.NotContains(t, fields, core.FieldEmail)
}

func TestScore_Scopes(t *testing.T) {
	record := scoringRecord()

	tests := []struct {
		scope      Scope
		wantScore  int
		wantFields []core.Field
	}{
		{ScopeSkills, 10, []core.Field{core.FieldSkills}},
		{ScopeExperience, 4, []core.Field{core.FieldExperience}},
		{ScopeEducation, 4, []core.Field{core.FieldEducation}},
	}

	for _, tt := range tests {
		t.Run(tt.scope.String(), func(t *testing.T) {
			score, fields := Score(record, "research", tt.scope, QuestionWeights)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestScore_NoMatch(t *testing.T) {
	score, fields := Score(scoringRecord(), "kubernetes", ScopeAll, KeywordWeights)
	assert.Zero(t, score)
	assert.Empty(t, fields)

	score, fields = Score(nil, "research", ScopeAll, KeywordWeights)
	assert.Zero(t, score)
	assert.Empty(t, fields)
}

func TestScore_AbsentOptionalFields(t *testing.T) {
	record := &core.CVRecord{ID: "x", Name: "Solo"}
	score, fields := Score(record, "solo", ScopeAll, QuestionWeights)
	assert.Equal(t, 5, score)
	assert.Equal(t, []core.Field{core.FieldName}, fields)
}

func TestScope_String(t *testing.T) {
	assert.Equal(t, "all", ScopeAll.String())
	assert.Equal(t, "skills", ScopeSkills.String())
	assert.Equal(t, "experience", ScopeExperience.String())
	assert.Equal(t, "education", ScopeEducation.String())
}

func TestParseScope(t *testing.T) {
	for _, scope := range []Scope{ScopeAll, ScopeSkills, ScopeExperience, ScopeEducation} {
		assert.Equal(t, scope, ParseScope(scope.String()))
	}
	assert.Equal(t, ScopeSkills, ParseScope(" Skills "))
	assert.Equal(t, ScopeAll, ParseScope("unknown"))

	text, err := ScopeExperience.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "experience", string(text))
}
