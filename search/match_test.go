package search

import (
	"testing"

	"github.com/poiesic/cvfind/core"
	"github.com/stretchr/testify/assert"
)

func TestMatchScalar(t *testing.T) {
	tests := []struct {
		name  string
		term  string
		value string
		want  bool
	}{
		{"exact", "python", "python", true},
		{"case insensitive", "python", "PyThOn 3", true},
		{"upper case term", "NHS", "nhs innovation", true},
		{"substring", "learn", "Machine Learning", true},
		{"no match", "rust", "Go", false},
		{"empty value", "go", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchScalar(tt.term, tt.value))
		})
	}
}

func TestMatchCollection(t *testing.T) {
	experience := []core.Experience{
		{Company: "Acme", Position: "Engineer", Description: "Built research tools"},
		{Company: "Research Labs", Position: "Research Lead", Description: "Led research"},
		{Company: "Globex", Position: "Manager"},
	}

	t.Run("each item counted once in order", func(t *testing.T) {
		matched := MatchCollection("research", experience, experienceStrings)
		assert.Equal(t, []core.Experience{experience[0], experience[1]}, matched)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, MatchCollection("finance", experience, experienceStrings))
	})

	t.Run("nil collection", func(t *testing.T) {
		assert.Empty(t, MatchCollection[string]("x", nil, stringItself))
	})
}

func TestNormalizeTerm(t *testing.T) {
	assert.Equal(t, "machine learning", NormalizeTerm("  Machine Learning\t"))
	assert.Equal(t, "", NormalizeTerm("   "))
}
