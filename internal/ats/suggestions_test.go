package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-backend/internal/profiles"
)

func categories(items []Suggestion) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.Type+"/"+s.Category)
	}
	return out
}

func TestSuggestionsEmptyProfile(t *testing.T) {
	scores := Scores{KeywordMatch: 0, Readability: 50, OverallScore: 20}
	got := Suggestions(profiles.Profile{}, scores, []string{"Python", "3+ years", "Bachelor", "Degree", "Looking", "developer"})

	assert.Equal(t, []string{
		"critical/summary",
		"critical/experience",
		"warning/keywords",
		"critical/optimization",
		"warning/skills",
		"info/readability",
	}, categories(got))
	assert.Equal(t, "Include these missing keywords: Python, 3+ years, Bachelor, Degree, Looking", got[2].Message)
	assert.Equal(t, ImpactHigh, got[0].Impact)
	assert.Equal(t, ImpactMedium, got[4].Impact)
}

func TestSuggestionsShortSummaryAndSingleExperience(t *testing.T) {
	p := profiles.Profile{
		Summary:     strPtr("Engineer."),
		Experiences: []profiles.Experience{{Title: "Engineer"}},
		Skills:      []profiles.SkillGroup{{Skills: []string{"Go"}}},
	}
	got := Suggestions(p, Scores{KeywordMatch: 100, Readability: 80, OverallScore: 70}, nil)

	require.Len(t, got, 2)
	assert.Equal(t, Suggestion{
		Type:     TypeWarning,
		Category: "summary",
		Message:  "Expand your professional summary to better showcase your value proposition",
		Impact:   ImpactMedium,
	}, got[0])
	assert.Equal(t, "info/experience", got[1].Type+"/"+got[1].Category)
	assert.Equal(t, ImpactLow, got[1].Impact)
}

func TestSuggestionsSummaryAtThresholdIsNotShort(t *testing.T) {
	p := fullProfile()
	p.Summary = summaryOfLength(50)

	got := Suggestions(p, Scores{KeywordMatch: 100, Readability: 80, OverallScore: 79}, nil)

	assert.Empty(t, got)
}

func TestSuggestionsSuccessIsLast(t *testing.T) {
	got := Suggestions(fullProfile(), Scores{KeywordMatch: 100, Readability: 40, OverallScore: 90}, nil)

	require.Len(t, got, 2)
	assert.Equal(t, "info/readability", got[0].Type+"/"+got[0].Category)
	assert.Equal(t, Suggestion{
		Type:     TypeSuccess,
		Category: "overall",
		Message:  "Great job! Your resume is well-optimized for ATS systems",
		Impact:   ImpactPositive,
	}, got[1])
}

func TestSuggestionsKeywordMatchBoundary(t *testing.T) {
	got := Suggestions(fullProfile(), Scores{KeywordMatch: 50, Readability: 60, OverallScore: 79}, nil)
	assert.Empty(t, got)

	got = Suggestions(fullProfile(), Scores{KeywordMatch: 49.9, Readability: 60, OverallScore: 79}, nil)
	assert.Equal(t, []string{"critical/optimization"}, categories(got))
}

func TestSuggestionsEmptySkillGroupCountsAsSkillsSection(t *testing.T) {
	p := fullProfile()
	p.Skills = []profiles.SkillGroup{{Type: "technical"}}

	got := Suggestions(p, Scores{KeywordMatch: 100, Readability: 80, OverallScore: 90}, nil)

	assert.NotContains(t, categories(got), "warning/skills")
}
