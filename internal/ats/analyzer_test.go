package ats

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-backend/internal/profiles"
)

const pythonJD = "Looking for a Python developer with 3+ years of experience and a Bachelor's degree."

func TestAnalyzeEmptyResumeAgainstPythonRole(t *testing.T) {
	result := Analyze(profiles.Profile{}, pythonJD)

	assert.Equal(t, 0, result.Scores.Completeness)
	assert.Equal(t, 0.0, result.Scores.KeywordMatch)
	assert.Equal(t, 85, result.Scores.Formatting)
	assert.Equal(t, 50, result.Scores.Readability)
	assert.Equal(t, 20, result.Scores.OverallScore)

	assert.Empty(t, result.MatchedKeywords)
	for _, kw := range []string{"Python", "3+ years", "Bachelor"} {
		assert.Contains(t, result.MissingKeywords, kw)
	}

	got := categories(result.Suggestions)
	assert.Contains(t, got, "critical/summary")
	assert.Contains(t, got, "critical/experience")
}

func TestAnalyzeMatchesKeywordsFromResumeText(t *testing.T) {
	p := fullProfile()
	p.Experiences = append(p.Experiences, profiles.Experience{
		Title:       "Developer",
		Description: "Three years of experience, Bachelor of Science",
	})

	result := Analyze(p, pythonJD)

	assert.Contains(t, result.MatchedKeywords, "Python")
	assert.Contains(t, result.MatchedKeywords, "Bachelor")
	assert.Contains(t, result.MatchedKeywords, "experience")
	assert.Contains(t, result.MissingKeywords, "3+ years")
}

func TestAnalyzeLongSummaryFormatting(t *testing.T) {
	p := fullProfile()
	p.Summary = summaryOfLength(501)

	result := Analyze(p, pythonJD)

	assert.Equal(t, 75, result.Scores.Formatting)
	assert.Equal(t, 100, result.Scores.Completeness)
}

func TestAnalyzeEmptyJobDescription(t *testing.T) {
	result := Analyze(fullProfile(), "")

	assert.Equal(t, 0.0, result.Scores.KeywordMatch)
	assert.NotNil(t, result.MatchedKeywords)
	assert.Empty(t, result.MatchedKeywords)
	assert.Empty(t, result.MissingKeywords)
	assert.Len(t, result.IndustryInsights, 3)
}

func TestAnalyzeStrongResumeEndsWithSuccess(t *testing.T) {
	result := Analyze(fullProfile(), "Python Docker")

	require.Equal(t, 100.0, result.Scores.KeywordMatch)
	require.GreaterOrEqual(t, result.Scores.OverallScore, 80)

	successes := 0
	for _, s := range result.Suggestions {
		if s.Type == TypeSuccess {
			successes++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, TypeSuccess, result.Suggestions[len(result.Suggestions)-1].Type)
}

func TestAnalyzeKeywordMatchMonotonic(t *testing.T) {
	p := fullProfile()

	base := Analyze(p, "Python Kubernetes")
	extended := Analyze(p, "Python Kubernetes Docker")

	assert.Equal(t, 50.0, base.Scores.KeywordMatch)
	assert.GreaterOrEqual(t, extended.Scores.KeywordMatch, base.Scores.KeywordMatch)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	p := fullProfile()
	first, err := json.Marshal(Analyze(p, pythonJD))
	require.NoError(t, err)
	second, err := json.Marshal(Analyze(p, pythonJD))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestAnalyzeDoesNotMutateProfile(t *testing.T) {
	p := fullProfile()
	before, err := json.Marshal(p)
	require.NoError(t, err)

	_ = Analyze(p, pythonJD)

	after, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestAnalyzeBounds(t *testing.T) {
	var long []string
	for i := 0; i < 60; i++ {
		long = append(long, "requirement"+strings.Repeat("z", i))
	}
	jds := []string{
		"",
		pythonJD,
		"Software manager for data analyst team using AWS, Docker and Kubernetes",
		strings.Join(long, " "),
		"!!! ??? ...",
	}
	ps := []profiles.Profile{
		{},
		fullProfile(),
		{Summary: summaryOfLength(900)},
		{Skills: []profiles.SkillGroup{{Skills: []string{"requirement", "requirementz"}}}},
	}

	for _, jd := range jds {
		for _, p := range ps {
			r := Analyze(p, jd)
			for name, v := range map[string]float64{
				"keywordMatch": r.Scores.KeywordMatch,
				"completeness": float64(r.Scores.Completeness),
				"formatting":   float64(r.Scores.Formatting),
				"readability":  float64(r.Scores.Readability),
				"overallScore": float64(r.Scores.OverallScore),
			} {
				assert.GreaterOrEqual(t, v, 0.0, name)
				assert.LessOrEqual(t, v, 100.0, name)
			}
			assert.LessOrEqual(t, len(r.MatchedKeywords), maxMatchedKeywords)
			assert.LessOrEqual(t, len(r.MissingKeywords), maxMissingKeywords)
			assert.Equal(t, Overall(r.Scores), r.Scores.OverallScore)
		}
	}
}

func TestResultCloneIsDeep(t *testing.T) {
	orig := Analyze(fullProfile(), "Python developer")
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.IndustryInsights[0] = "changed"
	clone.Sections["skills"] = SectionStatus{}
	clone.Suggestions[0].Message = "changed"

	assert.NotEqual(t, "changed", orig.IndustryInsights[0])
	assert.Equal(t, "good", orig.Sections["skills"].Status)
	assert.NotEqual(t, "changed", orig.Suggestions[0].Message)
}
