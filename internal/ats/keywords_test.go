package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywordsEmpty(t *testing.T) {
	got := ExtractKeywords("")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractKeywordsDiscoveryOrder(t *testing.T) {
	jd := "Looking for a Python developer with 3+ years of experience and a Bachelor's degree."

	got := ExtractKeywords(jd)

	assert.Equal(t, []string{
		"Python", "3+ years", "Bachelor", "Degree",
		"Looking", "developer", "years", "experience", "Bachelors", "degree",
	}, got)
}

func TestExtractKeywordsDictionaryIsCaseInsensitive(t *testing.T) {
	got := ExtractKeywords("we use KUBERNETES and ci/cd pipelines")

	assert.Contains(t, got, "Kubernetes")
	assert.Contains(t, got, "CI/CD")
	assert.Contains(t, got, "KUBERNETES")
	assert.Contains(t, got, "pipelines")
}

func TestExtractKeywordsFirstExperienceMatchOnly(t *testing.T) {
	got := ExtractKeywords("5 years backend, 2+ year frontend")

	assert.Contains(t, got, "5 years")
	assert.NotContains(t, got, "2+ year")
}

func TestExtractKeywordsSkipsStopWordsAndShortTokens(t *testing.T) {
	got := ExtractKeywords("This role will have what you need: Go, C++ & more")

	for _, word := range []string{"This", "will", "have", "what", "Go", "C"} {
		assert.NotContains(t, got, word)
	}
	assert.Equal(t, []string{"role", "need", "more"}, got)
}

func TestExtractKeywordsCapsAtTwenty(t *testing.T) {
	var words []string
	for i := 0; i < 40; i++ {
		words = append(words, "token"+strings.Repeat("x", i))
	}

	got := ExtractKeywords(strings.Join(words, " "))

	require.Len(t, got, maxKeywords)
	assert.Equal(t, "token", got[0])
}

func TestExtractKeywordsDeduplicates(t *testing.T) {
	got := ExtractKeywords("golang golang golang")

	assert.Equal(t, []string{"golang"}, got)
}

func TestMatchKeywordsUsesLowerCaseContainment(t *testing.T) {
	matched, missing := matchKeywords("senior python engineer using docker", []string{"Python", "Docker", "Rust"})

	assert.Equal(t, []string{"Python", "Docker"}, matched)
	assert.Equal(t, []string{"Rust"}, missing)
}
