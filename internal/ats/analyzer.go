// Package ats scores a structured résumé against a free-text job description.
// Everything here is a pure function of its inputs and safe for concurrent use.
package ats

import "jobportal-backend/internal/profiles"

const (
	maxMatchedKeywords = 15
	maxMissingKeywords = 10
)

// Analyze runs the full scoring pipeline and returns a freshly built Result.
func Analyze(p profiles.Profile, jobDescription string) Result {
	text := ProjectText(p)
	keywords := ExtractKeywords(jobDescription)
	matched, missing := matchKeywords(text, keywords)

	scores := Scores{
		KeywordMatch: KeywordMatch(len(matched), len(keywords)),
		Completeness: Completeness(p),
		Formatting:   Formatting(p),
		Readability:  Readability(text),
	}
	scores.OverallScore = Overall(scores)

	return Result{
		Scores:           scores,
		MatchedKeywords:  truncate(matched, maxMatchedKeywords),
		MissingKeywords:  truncate(missing, maxMissingKeywords),
		Suggestions:      Suggestions(p, scores, missing),
		IndustryInsights: IndustryInsights(jobDescription),
		Sections:         Sections(p),
	}
}
