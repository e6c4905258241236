package ats

import (
	"strings"
	"unicode/utf8"

	"jobportal-backend/internal/profiles"
)

const (
	shortSummaryThreshold   = 50
	lowKeywordMatch         = 50
	lowReadability          = 60
	strongOverall           = 80
	missingKeywordsInAdvice = 5
)

// Suggestions evaluates the rule list in a fixed order. Every qualifying rule fires
// and the output order follows the rule order.
func Suggestions(p profiles.Profile, scores Scores, missingKeywords []string) []Suggestion {
	out := make([]Suggestion, 0, 8)

	switch {
	case !p.HasSummary():
		out = append(out, Suggestion{
			Type:     TypeCritical,
			Category: "summary",
			Message:  "Add a professional summary to highlight your key qualifications and career objectives",
			Impact:   ImpactHigh,
		})
	case utf8.RuneCountInString(*p.Summary) < shortSummaryThreshold:
		out = append(out, Suggestion{
			Type:     TypeWarning,
			Category: "summary",
			Message:  "Expand your professional summary to better showcase your value proposition",
			Impact:   ImpactMedium,
		})
	}

	switch len(p.Experiences) {
	case 0:
		out = append(out, Suggestion{
			Type:     TypeCritical,
			Category: "experience",
			Message:  "Add your work experience with quantifiable achievements and responsibilities",
			Impact:   ImpactHigh,
		})
	case 1:
		out = append(out, Suggestion{
			Type:     TypeInfo,
			Category: "experience",
			Message:  "Consider adding more relevant work experiences or projects",
			Impact:   ImpactLow,
		})
	}

	if len(missingKeywords) > 0 {
		out = append(out, Suggestion{
			Type:     TypeWarning,
			Category: "keywords",
			Message:  "Include these missing keywords: " + strings.Join(truncate(missingKeywords, missingKeywordsInAdvice), ", "),
			Impact:   ImpactHigh,
		})
	}

	if scores.KeywordMatch < lowKeywordMatch {
		out = append(out, Suggestion{
			Type:     TypeCritical,
			Category: "optimization",
			Message:  "Your resume needs better alignment with the job requirements. Review and incorporate relevant keywords",
			Impact:   ImpactHigh,
		})
	}

	if len(p.Skills) == 0 {
		out = append(out, Suggestion{
			Type:     TypeWarning,
			Category: "skills",
			Message:  "Add a skills section highlighting your technical and soft skills",
			Impact:   ImpactMedium,
		})
	}

	if scores.Readability < lowReadability {
		out = append(out, Suggestion{
			Type:     TypeInfo,
			Category: "readability",
			Message:  "Simplify your language and use shorter sentences for better readability",
			Impact:   ImpactLow,
		})
	}

	if scores.OverallScore >= strongOverall {
		out = append(out, Suggestion{
			Type:     TypeSuccess,
			Category: "overall",
			Message:  "Great job! Your resume is well-optimized for ATS systems",
			Impact:   ImpactPositive,
		})
	}

	return out
}
