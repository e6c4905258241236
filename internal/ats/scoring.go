package ats

import (
	"math"
	"unicode/utf8"

	"jobportal-backend/internal/profiles"
)

const (
	formattingBase        = 85
	formattingLongSummary = 10
	longSummaryThreshold  = 500
	keywordWeight         = 0.4
	completenessWeight    = 0.3
	formattingWeight      = 0.15
	readabilityWeight     = 0.15
)

// Completeness awards fixed points per populated section; the maximum is 100.
func Completeness(p profiles.Profile) int {
	points := 0
	if p.HasSummary() {
		points += 20
	}
	if len(p.Experiences) > 0 {
		points += 30
	}
	if len(p.Education) > 0 {
		points += 20
	}
	if p.HasSkills() {
		points += 20
	}
	if p.HasLinks() {
		points += 10
	}
	return points
}

// Formatting starts at 85 and loses 10 points for a summary over 500 characters.
func Formatting(p profiles.Profile) int {
	score := formattingBase
	if p.HasSummary() && utf8.RuneCountInString(*p.Summary) > longSummaryThreshold {
		score -= formattingLongSummary
	}
	return score
}

// KeywordMatch is the matched share of keywords scaled to 100. It is 0 when there are no keywords.
func KeywordMatch(matched, total int) float64 {
	return math.Min(100, float64(matched)/float64(max(total, 1))*100)
}

// Overall combines the component scores with fixed weights.
func Overall(s Scores) int {
	weighted := s.KeywordMatch*keywordWeight +
		float64(s.Completeness)*completenessWeight +
		float64(s.Formatting)*formattingWeight +
		float64(s.Readability)*readabilityWeight
	return int(math.Round(weighted))
}

// Sections reports a per-section score and status.
func Sections(p profiles.Profile) map[string]SectionStatus {
	return map[string]SectionStatus{
		"contact":    sectionStatus(p.HasEmail(), 100, "complete", "missing"),
		"summary":    sectionStatus(p.HasSummary(), 85, "good", "missing"),
		"experience": sectionStatus(len(p.Experiences) > 0, 90, "good", "missing"),
		"education":  sectionStatus(len(p.Education) > 0, 85, "good", "missing"),
		"skills":     sectionStatus(len(p.Skills) > 0, 80, "good", "needs_improvement"),
	}
}

func sectionStatus(present bool, score int, ok, absent string) SectionStatus {
	if present {
		return SectionStatus{Score: score, Status: ok}
	}
	return SectionStatus{Score: 0, Status: absent}
}
