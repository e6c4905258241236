package ats

import (
	"regexp"
	"slices"
	"strings"
)

const maxKeywords = 20

var techKeywords = []string{
	"JavaScript", "Python", "Java", "React", "Node.js", "SQL", "AWS", "Docker",
	"Kubernetes", "Git", "Agile", "Scrum", "TypeScript", "Angular", "Vue",
	"MongoDB", "PostgreSQL", "MySQL", "REST API", "GraphQL", "CI/CD",
	"Machine Learning", "Data Science", "DevOps", "Cloud", "Microservices",
}

var degreeKeywords = []string{"Bachelor", "Master", "PhD", "Degree", "BS", "MS"}

var stopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {}, "have": {},
	"will": {}, "your": {}, "what": {}, "when": {}, "where": {},
}

var (
	experiencePattern = regexp.MustCompile(`(?i)\d+\+?\s*years?`)
	nonAlphanumeric   = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// ExtractKeywords derives at most 20 keywords from a job description, in discovery
// order: dictionary terms, the first experience requirement, degree terms, then
// generic tokens of four or more characters.
func ExtractKeywords(jobDescription string) []string {
	if jobDescription == "" {
		return []string{}
	}
	lower := strings.ToLower(jobDescription)

	keywords := make([]string, 0, maxKeywords)
	for _, kw := range techKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			keywords = append(keywords, kw)
		}
	}

	if exp := experiencePattern.FindString(jobDescription); exp != "" {
		keywords = append(keywords, exp)
	}

	for _, degree := range degreeKeywords {
		if strings.Contains(lower, strings.ToLower(degree)) {
			keywords = append(keywords, degree)
		}
	}

	for _, word := range strings.Fields(jobDescription) {
		clean := nonAlphanumeric.ReplaceAllString(word, "")
		if len(clean) < 4 {
			continue
		}
		if _, stop := stopWords[strings.ToLower(clean)]; stop {
			continue
		}
		if slices.Contains(keywords, clean) {
			continue
		}
		keywords = append(keywords, clean)
	}

	return firstUnique(keywords, maxKeywords)
}

// matchKeywords splits keywords by case-insensitive containment in the projected text.
func matchKeywords(text string, keywords []string) (matched, missing []string) {
	matched = make([]string, 0, len(keywords))
	missing = make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return matched, missing
}

func firstUnique(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, min(len(items), limit))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

func truncate(items []string, limit int) []string {
	if len(items) <= limit {
		return items
	}
	return items[:limit]
}
