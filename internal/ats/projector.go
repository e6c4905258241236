package ats

import (
	"strings"

	"jobportal-backend/internal/profiles"
)

// ProjectText flattens a résumé into one lower-cased blob used for keyword containment
// and readability. Order: summary, experiences, education, skills.
func ProjectText(p profiles.Profile) string {
	parts := make([]string, 0, 1+3*len(p.Experiences)+2*len(p.Education)+len(p.Skills))
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	if p.HasSummary() {
		add(*p.Summary)
	}
	for _, exp := range p.Experiences {
		add(exp.Title)
		add(exp.Company)
		add(exp.Description)
	}
	for _, edu := range p.Education {
		add(edu.Qualification)
		add(edu.Institution)
	}
	for _, group := range p.Skills {
		add(strings.Join(group.Skills, " "))
	}
	return strings.ToLower(strings.Join(parts, " "))
}
