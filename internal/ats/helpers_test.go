package ats

import (
	"strings"

	"jobportal-backend/internal/profiles"
)

func strPtr(s string) *string { return &s }

func fullProfile() profiles.Profile {
	return profiles.Profile{
		ResumeID: "resume-1",
		SeekerID: "seeker-1",
		Summary:  strPtr("Backend engineer with eight years building Python and Docker services for payments."),
		Experiences: []profiles.Experience{
			{Title: "Senior Engineer", Company: "Acme", Description: "Built Python services. Ran Docker in production."},
			{Title: "Engineer", Company: "Globex", Description: "Maintained SQL reporting jobs."},
		},
		Education: []profiles.Education{
			{Qualification: "BSc Computer Science", Institution: "State University"},
		},
		Skills: []profiles.SkillGroup{
			{Type: "technical", Skills: []string{"Python", "Docker", "PostgreSQL"}},
		},
		Links: profiles.Links{GitHub: strPtr("https://github.com/example")},
		Email: strPtr("dev@example.com"),
	}
}

func summaryOfLength(n int) *string {
	return strPtr(strings.Repeat("a", n))
}
