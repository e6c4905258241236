package bootstrap

import (
	"context"
	"time"

	"jobportal-backend/internal/profiles"
	"jobportal-backend/internal/shared/telemetry"
)

// Identity of the résumé seeded into the in-memory store for local runs.
const (
	DemoUserID   = "demo-user"
	DemoSeekerID = "demo-seeker"
	DemoResumeID = "demo-resume"
)

func strPtr(s string) *string { return &s }

// seedDemo gives a database-less dev server one signed-in job seeker to analyze.
func seedDemo(ctx context.Context, repo *profiles.MemoryRepo) error {
	if err := repo.AddSeeker(ctx, DemoUserID, DemoSeekerID); err != nil {
		return err
	}
	err := repo.Save(ctx, profiles.Profile{
		ResumeID:  DemoResumeID,
		SeekerID:  DemoSeekerID,
		Title:     "Backend Engineer",
		Summary:   strPtr("Backend engineer building Python and Go services on AWS. Focused on reliable APIs and clear documentation."),
		IsPrimary: true,
		Experiences: []profiles.Experience{
			{Title: "Software Engineer", Company: "Acme Payments", Description: "Built REST API services in Python. Moved deployments to Docker and Kubernetes."},
			{Title: "Junior Developer", Company: "Globex", Description: "Maintained SQL reporting jobs. Wrote PostgreSQL migrations."},
		},
		Education: []profiles.Education{
			{Qualification: "Bachelor of Science in Computer Science", Institution: "State University"},
		},
		Skills: []profiles.SkillGroup{
			{Type: "technical", Skills: []string{"Python", "Go", "AWS", "Docker", "PostgreSQL"}},
			{Type: "soft", Skills: []string{"Mentoring", "Technical writing"}},
		},
		Links:     profiles.Links{GitHub: strPtr("https://github.com/demo")},
		Email:     strPtr("demo@example.com"),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		return err
	}
	telemetry.Info("bootstrap.demo_seeded", map[string]any{"user_id": DemoUserID, "resume_id": DemoResumeID})
	return nil
}
