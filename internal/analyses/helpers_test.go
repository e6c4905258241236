package analyses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobportal-backend/internal/profiles"
)

const testUser = "user-1"

func strPtr(s string) *string { return &s }

func seedProfiles(t *testing.T) *profiles.Service {
	t.Helper()
	ctx := context.Background()
	repo := profiles.NewMemoryRepo()
	require.NoError(t, repo.AddSeeker(ctx, testUser, "seeker-1"))
	require.NoError(t, repo.AddSeeker(ctx, "user-empty", "seeker-empty"))
	require.NoError(t, repo.Save(ctx, profiles.Profile{
		ResumeID:  "resume-primary",
		SeekerID:  "seeker-1",
		IsPrimary: true,
		Summary:   strPtr("Backend engineer building Python and Docker services."),
		Experiences: []profiles.Experience{
			{Title: "Engineer", Company: "Acme", Description: "Built Python APIs."},
		},
		Education: []profiles.Education{{Qualification: "Bachelor of Science", Institution: "State"}},
		Skills:    []profiles.SkillGroup{{Type: "technical", Skills: []string{"Python", "Docker"}}},
		Links:     profiles.Links{GitHub: strPtr("https://github.com/dev")},
		Email:     strPtr("dev@example.com"),
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, repo.Save(ctx, profiles.Profile{
		ResumeID:  "resume-bare",
		SeekerID:  "seeker-1",
		CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}))
	return profiles.NewService(repo)
}

type failingHistory struct {
	err   error
	calls int
}

func (f *failingHistory) Append(context.Context, HistoryRecord) error {
	f.calls++
	return f.err
}

func (f *failingHistory) ListByUser(context.Context, string, int, int) ([]HistoryRecord, error) {
	return nil, f.err
}

var errRelationMissing = errors.New(`relation "ats_analysis_history" does not exist`)

// blockingHistory ignores its context and holds Append until release is closed.
type blockingHistory struct {
	release chan struct{}
}

func (b *blockingHistory) Append(context.Context, HistoryRecord) error {
	<-b.release
	return nil
}

func (b *blockingHistory) ListByUser(context.Context, string, int, int) ([]HistoryRecord, error) {
	return []HistoryRecord{}, nil
}

// cancelAfterResolve cancels the request context once the profile is loaded.
type cancelAfterResolve struct {
	ProfileResolver
	cancel context.CancelFunc
}

func (c cancelAfterResolve) GetResumeProfile(ctx context.Context, userID, resumeID string) (profiles.Profile, error) {
	p, err := c.ProfileResolver.GetResumeProfile(ctx, userID, resumeID)
	c.cancel()
	return p, err
}
