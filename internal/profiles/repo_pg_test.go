package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID   = "0b1f7a52-2f1c-4f0e-9a53-6f3a1f7d2c10"
	testSeekerID = "5d8c0e21-94a4-4a6e-8f43-3d7f5a3e9b01"
	testResumeID = "9a6e3c44-7b5d-4c2a-a1f0-2e8b6d4c7f33"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func resumeRow(createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"resume_id", "seeker_id", "title", "statement_profile", "linkedin_url", "github_url",
		"is_primary", "created_at", "email",
	}).AddRow(testResumeID, testSeekerID, "Backend", "Go engineer", nil, "https://github.com/dev", true, createdAt, "dev@example.com")
}

func expectSections(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM experiences").
		WithArgs(testResumeID).
		WillReturnRows(sqlmock.NewRows([]string{"job_title", "company", "description"}).
			AddRow("Engineer", "Acme", "Built APIs").
			AddRow("Intern", nil, nil))
	mock.ExpectQuery("FROM education").
		WithArgs(testResumeID).
		WillReturnRows(sqlmock.NewRows([]string{"qualification", "college"}).
			AddRow("BSc", "State University"))
	mock.ExpectQuery("FROM skills").
		WithArgs(testResumeID).
		WillReturnRows(sqlmock.NewRows([]string{"skill_type", "skills"}).
			AddRow("technical", "{Go,PostgreSQL,\"REST API\"}").
			AddRow("soft", "{}"))
}

func TestPGRepoSeekerIDForUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT seeker_id FROM job_seekers").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"seeker_id"}).AddRow(testSeekerID))

	got, err := repo.SeekerIDForUser(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, testSeekerID, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoSeekerIDForUserMissing(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT seeker_id FROM job_seekers").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"seeker_id"}))

	_, err := repo.SeekerIDForUser(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoRejectsMalformedIDsWithoutQuerying(t *testing.T) {
	repo, mock := newMockRepo(t)

	_, err := repo.SeekerIDForUser(context.Background(), "guest-123")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetResume(context.Background(), testSeekerID, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetResumeLoadsSections(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("WHERE r.resume_id = \\$1 AND r.seeker_id = \\$2").
		WithArgs(testResumeID, testSeekerID).
		WillReturnRows(resumeRow(createdAt))
	expectSections(mock)

	p, err := repo.GetResume(context.Background(), testSeekerID, testResumeID)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, testResumeID, p.ResumeID)
	assert.True(t, p.HasSummary())
	assert.Nil(t, p.Links.LinkedIn)
	require.NotNil(t, p.Links.GitHub)
	assert.Equal(t, "https://github.com/dev", *p.Links.GitHub)
	require.NotNil(t, p.Email)
	assert.Equal(t, createdAt, p.CreatedAt)

	assert.Equal(t, []Experience{
		{Title: "Engineer", Company: "Acme", Description: "Built APIs"},
		{Title: "Intern"},
	}, p.Experiences)
	assert.Equal(t, []Education{{Qualification: "BSc", Institution: "State University"}}, p.Education)
	assert.Equal(t, []SkillGroup{
		{Type: "technical", Skills: []string{"Go", "PostgreSQL", "REST API"}},
		{Type: "soft", Skills: []string{}},
	}, p.Skills)
}

func TestPGRepoGetPrimaryResumeOrdering(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("ORDER BY r.is_primary DESC, r.created_at DESC").
		WithArgs(testSeekerID).
		WillReturnRows(resumeRow(time.Now().UTC()))
	expectSections(mock)

	p, err := repo.GetPrimaryResume(context.Background(), testSeekerID)

	require.NoError(t, err)
	assert.True(t, p.IsPrimary)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetPrimaryResumeNone(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("FROM resumes r").
		WithArgs(testSeekerID).
		WillReturnRows(sqlmock.NewRows([]string{"resume_id"}))

	_, err := repo.GetPrimaryResume(context.Background(), testSeekerID)

	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoSaveWritesSectionsInTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)
	summary := "Go engineer"
	p := Profile{
		ResumeID:    testResumeID,
		SeekerID:    testSeekerID,
		Title:       "Backend",
		Summary:     &summary,
		Experiences: []Experience{{Title: "Engineer", Company: "Acme", Description: "Built APIs"}},
		Education:   []Education{{Qualification: "BSc", Institution: "State University"}},
		Skills:      []SkillGroup{{Type: "technical", Skills: []string{"Go"}}},
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(testResumeID, testSeekerID, "Backend", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO experiences").
		WithArgs(testResumeID, "Engineer", "Acme", "Built APIs").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO education").
		WithArgs(testResumeID, "BSc", "State University").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO skills").
		WithArgs(testResumeID, "technical", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), p))
	require.NoError(t, mock.ExpectationsWereMet())
}
