package profiles

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `
SELECT r.resume_id, r.seeker_id, r.title, r.statement_profile, r.linkedin_url, r.github_url,
       r.is_primary, r.created_at, u.email
FROM resumes r
JOIN job_seekers js ON js.seeker_id = r.seeker_id
JOIN users u ON u.user_id = js.user_id`

// SeekerIDForUser resolves the job seeker profile owned by a user.
func (r *PGRepo) SeekerIDForUser(ctx context.Context, userID string) (string, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return "", ErrNotFound
	}
	const query = `SELECT seeker_id FROM job_seekers WHERE user_id = $1`
	var seekerID string
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&seekerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return seekerID, nil
}

// GetResume returns a résumé owned by the given seeker.
func (r *PGRepo) GetResume(ctx context.Context, seekerID, resumeID string) (Profile, error) {
	if _, err := uuid.Parse(resumeID); err != nil {
		return Profile{}, ErrNotFound
	}
	const query = resumeColumns + `
WHERE r.resume_id = $1 AND r.seeker_id = $2`
	p, err := scanResume(r.DB.QueryRowContext(ctx, query, resumeID, seekerID))
	if err != nil {
		return Profile{}, err
	}
	return r.withSections(ctx, p)
}

// GetPrimaryResume returns the primary résumé, or the newest one when none is flagged.
func (r *PGRepo) GetPrimaryResume(ctx context.Context, seekerID string) (Profile, error) {
	const query = resumeColumns + `
WHERE r.seeker_id = $1
ORDER BY r.is_primary DESC, r.created_at DESC
LIMIT 1`
	p, err := scanResume(r.DB.QueryRowContext(ctx, query, seekerID))
	if err != nil {
		return Profile{}, err
	}
	return r.withSections(ctx, p)
}

// Save inserts a résumé and its sections in one transaction.
func (r *PGRepo) Save(ctx context.Context, p Profile) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insertResume = `
INSERT INTO resumes (resume_id, seeker_id, title, statement_profile, linkedin_url, github_url, is_primary, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.ExecContext(ctx, insertResume,
		p.ResumeID,
		p.SeekerID,
		p.Title,
		nullString(p.Summary),
		nullString(p.Links.LinkedIn),
		nullString(p.Links.GitHub),
		p.IsPrimary,
		p.CreatedAt,
	); err != nil {
		return err
	}

	for _, e := range p.Experiences {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO experiences (resume_id, job_title, company, description) VALUES ($1, $2, $3, $4)`,
			p.ResumeID, e.Title, e.Company, e.Description,
		); err != nil {
			return err
		}
	}
	for _, e := range p.Education {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO education (resume_id, qualification, college) VALUES ($1, $2, $3)`,
			p.ResumeID, e.Qualification, e.Institution,
		); err != nil {
			return err
		}
	}
	for _, g := range p.Skills {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO skills (resume_id, skill_type, skills) VALUES ($1, $2, $3)`,
			p.ResumeID, g.Type, pq.Array(g.Skills),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func scanResume(row *sql.Row) (Profile, error) {
	var p Profile
	var title sql.NullString
	var summary sql.NullString
	var linkedIn sql.NullString
	var gitHub sql.NullString
	var email sql.NullString
	err := row.Scan(
		&p.ResumeID,
		&p.SeekerID,
		&title,
		&summary,
		&linkedIn,
		&gitHub,
		&p.IsPrimary,
		&p.CreatedAt,
		&email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	p.Title = title.String
	p.Summary = stringPtr(summary)
	p.Links.LinkedIn = stringPtr(linkedIn)
	p.Links.GitHub = stringPtr(gitHub)
	p.Email = stringPtr(email)
	return p, nil
}

func (r *PGRepo) withSections(ctx context.Context, p Profile) (Profile, error) {
	var err error
	if p.Experiences, err = r.listExperiences(ctx, p.ResumeID); err != nil {
		return Profile{}, err
	}
	if p.Education, err = r.listEducation(ctx, p.ResumeID); err != nil {
		return Profile{}, err
	}
	if p.Skills, err = r.listSkills(ctx, p.ResumeID); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (r *PGRepo) listExperiences(ctx context.Context, resumeID string) ([]Experience, error) {
	const query = `
SELECT job_title, company, description
FROM experiences
WHERE resume_id = $1
ORDER BY experience_id DESC`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Experience{}
	for rows.Next() {
		var title, company, description sql.NullString
		if err := rows.Scan(&title, &company, &description); err != nil {
			return nil, err
		}
		out = append(out, Experience{Title: title.String, Company: company.String, Description: description.String})
	}
	return out, rows.Err()
}

func (r *PGRepo) listEducation(ctx context.Context, resumeID string) ([]Education, error) {
	const query = `
SELECT qualification, college
FROM education
WHERE resume_id = $1
ORDER BY end_date DESC NULLS LAST, education_id`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Education{}
	for rows.Next() {
		var qualification, college sql.NullString
		if err := rows.Scan(&qualification, &college); err != nil {
			return nil, err
		}
		out = append(out, Education{Qualification: qualification.String, Institution: college.String})
	}
	return out, rows.Err()
}

func (r *PGRepo) listSkills(ctx context.Context, resumeID string) ([]SkillGroup, error) {
	const query = `
SELECT skill_type, skills
FROM skills
WHERE resume_id = $1
ORDER BY skill_id`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SkillGroup{}
	for rows.Next() {
		var skillType sql.NullString
		var skills []string
		if err := rows.Scan(&skillType, pq.Array(&skills)); err != nil {
			return nil, err
		}
		if skills == nil {
			skills = []string{}
		}
		out = append(out, SkillGroup{Type: skillType.String, Skills: skills})
	}
	return out, rows.Err()
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
