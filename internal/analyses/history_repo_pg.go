package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGHistoryRepo implements HistoryRepo using Postgres.
type PGHistoryRepo struct {
	DB *sql.DB
}

// Append inserts a history row; duplicate ids are ignored.
func (r *PGHistoryRepo) Append(ctx context.Context, rec HistoryRecord) error {
	const query = `
INSERT INTO ats_analysis_history (id, user_id, resume_id, job_description, overall_score, analysis_data, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT DO NOTHING`
	payload, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.ResumeID,
		rec.JobDescription,
		rec.OverallScore,
		payload,
		rec.CreatedAt,
	)
	return err
}

// ListByUser returns history for a user ordered by created_at desc.
func (r *PGHistoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]HistoryRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, resume_id, job_description, overall_score, analysis_data, created_at
FROM ats_analysis_history
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []HistoryRecord{}
	for rows.Next() {
		var rec HistoryRecord
		var payload []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.ResumeID,
			&rec.JobDescription,
			&rec.OverallScore,
			&payload,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &rec.Result); err != nil {
				return nil, fmt.Errorf("decode analysis %s: %w", rec.ID, err)
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
