package analyses

import (
	"time"

	"github.com/google/uuid"

	"jobportal-backend/internal/ats"
)

// HistoryRecord is one stored analysis for a user.
type HistoryRecord struct {
	ID             uuid.UUID  `json:"id"`
	UserID         string     `json:"userId"`
	ResumeID       string     `json:"resumeId"`
	JobDescription string     `json:"jobDescription"`
	OverallScore   int        `json:"overallScore"`
	Result         ats.Result `json:"analysis"`
	CreatedAt      time.Time  `json:"createdAt"`
}
