package health

import (
	"context"
	"database/sql"
	"time"

	"jobportal-backend/internal/shared/storage/db"
	"jobportal-backend/internal/shared/telemetry"
)

const (
	DBUp       = "up"
	DBDown     = "down"
	DBDisabled = "disabled"
)

// Status is the health payload.
type Status struct {
	OK bool   `json:"ok"`
	DB string `json:"db"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB      *sql.DB
	Timeout time.Duration
}

// NewService constructs a health service. A nil database reports "disabled".
func NewService(database *sql.DB) *Service {
	return &Service{DB: database, Timeout: 2 * time.Second}
}

// Status pings the database when one is configured.
func (s *Service) Status(ctx context.Context) Status {
	if s.DB == nil {
		return Status{OK: true, DB: DBDisabled}
	}
	if err := db.Ping(ctx, s.DB, s.Timeout); err != nil {
		telemetry.Warn("health.db_ping_failed", map[string]any{"error": err})
		return Status{OK: false, DB: DBDown}
	}
	return Status{OK: true, DB: DBUp}
}
