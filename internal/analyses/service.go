package analyses

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"jobportal-backend/internal/ats"
	"jobportal-backend/internal/profiles"
	"jobportal-backend/internal/shared/metrics"
	"jobportal-backend/internal/shared/telemetry"
)

const (
	DefaultMaxJobDescriptionLen = 50000
	DefaultHistoryTimeout       = 2 * time.Second

	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ProfileResolver finds the résumé an analysis runs against.
type ProfileResolver interface {
	GetResumeProfile(ctx context.Context, userID, resumeID string) (profiles.Profile, error)
}

// Service runs ATS analyses for authenticated job seekers.
type Service struct {
	Profiles ProfileResolver
	// History is optional; a nil repo skips recording.
	History              HistoryRepo
	MaxJobDescriptionLen int
	// HistoryTimeout bounds how long Analyze waits on the history write.
	HistoryTimeout time.Duration

	now func() time.Time
}

// NewService constructs a Service.
func NewService(resolver ProfileResolver, history HistoryRepo) *Service {
	return &Service{
		Profiles:             resolver,
		History:              history,
		MaxJobDescriptionLen: DefaultMaxJobDescriptionLen,
		HistoryTimeout:       DefaultHistoryTimeout,
	}
}

// Analyze resolves the caller's résumé, scores it against jobDescription and records the
// result. A failed history write is logged and dropped; the result is returned regardless.
func (s *Service) Analyze(ctx context.Context, userID, jobDescription, resumeID string) (ats.Result, error) {
	start := time.Now()

	if limit := s.MaxJobDescriptionLen; limit > 0 && utf8.RuneCountInString(jobDescription) > limit {
		return ats.Result{}, fmt.Errorf("%w: job description exceeds %d characters", ErrValidation, limit)
	}

	profile, err := s.Profiles.GetResumeProfile(ctx, userID, resumeID)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, profiles.ErrNotFound) {
			outcome = metrics.OutcomeNotFound
		}
		metrics.ObserveAnalysis(outcome, 0, time.Since(start).Seconds())
		return ats.Result{}, err
	}

	result := ats.Analyze(profile, jobDescription)
	s.record(ctx, HistoryRecord{
		ID:             uuid.New(),
		UserID:         userID,
		ResumeID:       profile.ResumeID,
		JobDescription: jobDescription,
		OverallScore:   result.Scores.OverallScore,
		Result:         result,
		CreatedAt:      s.clock().UTC(),
	})

	metrics.ObserveAnalysis(metrics.OutcomeSuccess, result.Scores.OverallScore, time.Since(start).Seconds())
	telemetry.Info("analysis.completed", map[string]any{
		"user_id":       userID,
		"resume_id":     profile.ResumeID,
		"overall_score": result.Scores.OverallScore,
		"keyword_match": result.Scores.KeywordMatch,
	})
	return result, nil
}

// List returns the caller's past analyses, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]HistoryRecord, error) {
	if s.History == nil {
		return []HistoryRecord{}, nil
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.History.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) record(ctx context.Context, rec HistoryRecord) {
	if s.History == nil {
		return
	}
	timeout := s.HistoryTimeout
	if timeout <= 0 {
		timeout = DefaultHistoryTimeout
	}
	// Detached from the request so a client disconnect does not drop the record.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.History.Append(writeCtx, rec)
	}()

	var err error
	select {
	case err = <-done:
	case <-writeCtx.Done():
		err = fmt.Errorf("history write: %w", writeCtx.Err())
	}
	if err != nil {
		metrics.IncHistoryWriteFailure()
		telemetry.Warn("analysis.history_write_failed", map[string]any{
			"user_id":   rec.UserID,
			"resume_id": rec.ResumeID,
			"error":     err,
		})
	}
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
