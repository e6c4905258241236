package profiles

import (
	"context"
	"errors"
	"strings"
)

// Service resolves the résumé an analysis should run against.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// GetResumeProfile returns the caller's résumé. An explicit resumeID must belong to the
// caller's seeker profile; otherwise the primary (or newest) résumé is used.
func (s *Service) GetResumeProfile(ctx context.Context, userID, resumeID string) (Profile, error) {
	seekerID, err := s.Repo.SeekerIDForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}

	var p Profile
	if id := strings.TrimSpace(resumeID); id != "" {
		p, err = s.Repo.GetResume(ctx, seekerID, id)
	} else {
		p, err = s.Repo.GetPrimaryResume(ctx, seekerID)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, ErrResumeNotFound
		}
		return Profile{}, err
	}
	return p, nil
}
