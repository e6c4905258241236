package profiles

import "context"

// Repo reads job seeker résumés from the profile store.
type Repo interface {
	SeekerIDForUser(ctx context.Context, userID string) (string, error)
	GetResume(ctx context.Context, seekerID, resumeID string) (Profile, error)
	// GetPrimaryResume returns the seeker's primary résumé, falling back to the most recently created one.
	GetPrimaryResume(ctx context.Context, seekerID string) (Profile, error)
}
