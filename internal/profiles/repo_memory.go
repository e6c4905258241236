package profiles

import (
	"context"
	"sync"
)

// MemoryRepo stores profiles in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	seekers  map[string]string
	byID     map[string]Profile
	bySeeker map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		seekers:  make(map[string]string),
		byID:     make(map[string]Profile),
		bySeeker: make(map[string][]string),
	}
}

// AddSeeker links a user to a job seeker profile.
func (r *MemoryRepo) AddSeeker(ctx context.Context, userID, seekerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seekers[userID] = seekerID
	return nil
}

// Save stores or replaces a résumé.
func (r *MemoryRepo) Save(ctx context.Context, p Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[p.ResumeID]; !exists {
		r.bySeeker[p.SeekerID] = append(r.bySeeker[p.SeekerID], p.ResumeID)
	}
	r.byID[p.ResumeID] = p
	return nil
}

func (r *MemoryRepo) SeekerIDForUser(ctx context.Context, userID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	seekerID, ok := r.seekers[userID]
	if !ok {
		return "", ErrNotFound
	}
	return seekerID, nil
}

func (r *MemoryRepo) GetResume(ctx context.Context, seekerID, resumeID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[resumeID]
	if !ok || p.SeekerID != seekerID {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryRepo) GetPrimaryResume(ctx context.Context, seekerID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best Profile
	found := false
	for _, id := range r.bySeeker[seekerID] {
		p := r.byID[id]
		if !found || preferred(p, best) {
			best = p
			found = true
		}
	}
	if !found {
		return Profile{}, ErrNotFound
	}
	return best, nil
}

// preferred mirrors ORDER BY is_primary DESC, created_at DESC.
func preferred(a, b Profile) bool {
	if a.IsPrimary != b.IsPrimary {
		return a.IsPrimary
	}
	return a.CreatedAt.After(b.CreatedAt)
}
