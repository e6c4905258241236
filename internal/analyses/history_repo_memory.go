package analyses

import (
	"context"
	"sort"
	"sync"
)

// MemoryHistoryRepo stores history in memory and is safe for concurrent use.
type MemoryHistoryRepo struct {
	mu     sync.RWMutex
	byUser map[string][]HistoryRecord
}

// NewMemoryHistoryRepo constructs a MemoryHistoryRepo.
func NewMemoryHistoryRepo() *MemoryHistoryRepo {
	return &MemoryHistoryRepo{byUser: make(map[string][]HistoryRecord)}
}

// Append stores the record. A record whose ID is already present is ignored.
func (r *MemoryHistoryRepo) Append(ctx context.Context, rec HistoryRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byUser[rec.UserID] {
		if existing.ID == rec.ID {
			return nil
		}
	}
	rec.Result = rec.Result.Clone()
	r.byUser[rec.UserID] = append(r.byUser[rec.UserID], rec)
	return nil
}

// ListByUser returns records for a user, newest first, with limit/offset.
func (r *MemoryHistoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]HistoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	records := append([]HistoryRecord(nil), r.byUser[userID]...)
	r.mu.RUnlock()

	if offset >= len(records) {
		return []HistoryRecord{}, nil
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	end := len(records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := records[offset:end]
	for i := range out {
		out[i].Result = out[i].Result.Clone()
	}
	return out, nil
}
