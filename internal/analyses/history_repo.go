package analyses

import "context"

// HistoryRepo records completed analyses.
type HistoryRepo interface {
	Append(ctx context.Context, rec HistoryRecord) error
	// ListByUser returns a user's records newest first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]HistoryRecord, error)
}
