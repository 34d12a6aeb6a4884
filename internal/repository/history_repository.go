package repository

import (
	"context"
	"errors"

	"ssui-theme/internal/domain"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// HistoryRepository keeps earlier versions of saved themes.
type HistoryRepository interface {
	// Record stores snap. Recording data identical to an existing snapshot
	// of the same key refreshes that snapshot instead of adding one.
	Record(ctx context.Context, snap *domain.Snapshot) error

	// List returns the newest snapshots first. limit <= 0 means all.
	List(ctx context.Context, storageKey string, limit int) ([]*domain.Snapshot, error)

	GetByID(ctx context.Context, id int64) (*domain.Snapshot, error)

	Delete(ctx context.Context, id int64) error

	// Prune keeps the newest keep snapshots of storageKey and removes the rest.
	Prune(ctx context.Context, storageKey string, keep int) error

	Count(ctx context.Context, storageKey string) (int64, error)
}
