package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ssui-theme/internal/domain"
	"ssui-theme/internal/repository"
)

type historyRepository struct {
	db *DB
}

func NewHistoryRepository(db *DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Record(ctx context.Context, snap *domain.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	now := time.Now().UTC()

	var existingID int64
	checkQuery := `
		SELECT id FROM theme_history
		WHERE storage_key = ? AND data = ?
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &existingID, checkQuery, snap.StorageKey, snap.Data)
	if err == nil {
		updateQuery := `UPDATE theme_history SET updated_at = ? WHERE id = ?`
		if _, err := r.db.ExecContext(ctx, updateQuery, now, existingID); err != nil {
			return fmt.Errorf("failed to update snapshot: %w", err)
		}
		snap.ID = existingID
		snap.UpdatedAt = now
		return nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check existing snapshot: %w", err)
	}

	snap.CreatedAt = now
	snap.UpdatedAt = now

	insertQuery := `
		INSERT INTO theme_history (storage_key, data, created_at, updated_at)
		VALUES (:storage_key, :data, :created_at, :updated_at)
	`

	result, err := r.db.NamedExecContext(ctx, insertQuery, snap)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	snap.ID = id

	return nil
}

func (r *historyRepository) List(ctx context.Context, storageKey string, limit int) ([]*domain.Snapshot, error) {
	query := `
		SELECT id, storage_key, data, created_at, updated_at
		FROM theme_history
		WHERE storage_key = ?
		ORDER BY updated_at DESC, id DESC
	`

	args := []any{storageKey}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var snaps []*domain.Snapshot
	if err := r.db.SelectContext(ctx, &snaps, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return snaps, nil
}

func (r *historyRepository) GetByID(ctx context.Context, id int64) (*domain.Snapshot, error) {
	query := `
		SELECT id, storage_key, data, created_at, updated_at
		FROM theme_history
		WHERE id = ?
	`

	var snap domain.Snapshot
	err := r.db.GetContext(ctx, &snap, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", repository.ErrSnapshotNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return &snap, nil
}

func (r *historyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM theme_history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", repository.ErrSnapshotNotFound, id)
	}

	return nil
}

func (r *historyRepository) Prune(ctx context.Context, storageKey string, keep int) error {
	if keep < 0 {
		keep = 0
	}

	query := `
		DELETE FROM theme_history
		WHERE storage_key = ? AND id NOT IN (
			SELECT id FROM theme_history
			WHERE storage_key = ?
			ORDER BY updated_at DESC, id DESC
			LIMIT ?
		)
	`

	if _, err := r.db.ExecContext(ctx, query, storageKey, storageKey, keep); err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}

	return nil
}

func (r *historyRepository) Count(ctx context.Context, storageKey string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM theme_history WHERE storage_key = ?`
	if err := r.db.GetContext(ctx, &count, query, storageKey); err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}

	return count, nil
}
