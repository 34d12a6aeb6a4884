package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ssui-theme/internal/domain"
	"ssui-theme/internal/repository"
)

type settingsRepository struct {
	db *DB
}

func NewSettingsRepository(db *DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM settings WHERE key = ?`

	var value string
	err := r.db.GetContext(ctx, &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %q: %w", key, err)
	}

	return value, true, nil
}

func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	setting := domain.NewSetting(key, value)
	if err := setting.Validate(); err != nil {
		return fmt.Errorf("invalid setting: %w", err)
	}

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (:key, :value, :updated_at)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, setting); err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}

	return nil
}

func (r *settingsRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM settings WHERE key = ?`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}

	return nil
}

func (r *settingsRepository) List(ctx context.Context) ([]*domain.Setting, error) {
	query := `
		SELECT key, value, updated_at
		FROM settings
		ORDER BY key ASC
	`

	var settings []*domain.Setting
	if err := r.db.SelectContext(ctx, &settings, query); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	return settings, nil
}
