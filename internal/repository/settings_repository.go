package repository

import (
	"context"

	"ssui-theme/internal/domain"
)

type SettingsRepository interface {
	// Get reports ok=false when key is not stored.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	List(ctx context.Context) ([]*domain.Setting, error)
}
