package domain

import (
	"errors"
	"strings"
	"time"
)

// Snapshot is one theme document as it was written to a storage slot.
type Snapshot struct {
	ID         int64     `db:"id" json:"id"`
	StorageKey string    `db:"storage_key" json:"storage_key"`
	Data       string    `db:"data" json:"data"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

func NewSnapshot(storageKey, data string) *Snapshot {
	now := time.Now()
	return &Snapshot{
		StorageKey: storageKey,
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *Snapshot) Validate() error {
	if strings.TrimSpace(s.StorageKey) == "" {
		return errors.New("snapshot storage key cannot be empty")
	}

	if len(s.StorageKey) > MaxSettingKeyLength {
		return errors.New("snapshot storage key cannot exceed 200 characters")
	}

	if strings.TrimSpace(s.Data) == "" {
		return errors.New("snapshot data cannot be empty")
	}

	return nil
}
