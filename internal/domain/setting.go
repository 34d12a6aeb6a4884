package domain

import (
	"errors"
	"strings"
	"time"
)

const MaxSettingKeyLength = 200

// Setting is one durable key/value slot.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func NewSetting(key, value string) *Setting {
	return &Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
}

func (s *Setting) Validate() error {
	if strings.TrimSpace(s.Key) == "" {
		return errors.New("setting key cannot be empty")
	}

	if len(s.Key) > MaxSettingKeyLength {
		return errors.New("setting key cannot exceed 200 characters")
	}

	return nil
}
