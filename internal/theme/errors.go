package theme

import "errors"

var (
	ErrPresetNotFound    = errors.New("preset not found")
	ErrDuplicatePreset   = errors.New("duplicate preset name")
	ErrUnknownVariable   = errors.New("unknown theme variable")
	ErrInvalidVariable   = errors.New("invalid theme variable")
	ErrDuplicateVariable = errors.New("duplicate theme variable")
	ErrInvalidTheme      = errors.New("invalid theme")
)
