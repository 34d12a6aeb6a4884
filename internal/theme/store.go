package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultStorageKey is the storage slot the persisted theme lives under.
const DefaultStorageKey = "ssui-theme"

// Storage is the durable key/value contract the store persists through.
// Get reports ok=false when the key holds nothing.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type StoreOptions struct {
	Registry    *Registry
	Catalog     *Catalog
	Storage     Storage
	Environment Environment
	StorageKey  string
	Logger      zerolog.Logger
}

// Store is the single owner of the registry, the presets, the persisted
// theme and the live overrides. Construct one at startup and hand it to
// whatever renders or edits the theme.
type Store struct {
	registry *Registry
	catalog  *Catalog
	storage  Storage
	env      Environment
	key      string
	logger   zerolog.Logger
}

func NewStore(opts StoreOptions) (*Store, error) {
	if opts.Storage == nil {
		return nil, errors.New("storage is required")
	}
	if opts.Environment == nil {
		return nil, errors.New("environment is required")
	}
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}
	if opts.Catalog == nil {
		opts.Catalog = DefaultCatalog()
	}
	if opts.StorageKey == "" {
		opts.StorageKey = DefaultStorageKey
	}

	return &Store{
		registry: opts.Registry,
		catalog:  opts.Catalog,
		storage:  opts.Storage,
		env:      opts.Environment,
		key:      opts.StorageKey,
		logger:   opts.Logger,
	}, nil
}

// returns the registry variables in display order
func (s *Store) Registry() []Variable {
	return s.registry.Variables()
}

// returns the registry grouped for display
func (s *Store) Groups() []Group {
	return s.registry.Groups()
}

// returns the preset catalog keyed by name
func (s *Store) Presets() map[string]Theme {
	return s.catalog.All()
}

// returns preset names in catalog order
func (s *Store) PresetNames() []string {
	return s.catalog.Names()
}

func (s *Store) Preset(name string) (Theme, bool) {
	t, err := s.catalog.Get(name)
	if err != nil {
		return nil, false
	}
	return t, true
}

// SavedTheme reads the persisted theme. Missing, unreadable and malformed
// storage all report ok=false.
func (s *Store) SavedTheme(ctx context.Context) (Theme, bool) {
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("failed to read saved theme")
		return nil, false
	}
	if !ok || raw == "" {
		return nil, false
	}

	t, err := ParseTheme(raw)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("ignoring corrupt saved theme")
		return nil, false
	}

	return t, true
}

// SaveTheme replaces the persisted theme. Keys are stored as given, unknown
// ones included. Write failures are returned.
func (s *Store) SaveTheme(ctx context.Context, t Theme) error {
	if t == nil {
		t = Theme{}
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}

	if err := s.storage.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	s.logger.Debug().Int("keys", len(t)).Msg("theme saved")
	return nil
}

// ClearTheme drops every live override and deletes the persisted theme.
// Overrides are removed even when the delete fails.
func (s *Store) ClearTheme(ctx context.Context) error {
	keys := s.registry.Keys()
	if saved, ok := s.SavedTheme(ctx); ok {
		for k := range saved {
			if !s.registry.Has(k) {
				keys = append(keys, k)
			}
		}
	}

	for _, k := range keys {
		s.env.RemoveOverride(k)
	}

	if err := s.storage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear saved theme: %w", err)
	}

	s.logger.Debug().Msg("theme reset to defaults")
	return nil
}

// ApplyTheme sets a live override for every key with a non-empty value.
// Keys not in t keep their current value.
func (s *Store) ApplyTheme(t Theme) {
	for k, v := range t {
		if v == "" {
			continue
		}
		s.env.SetOverride(k, v)
	}
}

// ApplyPreset applies the named preset and persists it.
func (s *Store) ApplyPreset(ctx context.Context, name string) error {
	preset, err := s.catalog.Get(name)
	if err != nil {
		return err
	}

	s.ApplyTheme(preset)
	return s.SaveTheme(ctx, preset)
}

// SetValue overrides a single registered variable without persisting it.
// An empty value removes the override.
func (s *Store) SetValue(key, value string) error {
	if !s.registry.Has(key) {
		return fmt.Errorf("%w: %s", ErrUnknownVariable, key)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		s.env.RemoveOverride(key)
		return nil
	}

	s.env.SetOverride(key, value)
	return nil
}

// CurrentTheme resolves the effective value of every registered variable:
// the live override when present, the default otherwise.
func (s *Store) CurrentTheme() Theme {
	out := make(Theme, s.registry.Len())
	for _, v := range s.registry.vars {
		out[v.Key] = s.effective(v.Key)
	}
	return out
}

func (s *Store) effective(key string) string {
	if v, ok := s.env.Override(key); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return strings.TrimSpace(s.env.Default(key))
}

// ExportTheme serializes the persisted theme, or the current effective theme
// when nothing is persisted.
func (s *Store) ExportTheme(ctx context.Context) string {
	t, ok := s.SavedTheme(ctx)
	if !ok {
		t = s.CurrentTheme()
	}

	// a map of strings always marshals
	data, _ := json.MarshalIndent(t, "", "  ")
	return string(data)
}

// ImportTheme reports whether text was accepted. See Import.
func (s *Store) ImportTheme(ctx context.Context, text string) bool {
	return s.Import(ctx, text) == nil
}

// Import parses text as a serialized theme, persists it and applies it.
// Malformed text changes nothing and yields an error wrapping
// ErrInvalidTheme. The theme is persisted before it is applied so a
// failed write leaves the live values untouched.
func (s *Store) Import(ctx context.Context, text string) error {
	t, err := ParseTheme(text)
	if err != nil {
		s.logger.Debug().Err(err).Msg("theme import rejected")
		return err
	}

	if err := s.SaveTheme(ctx, t); err != nil {
		return err
	}
	s.ApplyTheme(t)

	s.logger.Debug().Int("keys", len(t)).Msg("theme imported")
	return nil
}

// Init applies the persisted theme, if any. Safe to call more than once.
func (s *Store) Init(ctx context.Context) {
	if saved, ok := s.SavedTheme(ctx); ok {
		s.ApplyTheme(saved)
	}
}

// ParseTheme decodes a JSON object of color values. The top level must be
// an object; string values are kept, numbers and booleans are stringified,
// nulls are dropped, and nested arrays or objects are rejected.
func ParseTheme(text string) (Theme, error) {
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrInvalidTheme, jsonKind(raw))
	}

	t := make(Theme, len(obj))
	for k, v := range obj {
		switch val := v.(type) {
		case string:
			t[k] = val
		case float64:
			t[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			t[k] = strconv.FormatBool(val)
		case nil:
		default:
			return nil, fmt.Errorf("%w: value for %q is a %s", ErrInvalidTheme, k, jsonKind(v))
		}
	}

	return t, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
