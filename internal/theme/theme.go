package theme

import (
	"maps"
	"sort"
)

// Theme maps a variable key to a color value. Presets, the persisted user
// theme and the effective live values all share this shape.
type Theme map[string]string

// returns an independent copy, nil stays nil
func (t Theme) Clone() Theme {
	if t == nil {
		return nil
	}
	return maps.Clone(t)
}

// reports key-for-key equality
func (t Theme) Equal(other Theme) bool {
	return maps.Equal(t, other)
}

// returns the keys in lexical order
func (t Theme) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Value returns the color stored under key, so a resolved theme can feed
// NewStyles directly.
func (t Theme) Value(key string) string {
	return t[key]
}
