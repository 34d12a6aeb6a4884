package theme

import "strings"

// Environment is the live override surface the store drives. Each key has
// at most one override; reading a key without one falls back to its
// compiled-in default.
type Environment interface {
	SetOverride(key, value string)
	RemoveOverride(key string)
	Override(key string) (string, bool)
	Default(key string) string
}

// Palette is the in-process Environment backing the terminal UI. Styles are
// derived from its effective values, so overrides show up on the next render.
type Palette struct {
	defaults  Theme
	overrides Theme
}

func NewPalette(defaults Theme) *Palette {
	return &Palette{
		defaults:  defaults.Clone(),
		overrides: make(Theme),
	}
}

func (p *Palette) SetOverride(key, value string) {
	p.overrides[key] = value
}

func (p *Palette) RemoveOverride(key string) {
	delete(p.overrides, key)
}

func (p *Palette) Override(key string) (string, bool) {
	v, ok := p.overrides[key]
	return v, ok
}

func (p *Palette) Default(key string) string {
	return p.defaults[key]
}

// Value returns the override for key when set and non-blank, else the default.
func (p *Palette) Value(key string) string {
	if v, ok := p.overrides[key]; ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return p.defaults[key]
}

// returns a copy of the current overrides
func (p *Palette) Overrides() Theme {
	return p.overrides.Clone()
}
