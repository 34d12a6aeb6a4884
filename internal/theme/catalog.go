package theme

import (
	"fmt"
)

// Preset is a named, curated theme. A preset may leave keys out; a missing
// key means no override for that role.
type Preset struct {
	Name  string
	Theme Theme
}

// Catalog holds the read-only preset collection in declaration order.
type Catalog struct {
	presets []Preset
	index   map[string]int
}

func NewCatalog(presets []Preset) (*Catalog, error) {
	c := &Catalog{
		presets: make([]Preset, 0, len(presets)),
		index:   make(map[string]int, len(presets)),
	}

	for _, p := range presets {
		if _, exists := c.index[p.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePreset, p.Name)
		}
		c.index[p.Name] = len(c.presets)
		c.presets = append(c.presets, Preset{Name: p.Name, Theme: p.Theme.Clone()})
	}

	return c, nil
}

// returns a copy of the named preset
func (c *Catalog) Get(name string) (Theme, error) {
	i, exists := c.index[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return c.presets[i].Theme.Clone(), nil
}

// returns preset names in declaration order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.presets))
	for i, p := range c.presets {
		names[i] = p.Name
	}
	return names
}

func (c *Catalog) Exists(name string) bool {
	_, exists := c.index[name]
	return exists
}

// returns every preset keyed by name
func (c *Catalog) All() map[string]Theme {
	out := make(map[string]Theme, len(c.presets))
	for _, p := range c.presets {
		out[p.Name] = p.Theme.Clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.presets)
}

func mustCatalog(presets []Preset) *Catalog {
	c, err := NewCatalog(presets)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in presets: %v", err))
	}
	return c
}
