package theme

import (
	"fmt"
	"strings"
)

const (
	GroupCore    = "Core Colors"
	GroupText    = "Text Colors"
	GroupSurface = "Surfaces"
	GroupConsole = "Console Colors"
)

// Variable is a single themeable color role. Key doubles as the storage key
// and as the CSS custom property name used by the web panel.
type Variable struct {
	Key         string
	Label       string
	Description string
	Group       string
}

// Group is a run of registry variables sharing a group tag.
type Group struct {
	Name      string
	Variables []Variable
}

// Registry is the fixed, ordered list of themeable variables.
type Registry struct {
	vars  []Variable
	index map[string]int
}

// NewRegistry validates and freezes the given variables. Keys must be
// non-empty and unique.
func NewRegistry(vars []Variable) (*Registry, error) {
	r := &Registry{
		vars:  make([]Variable, 0, len(vars)),
		index: make(map[string]int, len(vars)),
	}

	for _, v := range vars {
		if strings.TrimSpace(v.Key) == "" {
			return nil, fmt.Errorf("%w: empty key", ErrInvalidVariable)
		}
		if _, exists := r.index[v.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVariable, v.Key)
		}
		r.index[v.Key] = len(r.vars)
		r.vars = append(r.vars, v)
	}

	return r, nil
}

// returns a copy of the variables in registry order
func (r *Registry) Variables() []Variable {
	out := make([]Variable, len(r.vars))
	copy(out, r.vars)
	return out
}

// returns the registered keys in registry order
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.vars))
	for i, v := range r.vars {
		keys[i] = v.Key
	}
	return keys
}

func (r *Registry) Lookup(key string) (Variable, bool) {
	i, ok := r.index[key]
	if !ok {
		return Variable{}, false
	}
	return r.vars[i], true
}

func (r *Registry) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

func (r *Registry) Len() int {
	return len(r.vars)
}

// Groups buckets variables by group. Groups appear in the order their first
// variable appears, variables keep registry order inside a group.
func (r *Registry) Groups() []Group {
	var groups []Group
	pos := make(map[string]int)

	for _, v := range r.vars {
		i, ok := pos[v.Group]
		if !ok {
			i = len(groups)
			pos[v.Group] = i
			groups = append(groups, Group{Name: v.Group})
		}
		groups[i].Variables = append(groups[i].Variables, v)
	}

	return groups
}

var defaultVariables = []Variable{
	// core
	{Key: "--primary", Label: "Primary", Description: "Main accent / brand color", Group: GroupCore},
	{Key: "--bg-dark", Label: "Background", Description: "Page background color", Group: GroupCore},
	{Key: "--bg-panel", Label: "Panel BG", Description: "Panel / card background", Group: GroupCore},
	{Key: "--accent", Label: "Accent", Description: "Secondary accent (links, badges)", Group: GroupCore},
	{Key: "--danger", Label: "Danger", Description: "Errors, destructive actions", Group: GroupCore},
	{Key: "--success", Label: "Success", Description: "Success states", Group: GroupCore},
	{Key: "--warning", Label: "Warning", Description: "Warning states", Group: GroupCore},

	// text
	{Key: "--text-header", Label: "Header Text", Description: "Headings, bright text", Group: GroupText},
	{Key: "--text-bright", Label: "Bright Text", Description: "Primary readable text", Group: GroupText},
	{Key: "--text-dim", Label: "Dim Text", Description: "Subdued text, hints", Group: GroupText},
	{Key: "--text-muted", Label: "Muted Text", Description: "Timestamps, least-important", Group: GroupText},

	// surfaces
	{Key: "--surface-dark", Label: "Surface", Description: "Button / elevated backgrounds", Group: GroupSurface},
	{Key: "--surface-hover", Label: "Surface Hover", Description: "Hover state for surfaces", Group: GroupSurface},
	{Key: "--surface-overlay", Label: "Overlay", Description: "Dropdowns, overlays", Group: GroupSurface},

	// console
	{Key: "--console-info", Label: "Info", Description: "Informational console messages", Group: GroupConsole},
	{Key: "--console-warning", Label: "Warning", Description: "Warning console messages", Group: GroupConsole},
	{Key: "--console-error", Label: "Error", Description: "Error console messages", Group: GroupConsole},
	{Key: "--console-success", Label: "Success", Description: "Success / boot complete messages", Group: GroupConsole},
}

var defaultRegistry = mustRegistry(defaultVariables)

// returns the built-in registry shared by the whole process
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func mustRegistry(vars []Variable) *Registry {
	r, err := NewRegistry(vars)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in registry: %v", err))
	}
	return r
}
