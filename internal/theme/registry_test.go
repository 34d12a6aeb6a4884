package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name    string
		vars    []Variable
		wantErr error
	}{
		{
			name: "valid",
			vars: []Variable{{Key: "a"}, {Key: "b"}},
		},
		{
			name:    "duplicate key",
			vars:    []Variable{{Key: "a"}, {Key: "a"}},
			wantErr: ErrDuplicateVariable,
		},
		{
			name:    "empty key",
			vars:    []Variable{{Key: " "}},
			wantErr: ErrInvalidVariable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.vars)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.vars), r.Len())
		})
	}
}

func TestDefaultRegistry_Order(t *testing.T) {
	r := DefaultRegistry()

	keys := r.Keys()
	require.Len(t, keys, 18)
	assert.Equal(t, "--primary", keys[0])
	assert.Equal(t, "--console-success", keys[len(keys)-1])

	v, ok := r.Lookup("--bg-dark")
	require.True(t, ok)
	assert.Equal(t, "Background", v.Label)
	assert.Equal(t, GroupCore, v.Group)
}

func TestRegistry_VariablesIsACopy(t *testing.T) {
	r := DefaultRegistry()
	vars := r.Variables()
	vars[0].Key = "--mutated"

	assert.True(t, r.Has("--primary"))
	assert.False(t, r.Has("--mutated"))
}

func TestRegistry_Groups(t *testing.T) {
	r, err := NewRegistry([]Variable{
		{Key: "a", Group: "one"},
		{Key: "b", Group: "two"},
		{Key: "c", Group: "one"},
	})
	require.NoError(t, err)

	groups := r.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "one", groups[0].Name)
	assert.Equal(t, []string{"a", "c"}, []string{groups[0].Variables[0].Key, groups[0].Variables[1].Key})
	assert.Equal(t, "two", groups[1].Name)

	names := make([]string, 0)
	for _, g := range DefaultRegistry().Groups() {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{GroupCore, GroupText, GroupSurface, GroupConsole}, names)
}

func TestCatalog(t *testing.T) {
	_, err := NewCatalog([]Preset{{Name: "x"}, {Name: "x"}})
	assert.ErrorIs(t, err, ErrDuplicatePreset)

	c := DefaultCatalog()
	assert.Equal(t, 19, c.Len())
	assert.True(t, c.Exists("Neon Blue"))
	assert.True(t, c.Exists("Blåbär"))

	neon, err := c.Get("Neon Blue")
	require.NoError(t, err)
	assert.Equal(t, "#00D4FF", neon["--primary"])
	assert.Equal(t, "#080818", neon["--bg-dark"])

	neon["--primary"] = "#000000"
	again, _ := c.Get("Neon Blue")
	assert.Equal(t, "#00D4FF", again["--primary"], "Get must hand out copies")

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestBuiltinPresetsCoverRegistry(t *testing.T) {
	r := DefaultRegistry()
	for name, preset := range DefaultCatalog().All() {
		for _, k := range r.Keys() {
			assert.NotEmpty(t, preset[k], "%s is missing %s", name, k)
		}
		for k := range preset {
			assert.True(t, r.Has(k), "%s sets unregistered key %s", name, k)
		}
	}
}
