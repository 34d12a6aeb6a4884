package theme

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette(t *testing.T) {
	p := NewPalette(Theme{"--primary": "#111111"})

	assert.Equal(t, "#111111", p.Value("--primary"))

	p.SetOverride("--primary", "#222222")
	assert.Equal(t, "#222222", p.Value("--primary"))
	assert.Equal(t, "#111111", p.Default("--primary"))

	p.SetOverride("--primary", "   ")
	assert.Equal(t, "#111111", p.Value("--primary"), "blank override falls back")

	p.RemoveOverride("--primary")
	_, ok := p.Override("--primary")
	assert.False(t, ok)

	assert.Equal(t, "", p.Value("--unknown"))
}

func TestNewStyles_AcceptsAnyValue(t *testing.T) {
	p := NewPalette(DefaultValues())
	p.SetOverride("--primary", "garbage")

	styles := NewStyles(p)
	assert.NotEmpty(t, styles.Title.Render("ok"))
	assert.NotEmpty(t, Swatch("rgba(1,2,3,0.4)"))
}

func TestWriteCSS(t *testing.T) {
	r, err := NewRegistry([]Variable{{Key: "--b"}, {Key: "--a"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteCSS(&buf, r, Theme{
		"--a":       "#aaa",
		"--b":       "#bbb",
		"--z-extra": "red",
		"--c-extra": "blue; } body { color: red",
		"--empty":   "",
		"plain":     "#fff",
	})
	require.NoError(t, err)

	want := ":root {\n" +
		"  --b: #bbb;\n" +
		"  --a: #aaa;\n" +
		"  --c-extra: blue;\n" +
		"  --z-extra: red;\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
}
