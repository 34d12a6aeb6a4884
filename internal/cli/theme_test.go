package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssui-theme/internal/config"
	"ssui-theme/internal/theme"
)

func setupTestApp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	cfg := config.GetDefaultConfig()
	cfg.DBPath = filepath.Join(tempDir, "test.db")
	cfg.LogFile = ""

	a, err := openApp(cfg, nil)
	require.NoError(t, err)
	current = a

	t.Cleanup(func() {
		if current != nil {
			current.Close()
			current = nil
		}
	})

	return tempDir
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

func TestThemeApply(t *testing.T) {
	setupTestApp(t)
	ctx := context.Background()

	t.Run("known preset is applied and saved", func(t *testing.T) {
		cmd, out := newTestCmd()

		require.NoError(t, runThemeApply(cmd, []string{"Neon", "Blue"}))
		assert.Contains(t, out.String(), `Theme "Neon Blue" applied and saved`)

		want, _ := current.store.Preset("Neon Blue")
		saved, ok := current.store.SavedTheme(ctx)
		require.True(t, ok)
		assert.Equal(t, want, saved)
	})

	t.Run("unknown preset suggests a close match", func(t *testing.T) {
		cmd, _ := newTestCmd()

		err := runThemeApply(cmd, []string{"neon blu"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "did you mean 'Neon Blue'")
	})
}

func TestThemeSet(t *testing.T) {
	ctx := context.Background()

	t.Run("valid hex is applied and saved", func(t *testing.T) {
		setupTestApp(t)
		cmd, _ := newTestCmd()

		require.NoError(t, runThemeSet(cmd, []string{"--primary", "#123456"}))

		saved, ok := current.store.SavedTheme(ctx)
		require.True(t, ok)
		assert.Equal(t, "#123456", saved["--primary"])
		assert.Equal(t, "#123456", current.store.CurrentTheme()["--primary"])
		assert.Len(t, saved, len(current.store.Registry()))
	})

	t.Run("keeps the rest of the saved theme", func(t *testing.T) {
		setupTestApp(t)
		cmd, _ := newTestCmd()
		require.NoError(t, current.store.Import(ctx, `{"--accent": "#abcdef", "--legacy": "#111"}`))

		require.NoError(t, runThemeSet(cmd, []string{"--primary", "#123456"}))

		saved, _ := current.store.SavedTheme(ctx)
		assert.Equal(t, theme.Theme{"--accent": "#abcdef", "--legacy": "#111", "--primary": "#123456"}, saved)
	})

	t.Run("non-hex value is rejected", func(t *testing.T) {
		setupTestApp(t)
		cmd, _ := newTestCmd()

		err := runThemeSet(cmd, []string{"--primary", "red"})
		assert.Error(t, err)
		_, ok := current.store.SavedTheme(ctx)
		assert.False(t, ok)
	})

	t.Run("unknown variable is rejected", func(t *testing.T) {
		setupTestApp(t)
		cmd, _ := newTestCmd()

		err := runThemeSet(cmd, []string{"--nope", "#fff"})
		assert.ErrorIs(t, err, theme.ErrUnknownVariable)
	})
}

func TestThemeSaveAndReset(t *testing.T) {
	setupTestApp(t)
	ctx := context.Background()
	cmd, _ := newTestCmd()

	require.NoError(t, current.store.SetValue("--accent", "#010203"))
	require.NoError(t, runThemeSave(cmd, nil))

	saved, ok := current.store.SavedTheme(ctx)
	require.True(t, ok)
	assert.Equal(t, current.store.CurrentTheme(), saved)

	require.NoError(t, runThemeReset(cmd, nil))
	_, ok = current.store.SavedTheme(ctx)
	assert.False(t, ok)
	assert.Equal(t, theme.DefaultValues(), current.store.CurrentTheme())
}

func TestThemeExportImport(t *testing.T) {
	dir := setupTestApp(t)
	ctx := context.Background()
	require.NoError(t, current.store.ApplyPreset(ctx, "Kiruna"))
	want, _ := current.store.SavedTheme(ctx)

	path := filepath.Join(dir, "kiruna.json")
	exportOutput, exportFormat = path, "json"
	t.Cleanup(func() { exportOutput, exportFormat = "", "json" })

	cmd, _ := newTestCmd()
	require.NoError(t, runThemeExport(cmd, nil))

	require.NoError(t, runThemeReset(cmd, nil))
	require.NoError(t, runThemeImport(cmd, []string{path}))

	got, ok := current.store.SavedTheme(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestThemeImport_Stdin(t *testing.T) {
	setupTestApp(t)
	cmd, out := newTestCmd()
	cmd.SetIn(strings.NewReader(`{"--primary": "#0a0b0c"}`))

	require.NoError(t, runThemeImport(cmd, []string{"-"}))
	assert.Contains(t, out.String(), "imported from stdin")
	assert.Equal(t, "#0a0b0c", current.store.CurrentTheme()["--primary"])
}

func TestThemeImport_InvalidChangesNothing(t *testing.T) {
	dir := setupTestApp(t)
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0644))
	before := current.store.CurrentTheme()

	cmd, _ := newTestCmd()
	err := runThemeImport(cmd, []string{path})
	assert.ErrorIs(t, err, theme.ErrInvalidTheme)

	_, ok := current.store.SavedTheme(context.Background())
	assert.False(t, ok)
	assert.Equal(t, before, current.store.CurrentTheme())
}

func TestThemeCSS(t *testing.T) {
	setupTestApp(t)
	cmd, out := newTestCmd()

	require.NoError(t, runThemeCSS(cmd, nil))

	css := out.String()
	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.Contains(t, css, "  --primary: #00FFAB;\n")
}

func TestThemeListShowVars(t *testing.T) {
	setupTestApp(t)
	require.NoError(t, current.store.ApplyPreset(context.Background(), "Kiruna"))

	cmd, out := newTestCmd()
	require.NoError(t, runThemeList(cmd, nil))
	assert.Contains(t, out.String(), "Kiruna (current)")
	assert.Contains(t, out.String(), "Neon Blue")

	out.Reset()
	require.NoError(t, runThemeShow(cmd, nil))
	assert.Contains(t, out.String(), "Source: saved theme")
	assert.Contains(t, out.String(), "--console-success")

	out.Reset()
	require.NoError(t, runThemeVars(cmd, nil))
	for _, g := range current.store.Groups() {
		assert.Contains(t, out.String(), g.Name)
	}
}

func TestOpenApp_PersistsAcrossRuns(t *testing.T) {
	dir := setupTestApp(t)
	ctx := context.Background()
	require.NoError(t, current.store.ApplyPreset(ctx, "Neon Blue"))
	require.NoError(t, current.Close())
	current = nil

	cfg := config.GetDefaultConfig()
	cfg.DBPath = filepath.Join(dir, "test.db")
	cfg.LogFile = ""

	a, err := openApp(cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	a.store.Init(ctx)
	assert.Equal(t, "#00D4FF", a.store.CurrentTheme()["--primary"])
}
