package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ssui-theme/internal/theme"
)

type memStorage struct {
	data map[string]string
}

func (m *memStorage) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStorage) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func setupStore(t *testing.T) *theme.Store {
	t.Helper()

	store, err := theme.NewStore(theme.StoreOptions{
		Storage:     &memStorage{data: make(map[string]string)},
		Environment: theme.NewPalette(theme.DefaultValues()),
		Logger:      zerolog.Nop(),
	})
	require.NoError(t, err)
	return store
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"", FormatJSON, false},
		{"CSS", FormatCSS, false},
		{"csv", FormatCSV, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"yml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewExporter_AllFormats(t *testing.T) {
	store := setupStore(t)

	for _, f := range Formats() {
		exp, err := NewExporter(f, store)
		require.NoError(t, err, f)

		var buf bytes.Buffer
		require.NoError(t, exp.Export(context.Background(), &buf), f)
		assert.NotEmpty(t, buf.String(), f)
	}

	_, err := NewExporter("xml", store)
	assert.Error(t, err)
}

func TestJSONExport_ImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := setupStore(t)
	require.NoError(t, src.ApplyPreset(ctx, "Neon Blue"))

	var buf bytes.Buffer
	require.NoError(t, NewJSONExporter(src).Export(ctx, &buf))

	dst := setupStore(t)
	require.NoError(t, NewImporter(dst).ImportTheme(ctx, &buf))

	want, _ := src.SavedTheme(ctx)
	got, ok := dst.SavedTheme(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, src.CurrentTheme(), dst.CurrentTheme())
}

func TestImporter_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	before := store.CurrentTheme()

	for _, payload := range []string{`"just a string"`, `[1,2,3]`, `{`, ``} {
		err := NewImporter(store).ImportTheme(ctx, strings.NewReader(payload))
		assert.ErrorIs(t, err, theme.ErrInvalidTheme, payload)
	}

	_, ok := store.SavedTheme(ctx)
	assert.False(t, ok)
	assert.Equal(t, before, store.CurrentTheme())
}

func TestCSVExport(t *testing.T) {
	store := setupStore(t)

	var buf bytes.Buffer
	require.NoError(t, NewCSVExporter(store).Export(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(store.Registry())+1)

	assert.Equal(t, []string{"Key", "Label", "Group", "Value", "Hex"}, records[0])
	assert.Equal(t, "--primary", records[1][0])
	assert.Equal(t, "#00FFAB", records[1][3])
	assert.Equal(t, "#00ffab", records[1][4])
}

func TestMarkdownExport(t *testing.T) {
	store := setupStore(t)

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownExporter(store).Export(context.Background(), &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# SSUI Theme\n"))
	for _, g := range store.Groups() {
		assert.Contains(t, out, "## "+g.Name)
	}
	assert.Contains(t, out, "| `--primary` |")
}

func TestDataExports_DecodeToExportedTheme(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	require.NoError(t, store.Import(ctx, `{"--primary": "#123456", "--legacy": "#abc"}`))

	want, err := theme.ParseTheme(store.ExportTheme(ctx))
	require.NoError(t, err)

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewYAMLExporter(store).Export(ctx, &buf))

		var got map[string]string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, map[string]string(want), got)
	})

	t.Run("toml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTOMLExporter(store).Export(ctx, &buf))

		var got map[string]string
		require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, map[string]string(want), got)
		assert.Contains(t, buf.String(), "#123456")
	})
}
