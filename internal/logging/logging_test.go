package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" INFO ", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
		{"", DefaultLevel},
		{"loud", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Output: &buf})

	logger.Debug().Msg("hidden")
	logger.Info().Str("key", "--primary").Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "--primary", entry["key"])
	assert.Contains(t, entry, "time")
}

func TestNew_NilOutputDiscards(t *testing.T) {
	logger := New(Options{Level: "debug"})
	logger.Info().Msg("nowhere")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ssuitheme.log")

	w, err := OpenFile(path)
	require.NoError(t, err)

	logger := New(Options{Level: "debug", Output: w})
	logger.Warn().Msg("written")
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")

	discard, err := OpenFile("")
	require.NoError(t, err)
	assert.NoError(t, discard.Close())
}
