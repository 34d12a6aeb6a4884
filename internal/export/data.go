package export

import (
	"context"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"ssui-theme/internal/theme"
)

// exportedTheme is the document ExportTheme produces, decoded back into a
// map so other encoders can write the same keys.
func exportedTheme(ctx context.Context, store *theme.Store) (theme.Theme, error) {
	t, err := theme.ParseTheme(store.ExportTheme(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to read exported theme: %w", err)
	}
	return t, nil
}

type YAMLExporter struct {
	store *theme.Store
}

func NewYAMLExporter(store *theme.Store) *YAMLExporter {
	return &YAMLExporter{store: store}
}

func (e *YAMLExporter) Export(ctx context.Context, w io.Writer) error {
	t, err := exportedTheme(ctx, e.store)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]string(t)); err != nil {
		return fmt.Errorf("failed to write theme YAML: %w", err)
	}
	return enc.Close()
}

type TOMLExporter struct {
	store *theme.Store
}

func NewTOMLExporter(store *theme.Store) *TOMLExporter {
	return &TOMLExporter{store: store}
}

func (e *TOMLExporter) Export(ctx context.Context, w io.Writer) error {
	t, err := exportedTheme(ctx, e.store)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(w).Encode(map[string]string(t)); err != nil {
		return fmt.Errorf("failed to write theme TOML: %w", err)
	}
	return nil
}
