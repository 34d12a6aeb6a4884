package export

import (
	"context"
	"fmt"
	"io"

	"ssui-theme/internal/theme"
)

// JSONExporter writes the same document the editor's export panel shows,
// which ImportTheme accepts back unchanged.
type JSONExporter struct {
	store *theme.Store
}

func NewJSONExporter(store *theme.Store) *JSONExporter {
	return &JSONExporter{store: store}
}

func (e *JSONExporter) Export(ctx context.Context, w io.Writer) error {
	if _, err := fmt.Fprintln(w, e.store.ExportTheme(ctx)); err != nil {
		return fmt.Errorf("failed to write theme JSON: %w", err)
	}
	return nil
}

type CSSExporter struct {
	store *theme.Store
}

func NewCSSExporter(store *theme.Store) *CSSExporter {
	return &CSSExporter{store: store}
}

func (e *CSSExporter) Export(ctx context.Context, w io.Writer) error {
	return e.store.RenderCSS(ctx, w)
}
