package export

import (
	"context"
	"fmt"
	"io"

	"ssui-theme/internal/theme"
)

// maxImportSize bounds how much is read from an import source
const maxImportSize = 1 << 20

type Importer struct {
	store *theme.Store
}

func NewImporter(store *theme.Store) *Importer {
	return &Importer{store: store}
}

// ImportTheme reads a theme JSON document from r, persists it and applies
// it. Nothing changes when the document is rejected.
func (i *Importer) ImportTheme(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(io.LimitReader(r, maxImportSize+1))
	if err != nil {
		return fmt.Errorf("failed to read theme: %w", err)
	}
	if len(data) > maxImportSize {
		return fmt.Errorf("%w: document larger than %d bytes", theme.ErrInvalidTheme, maxImportSize)
	}

	if err := i.store.Import(ctx, string(data)); err != nil {
		return fmt.Errorf("failed to import theme: %w", err)
	}
	return nil
}
