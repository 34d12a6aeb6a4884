package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"ssui-theme/internal/color"
	"ssui-theme/internal/theme"
)

type CSVExporter struct {
	store *theme.Store
}

func NewCSVExporter(store *theme.Store) *CSVExporter {
	return &CSVExporter{store: store}
}

func (e *CSVExporter) Export(_ context.Context, w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"Key", "Label", "Group", "Value", "Hex"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range currentRows(e.store) {
		row := []string{r.Key, r.Label, r.Group, r.Value, color.ToHex(r.Value)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
