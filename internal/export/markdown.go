package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"ssui-theme/internal/theme"
)

type MarkdownExporter struct {
	store *theme.Store
}

func NewMarkdownExporter(store *theme.Store) *MarkdownExporter {
	return &MarkdownExporter{store: store}
}

func (e *MarkdownExporter) Export(_ context.Context, w io.Writer) error {
	current := e.store.CurrentTheme()

	var b strings.Builder
	b.WriteString("# SSUI Theme\n\n")

	for _, g := range e.store.Groups() {
		fmt.Fprintf(&b, "## %s\n\n", g.Name)
		b.WriteString("| Variable | Label | Value | Description |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, v := range g.Variables {
			fmt.Fprintf(&b, "| `%s` | %s | `%s` | %s |\n",
				v.Key, escapeCell(v.Label), current[v.Key], escapeCell(v.Description))
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
