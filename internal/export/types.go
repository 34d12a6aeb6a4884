package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"ssui-theme/internal/theme"
)

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatCSS      ExportFormat = "css"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
	FormatYAML     ExportFormat = "yaml"
	FormatTOML     ExportFormat = "toml"
)

// Formats lists every supported export format
func Formats() []ExportFormat {
	return []ExportFormat{FormatJSON, FormatCSS, FormatCSV, FormatMarkdown, FormatYAML, FormatTOML}
}

func ParseFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSS, FormatCSV, FormatMarkdown, FormatYAML, FormatTOML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s (use json, css, csv, markdown, yaml or toml)", s)
	}
}

// Exporter writes the theme held by a store in one format.
type Exporter interface {
	Export(ctx context.Context, w io.Writer) error
}

func NewExporter(format ExportFormat, store *theme.Store) (Exporter, error) {
	switch format {
	case FormatJSON:
		return NewJSONExporter(store), nil
	case FormatCSS:
		return NewCSSExporter(store), nil
	case FormatCSV:
		return NewCSVExporter(store), nil
	case FormatMarkdown:
		return NewMarkdownExporter(store), nil
	case FormatYAML:
		return NewYAMLExporter(store), nil
	case FormatTOML:
		return NewTOMLExporter(store), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// VariableRow is one registry variable with its effective value, as written
// by the tabular formats.
type VariableRow struct {
	Key         string
	Label       string
	Group       string
	Description string
	Value       string
}

func currentRows(store *theme.Store) []VariableRow {
	current := store.CurrentTheme()
	vars := store.Registry()

	rows := make([]VariableRow, 0, len(vars))
	for _, v := range vars {
		rows = append(rows, VariableRow{
			Key:         v.Key,
			Label:       v.Label,
			Group:       v.Group,
			Description: v.Description,
			Value:       current[v.Key],
		})
	}
	return rows
}
