package theme

import (
	"github.com/charmbracelet/lipgloss"

	"ssui-theme/internal/color"
)

// ColorSource resolves a variable key to its effective color value.
type ColorSource interface {
	Value(key string) string
}

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Warning   lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style

	// tui
	TUITitle     lipgloss.Style
	TUISubtitle  lipgloss.Style
	TUIHelp      lipgloss.Style
	Section      lipgloss.Style
	Panel        lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Description  lipgloss.Style
	Selected     lipgloss.Style
	InvalidInput lipgloss.Style

	// console
	ConsoleInfo    lipgloss.Style
	ConsoleWarning lipgloss.Style
	ConsoleError   lipgloss.Style
	ConsoleSuccess lipgloss.Style
}

// creates all styles from the effective colors of src
func NewStyles(src ColorSource) *Styles {
	c := func(key string) lipgloss.Color {
		return lipgloss.Color(color.ToHex(src.Value(key)))
	}

	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(c("--success")).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(c("--danger")).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(c("--accent")),

		Warning: lipgloss.NewStyle().
			Foreground(c("--warning")),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c("--primary")).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(c("--text-dim")).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(c("--bg-dark")).
			Background(c("--primary")).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(c("--surface-hover")),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c("--text-header")).
			Background(c("--surface-dark")).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(c("--text-dim")),

		TUIHelp: lipgloss.NewStyle().
			Foreground(c("--text-muted")),

		Section: lipgloss.NewStyle().
			Foreground(c("--primary")).
			Bold(true),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c("--primary")).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(c("--text-bright")),

		Value: lipgloss.NewStyle().
			Foreground(c("--text-header")),

		Description: lipgloss.NewStyle().
			Foreground(c("--text-muted")).
			Italic(true),

		Selected: lipgloss.NewStyle().
			Foreground(c("--bg-dark")).
			Background(c("--primary")).
			Bold(true),

		InvalidInput: lipgloss.NewStyle().
			Foreground(c("--danger")).
			Underline(true),

		// console
		ConsoleInfo: lipgloss.NewStyle().
			Foreground(c("--console-info")),

		ConsoleWarning: lipgloss.NewStyle().
			Foreground(c("--console-warning")),

		ConsoleError: lipgloss.NewStyle().
			Foreground(c("--console-error")),

		ConsoleSuccess: lipgloss.NewStyle().
			Foreground(c("--console-success")),
	}
}

// Swatch renders a two-cell block filled with the given color value.
func Swatch(value string) string {
	hex := lipgloss.Color(color.ToHex(value))
	return lipgloss.NewStyle().
		Background(hex).
		Foreground(hex).
		Render("██")
}
