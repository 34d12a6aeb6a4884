package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ssui-theme/internal/color"
	"ssui-theme/internal/display"
	"ssui-theme/internal/theme"
)

// SetupModel is the first-run preset picker shown when no theme is saved
type SetupModel struct {
	ctx           context.Context
	store         *theme.Store
	presets       []string
	selectedIndex int
	preview       theme.Theme
	width         int
	height        int
	quitting      bool
	confirmed     bool
	err           error
}

func NewSetupModel(ctx context.Context, store *theme.Store) SetupModel {
	presets := store.PresetNames()
	m := SetupModel{
		ctx:     ctx,
		store:   store,
		presets: presets,
		width:   100,
		height:  30,
	}
	m.loadPreview()
	return m
}

func (m *SetupModel) loadPreview() {
	if len(m.presets) == 0 {
		m.preview = m.store.CurrentTheme()
		return
	}
	// presets may be partial, so preview them over the current values
	preview := m.store.CurrentTheme()
	t, _ := m.store.Preset(m.presets[m.selectedIndex])
	for k, v := range t {
		if v != "" {
			preview[k] = v
		}
	}
	m.preview = preview
}

// Confirmed reports whether a preset was applied before the picker closed.
func (m SetupModel) Confirmed() bool {
	return m.confirmed
}

// Err returns the error from applying the chosen preset, if any.
func (m SetupModel) Err() error {
	return m.err
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.selectedIndex > 0 {
				m.selectedIndex--
				m.loadPreview()
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.selectedIndex < len(m.presets)-1 {
				m.selectedIndex++
				m.loadPreview()
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if len(m.presets) == 0 {
				m.quitting = true
				return m, tea.Quit
			}
			m.err = m.store.ApplyPreset(m.ctx, m.presets[m.selectedIndex])
			m.confirmed = m.err == nil
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	if m.quitting {
		if m.confirmed {
			return ""
		}
		if m.err != nil {
			return fmt.Sprintf("Setup failed: %v\n", m.err)
		}
		return "Setup cancelled.\n"
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	styles := theme.NewStyles(m.preview)

	leftWidth := max(m.width/3, 30)
	rightWidth := max(m.width-leftWidth-4, 30)
	border := lipgloss.Color(color.ToHex(m.preview.Value("--primary")))

	pane := func(width int) lipgloss.Style {
		return lipgloss.NewStyle().
			Width(width).
			Height(m.height - 6).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1)
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		pane(leftWidth).Render(m.renderPresetList(styles)),
		pane(rightWidth).Render(m.renderPreview(styles)),
	)

	header := styles.TUITitle.Render("SSUI Theme Setup")
	subtitle := styles.TUISubtitle.Render("Pick a preset to get started. You can fine-tune it later with `ssuitheme theme`.")
	help := styles.TUIHelp.Render("↑/k: up • ↓/j: down • enter: apply • q: skip")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, main, help)
}

func (m SetupModel) renderPresetList(styles *theme.Styles) string {
	var b strings.Builder

	b.WriteString(styles.Section.Render("Presets"))
	b.WriteString("\n\n")

	items := make([]string, len(m.presets))
	for i, name := range m.presets {
		active := i == m.selectedIndex
		line := display.GetCursor(active) + name
		if active {
			line = styles.Selected.Render(line)
		} else {
			line = styles.Label.Render(line)
		}
		items[i] = line
	}

	b.WriteString(strings.Join(window(items, m.selectedIndex, m.height-10), "\n"))
	return b.String()
}

func (m SetupModel) renderPreview(styles *theme.Styles) string {
	var b strings.Builder

	b.WriteString(styles.Section.Render("Preview"))
	b.WriteString("\n\n")

	for _, g := range m.store.Groups() {
		b.WriteString(styles.Subtitle.Render(g.Name))
		b.WriteString("\n")
		for _, v := range g.Variables {
			value := m.preview[v.Key]
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				theme.Swatch(value),
				styles.Label.Render(fmt.Sprintf("%-16s", v.Label)),
				styles.Value.Render(value),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.ConsoleInfo.Render("[INFO] Server started"))
	b.WriteString("\n")
	b.WriteString(styles.ConsoleSuccess.Render("[OK] Backup created"))
	b.WriteString("\n")
	return b.String()
}
