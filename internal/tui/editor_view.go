package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"ssui-theme/internal/color"
	"ssui-theme/internal/display"
	"ssui-theme/internal/notify"
	"ssui-theme/internal/theme"
)

// preset swatches shown next to each name in the gallery
var swatchKeys = []string{"--primary", "--bg-dark", "--accent", "--danger", "--success"}

var consoleSamples = []struct {
	key  string
	line string
}{
	{"--console-info", "[INFO] Server started on port 27016"},
	{"--console-warning", "[WARN] Autosave took longer than expected"},
	{"--console-error", "[ERROR] Failed to load world backup"},
	{"--console-success", "[OK] Backup created successfully"},
}

func (e Editor) View() string {
	if e.quitting {
		return ""
	}

	s := e.styles
	var b strings.Builder

	b.WriteString(s.TUITitle.Render("  SSUI Theme Editor  "))
	b.WriteString("\n")
	b.WriteString(s.TUISubtitle.Render(fmt.Sprintf("%d presets • %d variables", len(e.store.PresetNames()), len(e.rows))))
	b.WriteString("\n\n")

	listHeight := max(e.height-18, 8)
	leftWidth := max(e.width/3, 32)
	rightWidth := max(e.width-leftWidth-4, 40)

	left := e.renderPresets(leftWidth, listHeight)
	right := e.renderVariables(rightWidth, listHeight)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	b.WriteString(e.renderPreview())
	b.WriteString("\n")

	switch e.panel {
	case exportPanel:
		b.WriteString(e.renderExportPanel())
		b.WriteString("\n")
	case importPanel:
		b.WriteString(e.renderImportPanel())
		b.WriteString("\n")
	}

	b.WriteString(e.renderNotification())
	b.WriteString("\n")
	b.WriteString(e.renderHelp())

	return b.String()
}

func (e Editor) paneStyle(width int, focused bool) lipgloss.Style {
	border := e.current.Value("--surface-hover")
	if focused {
		border = e.current.Value("--primary")
	}
	return lipgloss.NewStyle().
		Width(width).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color.ToHex(border))).
		Padding(0, 1)
}

func (e Editor) renderPresets(width, height int) string {
	s := e.styles
	lines := []string{s.Section.Render("Presets")}

	if e.mode == filteringMode || e.filterInput.Value() != "" {
		lines = append(lines, e.filterInput.View())
	}

	if len(e.presets) == 0 {
		lines = append(lines, s.Description.Render("no presets match"))
	}

	presets := e.store.Presets()
	var items []string
	for i, name := range e.presets {
		active := e.focus == focusPresets && i == e.presetCursor
		var sw strings.Builder
		for _, k := range swatchKeys {
			sw.WriteString(theme.Swatch(presets[name][k]))
		}

		var label string
		if active {
			label = s.Selected.Render(name)
		} else {
			label = s.Label.Render(name)
		}
		items = append(items, fmt.Sprintf("%s%s %s", display.GetCursor(active), sw.String(), label))
	}

	lines = append(lines, window(items, e.presetCursor, height-len(lines))...)
	return e.paneStyle(width, e.focus == focusPresets).Render(strings.Join(lines, "\n"))
}

func (e Editor) renderVariables(width, height int) string {
	s := e.styles
	var lines []string
	focusLine := 0

	i := 0
	for _, g := range e.groups {
		lines = append(lines, s.Section.Render(g.Name))
		for range g.Variables {
			r := e.rows[i]
			active := e.focus == focusVariables && i == e.variableIndex
			if active {
				focusLine = len(lines)
			}
			lines = append(lines, e.renderRow(r, active))
			if active {
				lines = append(lines, e.renderPicker(r))
				if desc := r.variable.Description; desc != "" {
					desc = truncate.StringWithTail(desc, uint(max(width-8, 10)), "…")
					lines = append(lines, "     "+s.Description.Render(desc))
				}
			}
			i++
		}
	}

	lines = window(lines, focusLine, height)
	return e.paneStyle(width, e.focus == focusVariables).Render(strings.Join(lines, "\n"))
}

func (e Editor) renderRow(r row, active bool) string {
	s := e.styles

	label := fmt.Sprintf("%-16s", r.variable.Label)
	if active {
		label = s.Selected.Render(label)
	} else {
		label = s.Label.Render(label)
	}

	value := s.Value.Render(r.value)
	if active && e.mode == editingMode {
		value = e.hexInput.View()
		if !color.LooksLikeHex(e.hexInput.Value()) {
			value = s.InvalidInput.Render(e.hexInput.Value())
		}
	}

	return fmt.Sprintf("%s%s %s %s", display.GetCursor(active), theme.Swatch(r.value), label, value)
}

// renderPicker shows the HSL readout for the selected row with the active
// channel highlighted.
func (e Editor) renderPicker(r row) string {
	s := e.styles
	h, sat, l := color.HSL(r.value)
	parts := []struct {
		ch  color.Channel
		val string
	}{
		{color.Hue, fmt.Sprintf("%.0f°", h)},
		{color.Saturation, fmt.Sprintf("%.0f%%", sat)},
		{color.Lightness, fmt.Sprintf("%.0f%%", l)},
	}

	var out []string
	for _, p := range parts {
		text := fmt.Sprintf("%s %s", p.ch, p.val)
		if p.ch == e.channel {
			text = s.Selected.Render(text)
		} else {
			text = s.Description.Render(text)
		}
		out = append(out, text)
	}

	return "     " + strings.Join(out, "  ") + "  " + s.Description.Render(r.hex)
}

func (e Editor) renderPreview() string {
	s := e.styles

	var strip strings.Builder
	for _, r := range e.rows {
		if r.variable.Group == theme.GroupConsole {
			continue
		}
		strip.WriteString(theme.Swatch(r.value))
	}

	var console []string
	for _, c := range consoleSamples {
		st := s.ConsoleInfo
		switch c.key {
		case "--console-warning":
			st = s.ConsoleWarning
		case "--console-error":
			st = s.ConsoleError
		case "--console-success":
			st = s.ConsoleSuccess
		}
		console = append(console, st.Render(c.line))
	}

	body := s.Section.Render("Preview") + "\n" + strip.String() + "\n" + strings.Join(console, "\n")
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color.ToHex(e.current.Value("--bg-dark")))).
		Padding(0, 1).
		Render(body)
}

func (e Editor) renderExportPanel() string {
	s := e.styles
	title := s.Section.Render("Export") + "  " + s.TUIHelp.Render("y: copy • e/esc: close")
	return s.Panel.Render(title + "\n" + e.exportView.View())
}

func (e Editor) renderImportPanel() string {
	s := e.styles
	title := s.Section.Render("Import") + "  " + s.TUIHelp.Render("ctrl+s: apply • esc: cancel")
	return s.Panel.Render(title + "\n" + e.importArea.View())
}

func (e Editor) renderNotification() string {
	n, ok := e.notice.Current()
	if !ok {
		return ""
	}

	st := e.styles.Info
	switch n.Severity {
	case notify.Success:
		st = e.styles.Success
	case notify.Error:
		st = e.styles.Error
	}
	return st.Render(fmt.Sprintf("%s %s", display.GetSeverityIcon(n.Severity), n.Text))
}

func (e Editor) renderHelp() string {
	switch e.mode {
	case editingMode:
		return e.styles.TUIHelp.Render("type a hex color • enter: accept • esc: cancel")
	case filteringMode:
		return e.styles.TUIHelp.Render("type to filter • enter: keep • esc: clear")
	case importingMode:
		return e.styles.TUIHelp.Render("paste JSON • ctrl+s: apply • esc: cancel")
	}
	return e.help.View(e.keys)
}

// window returns at most height lines of lines, scrolled so focus is visible
func window(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}

	start := focus - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}
