package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"ssui-theme/internal/color"
	"ssui-theme/internal/fuzzy"
	"ssui-theme/internal/notify"
	"ssui-theme/internal/theme"
)

type focusArea int

const (
	focusPresets focusArea = iota
	focusVariables
)

type uiMode int

const (
	normalMode uiMode = iota
	editingMode
	filteringMode
	importingMode
)

type panelKind int

const (
	noPanel panelKind = iota
	exportPanel
	importPanel
)

const (
	pickerStep    = 5.0
	pickerBigStep = 25.0
)

// row is one variable as currently displayed
type row struct {
	variable theme.Variable
	value    string
	hex      string
}

type EditorOptions struct {
	Store     *theme.Store
	Durations notify.Durations
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
	Logger    zerolog.Logger
}

// Editor is the interactive theme editor. It holds no theme state of its
// own: every Render reads the registry, the presets and the current theme
// back from the store.
type Editor struct {
	ctx    context.Context
	store  *theme.Store
	clip   func(string) error
	logger zerolog.Logger

	keys     keyMap
	bindings *bindingSet
	help     help.Model
	notice   notify.Notifier

	// rendered state
	groups  []theme.Group
	rows    []row
	presets []string
	current theme.Theme
	styles  *theme.Styles

	focus         focusArea
	mode          uiMode
	panel         panelKind
	presetCursor  int
	variableIndex int
	channel       color.Channel
	editOriginal  string

	hexInput    textinput.Model
	filterInput textinput.Model
	importArea  textarea.Model
	exportView  viewport.Model
	exportText  string

	width    int
	height   int
	quitting bool
}

func NewEditor(ctx context.Context, opts EditorOptions) Editor {
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	hexInput := textinput.New()
	hexInput.Placeholder = "#rrggbb"
	hexInput.CharLimit = 9
	hexInput.Width = 12

	filterInput := textinput.New()
	filterInput.Placeholder = "filter presets..."
	filterInput.CharLimit = 64
	filterInput.Prompt = "/ "

	importArea := textarea.New()
	importArea.Placeholder = `Paste theme JSON here, e.g. {"--primary": "#00d4ff"}`
	importArea.ShowLineNumbers = false
	importArea.CharLimit = 0
	importArea.SetHeight(8)

	e := Editor{
		ctx:         ctx,
		store:       opts.Store,
		clip:        clip,
		logger:      opts.Logger,
		keys:        defaultKeyMap(),
		bindings:    &bindingSet{},
		help:        help.New(),
		notice:      notify.New(opts.Durations),
		hexInput:    hexInput,
		filterInput: filterInput,
		importArea:  importArea,
		exportView:  viewport.New(60, 10),
		width:       100,
		height:      40,
	}

	e.bindDefaults()
	e.Render()
	return e
}

// Bind registers h for k and returns the func that removes it again.
// Bindings fire in registration order while no input has focus.
func (e *Editor) Bind(k key.Binding, h Handler) (dispose func()) {
	return e.bindings.add(k, h)
}

func (e *Editor) bindDefaults() {
	e.Bind(e.keys.Quit, func(e *Editor) tea.Cmd {
		e.quitting = true
		return tea.Quit
	})
	e.Bind(e.keys.Help, func(e *Editor) tea.Cmd {
		e.help.ShowAll = !e.help.ShowAll
		return nil
	})
	e.Bind(e.keys.SwitchPane, func(e *Editor) tea.Cmd {
		if e.focus == focusPresets {
			e.focus = focusVariables
		} else {
			e.focus = focusPresets
		}
		return nil
	})
	e.Bind(e.keys.Up, func(e *Editor) tea.Cmd { e.moveCursor(-1); return nil })
	e.Bind(e.keys.Down, func(e *Editor) tea.Cmd { e.moveCursor(1); return nil })
	e.Bind(e.keys.Enter, (*Editor).handleEnter)
	e.Bind(e.keys.Back, (*Editor).handleBack)

	e.Bind(e.keys.StepDown, func(e *Editor) tea.Cmd { return e.stepPicker(-pickerStep) })
	e.Bind(e.keys.StepUp, func(e *Editor) tea.Cmd { return e.stepPicker(pickerStep) })
	e.Bind(e.keys.BigStepDown, func(e *Editor) tea.Cmd { return e.stepPicker(-pickerBigStep) })
	e.Bind(e.keys.BigStepUp, func(e *Editor) tea.Cmd { return e.stepPicker(pickerBigStep) })
	e.Bind(e.keys.Channel, func(e *Editor) tea.Cmd {
		e.channel = e.channel.Next()
		return nil
	})

	e.Bind(e.keys.Filter, (*Editor).startFilter)
	e.Bind(e.keys.Save, (*Editor).handleSave)
	e.Bind(e.keys.Reset, (*Editor).handleReset)
	e.Bind(e.keys.Export, (*Editor).toggleExport)
	e.Bind(e.keys.Import, (*Editor).openImport)
	e.Bind(e.keys.Copy, (*Editor).handleCopy)
}

// Render rebuilds everything shown from the store. Safe to call any number
// of times; every mutating action ends with it.
func (e *Editor) Render() {
	e.groups = e.store.Groups()
	e.current = e.store.CurrentTheme()
	e.styles = theme.NewStyles(e.current)

	e.rows = make([]row, 0, len(e.current))
	for _, g := range e.groups {
		for _, v := range g.Variables {
			value := e.current[v.Key]
			e.rows = append(e.rows, row{variable: v, value: value, hex: color.ToHex(value)})
		}
	}

	e.presets = fuzzy.Filter(e.filterInput.Value(), e.store.PresetNames())

	e.presetCursor = clampIndex(e.presetCursor, len(e.presets))
	e.variableIndex = clampIndex(e.variableIndex, len(e.rows))

	if e.panel == exportPanel {
		e.exportText = e.store.ExportTheme(e.ctx)
		e.exportView.SetContent(e.exportText)
	}
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (e Editor) Init() tea.Cmd {
	return nil
}

func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if e.notice.Update(msg) {
		return e, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.resize(msg.Width, msg.Height)
		return e, nil

	case clipboardResultMsg:
		if msg.err != nil {
			e.logger.Warn().Err(msg.err).Msg("clipboard write failed")
			return e, e.notify("Theme copy failed!", notify.Error)
		}
		return e, e.notify("Theme copied to clipboard!", notify.Success)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			e.quitting = true
			return e, tea.Quit
		}

		switch e.mode {
		case editingMode:
			return e.updateEditing(msg)
		case filteringMode:
			return e.updateFiltering(msg)
		case importingMode:
			return e.updateImporting(msg)
		}

		var cmds []tea.Cmd
		for _, h := range e.bindings.match(msg) {
			cmds = append(cmds, h(&e))
		}
		if e.panel == exportPanel {
			var cmd tea.Cmd
			e.exportView, cmd = e.exportView.Update(msg)
			cmds = append(cmds, cmd)
		}
		return e, tea.Batch(cmds...)
	}

	return e, nil
}

func (e *Editor) resize(width, height int) {
	e.width = width
	e.height = height
	e.help.Width = width

	panelWidth := max(width-6, 20)
	e.exportView.Width = panelWidth
	e.exportView.Height = max(height/4, 5)
	e.importArea.SetWidth(panelWidth)
}

func (e *Editor) notify(text string, sev notify.Severity) tea.Cmd {
	return e.notice.Show(text, sev)
}

func (e *Editor) moveCursor(delta int) {
	if e.focus == focusPresets {
		e.presetCursor = clampIndex(e.presetCursor+delta, len(e.presets))
		return
	}
	e.variableIndex = clampIndex(e.variableIndex+delta, len(e.rows))
}

func (e *Editor) selectedRow() (row, bool) {
	if len(e.rows) == 0 {
		return row{}, false
	}
	return e.rows[e.variableIndex], true
}

func (e *Editor) handleEnter() tea.Cmd {
	if e.focus == focusPresets {
		if len(e.presets) == 0 {
			return nil
		}
		return e.applyPreset(e.presets[e.presetCursor])
	}

	r, ok := e.selectedRow()
	if !ok {
		return nil
	}

	e.mode = editingMode
	e.editOriginal = r.value
	e.hexInput.SetValue(r.value)
	e.hexInput.CursorEnd()
	return e.hexInput.Focus()
}

func (e *Editor) handleBack() tea.Cmd {
	switch {
	case e.panel != noPanel:
		e.panel = noPanel
	case e.filterInput.Value() != "":
		e.filterInput.SetValue("")
		e.Render()
	}
	return nil
}

func (e *Editor) applyPreset(name string) tea.Cmd {
	err := e.store.ApplyPreset(e.ctx, name)
	e.Render()
	if err != nil {
		e.logger.Error().Err(err).Str("preset", name).Msg("failed to apply preset")
		return e.notify(fmt.Sprintf("Failed to apply %q: %v", name, err), notify.Error)
	}
	return e.notify(fmt.Sprintf("Theme %q applied and saved!", name), notify.Success)
}

// stepPicker moves the selected variable along the active HSL channel.
// The result is always a valid color, so it is applied without checks.
func (e *Editor) stepPicker(delta float64) tea.Cmd {
	if e.focus != focusVariables {
		return nil
	}
	r, ok := e.selectedRow()
	if !ok {
		return nil
	}

	next := color.Adjust(r.value, e.channel, delta)
	if err := e.store.SetValue(r.variable.Key, next); err != nil {
		return e.notify(err.Error(), notify.Error)
	}
	e.Render()
	return nil
}

func (e Editor) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, _ := e.selectedRow()

	switch {
	case key.Matches(msg, e.keys.Back):
		if err := e.store.SetValue(r.variable.Key, e.editOriginal); err != nil {
			e.logger.Warn().Err(err).Str("key", r.variable.Key).Msg("failed to restore value")
		}
		e.stopEditing()
		e.Render()
		return e, nil

	case key.Matches(msg, e.keys.Enter):
		value := strings.TrimSpace(e.hexInput.Value())
		if !color.LooksLikeHex(value) {
			return e, e.notify(fmt.Sprintf("Invalid color %q: use a hex value like #1a2b3c", value), notify.Error)
		}
		if err := e.store.SetValue(r.variable.Key, value); err != nil {
			return e, e.notify(err.Error(), notify.Error)
		}
		e.stopEditing()
		e.Render()
		return e, nil
	}

	var cmd tea.Cmd
	e.hexInput, cmd = e.hexInput.Update(msg)

	// live preview while the text is a usable color
	if value := strings.TrimSpace(e.hexInput.Value()); color.LooksLikeHex(value) {
		if err := e.store.SetValue(r.variable.Key, value); err == nil {
			e.Render()
		}
	}
	return e, cmd
}

func (e *Editor) stopEditing() {
	e.mode = normalMode
	e.editOriginal = ""
	e.hexInput.Blur()
	e.hexInput.SetValue("")
}

func (e *Editor) startFilter() tea.Cmd {
	e.mode = filteringMode
	e.focus = focusPresets
	return e.filterInput.Focus()
}

func (e Editor) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, e.keys.Back):
		e.filterInput.SetValue("")
		e.filterInput.Blur()
		e.mode = normalMode
		e.Render()
		return e, nil

	case key.Matches(msg, e.keys.Enter):
		e.filterInput.Blur()
		e.mode = normalMode
		return e, nil
	}

	var cmd tea.Cmd
	e.filterInput, cmd = e.filterInput.Update(msg)
	e.presetCursor = 0
	e.Render()
	return e, cmd
}

func (e *Editor) handleSave() tea.Cmd {
	if err := e.store.SaveTheme(e.ctx, e.store.CurrentTheme()); err != nil {
		e.logger.Error().Err(err).Msg("failed to save theme")
		return e.notify(fmt.Sprintf("Failed to save theme: %v", err), notify.Error)
	}
	e.Render()
	return e.notify("Theme saved!", notify.Success)
}

func (e *Editor) handleReset() tea.Cmd {
	err := e.store.ClearTheme(e.ctx)
	e.Render()
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to reset theme")
		return e.notify(fmt.Sprintf("Failed to reset theme: %v", err), notify.Error)
	}
	return e.notify("Theme reset to defaults", notify.Info)
}

func (e *Editor) toggleExport() tea.Cmd {
	if e.panel == exportPanel {
		e.panel = noPanel
		return nil
	}
	e.panel = exportPanel
	e.Render()
	e.exportView.GotoTop()
	return nil
}

func (e *Editor) openImport() tea.Cmd {
	e.panel = importPanel
	e.mode = importingMode
	e.importArea.Reset()
	return e.importArea.Focus()
}

func (e *Editor) closeImport() {
	e.panel = noPanel
	e.mode = normalMode
	e.importArea.Blur()
}

func (e Editor) updateImporting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, e.keys.Back):
		e.closeImport()
		return e, nil

	case key.Matches(msg, e.keys.Apply):
		return e, e.applyImport()
	}

	var cmd tea.Cmd
	e.importArea, cmd = e.importArea.Update(msg)
	return e, cmd
}

func (e *Editor) applyImport() tea.Cmd {
	text := strings.TrimSpace(e.importArea.Value())
	if text == "" {
		return e.notify("Please paste a theme JSON first.", notify.Error)
	}

	if !e.store.ImportTheme(e.ctx, text) {
		return e.notify("Invalid theme JSON. Please check the format.", notify.Error)
	}

	e.closeImport()
	e.Render()
	return e.notify("Theme imported successfully!", notify.Success)
}

func (e *Editor) handleCopy() tea.Cmd {
	text := e.exportText
	if e.panel != exportPanel || text == "" {
		text = e.store.ExportTheme(e.ctx)
	}
	return copyCmd(e.clip, text)
}
