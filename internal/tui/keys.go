package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	Back       key.Binding
	SwitchPane key.Binding

	StepDown    key.Binding
	StepUp      key.Binding
	BigStepDown key.Binding
	BigStepUp   key.Binding
	Channel     key.Binding

	Filter key.Binding
	Save   key.Binding
	Reset  key.Binding
	Export key.Binding
	Import key.Binding
	Copy   key.Binding
	Apply  key.Binding

	Quit key.Binding
	Help key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply preset / edit value"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close / cancel"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "presets ⇄ colors"),
		),

		StepDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease channel"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase channel"),
		),
		BigStepDown: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "decrease ×5"),
		),
		BigStepUp: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "increase ×5"),
		),
		Channel: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle H/S/L"),
		),

		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter presets"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save theme"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset to defaults"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy export"),
		),
		Apply: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "apply import"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.Enter, k.Save, k.Export, k.Import, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SwitchPane, k.Enter, k.Back},
		{k.StepDown, k.StepUp, k.BigStepDown, k.BigStepUp, k.Channel},
		{k.Filter, k.Save, k.Reset, k.Export, k.Import, k.Copy, k.Apply},
		{k.Help, k.Quit},
	}
}
