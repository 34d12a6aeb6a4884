package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardResultMsg reports the outcome of a copy to the system clipboard
type clipboardResultMsg struct {
	err error
}

// copyCmd writes text to the clipboard off the update loop
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardResultMsg{err: write(text)}
	}
}
