// Package notify implements the transient, auto-dismissing message shown
// after editor actions.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Severity int

const (
	Info Severity = iota
	Success
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Durations sets how long each severity stays visible.
type Durations struct {
	Info    time.Duration
	Success time.Duration
	Error   time.Duration
}

func DefaultDurations() Durations {
	return Durations{
		Info:    3 * time.Second,
		Success: 3 * time.Second,
		Error:   5 * time.Second,
	}
}

func (d Durations) For(s Severity) time.Duration {
	switch s {
	case Success:
		return d.Success
	case Error:
		return d.Error
	default:
		return d.Info
	}
}

type Notification struct {
	Text     string
	Severity Severity
}

// ExpiredMsg is delivered when a notification's timer fires.
type ExpiredMsg struct {
	seq uint64
}

// Notifier holds at most one visible notification. Every Show starts a new
// timer; a timer belonging to an older notification never hides a newer one.
type Notifier struct {
	durations Durations
	current   *Notification
	seq       uint64
}

func New(d Durations) Notifier {
	return Notifier{durations: d}
}

// Show replaces the visible notification and returns the command that
// expires it.
func (n *Notifier) Show(text string, sev Severity) tea.Cmd {
	n.seq++
	n.current = &Notification{Text: text, Severity: sev}

	seq := n.seq
	return tea.Tick(n.durations.For(sev), func(time.Time) tea.Msg {
		return ExpiredMsg{seq: seq}
	})
}

// Update consumes expiry messages and reports whether msg was one.
func (n *Notifier) Update(msg tea.Msg) bool {
	expired, ok := msg.(ExpiredMsg)
	if !ok {
		return false
	}
	if expired.seq == n.seq {
		n.current = nil
	}
	return true
}

func (n *Notifier) Dismiss() {
	n.current = nil
}

func (n Notifier) Current() (Notification, bool) {
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}
