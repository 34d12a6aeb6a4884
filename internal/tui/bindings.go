package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler runs an editor action. It may mutate the editor and returns the
// command to schedule, if any.
type Handler func(e *Editor) tea.Cmd

type binding struct {
	id      int
	keys    key.Binding
	handler Handler
}

// bindingSet is shared by every copy of an Editor so a dispose func keeps
// working after bubbletea has copied the model.
type bindingSet struct {
	nextID int
	list   []binding
}

func (s *bindingSet) add(k key.Binding, h Handler) func() {
	s.nextID++
	id := s.nextID
	s.list = append(s.list, binding{id: id, keys: k, handler: h})

	return func() {
		s.list = slices.DeleteFunc(s.list, func(b binding) bool {
			return b.id == id
		})
	}
}

// match returns the handlers bound to msg in registration order.
func (s *bindingSet) match(msg tea.KeyMsg) []Handler {
	var out []Handler
	for _, b := range s.list {
		if key.Matches(msg, b.keys) {
			out = append(out, b.handler)
		}
	}
	return out
}

func (s *bindingSet) len() int {
	return len(s.list)
}
