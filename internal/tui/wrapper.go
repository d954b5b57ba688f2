package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// StandaloneWrapper quits the program when the wrapped model sends BackMsg.
type StandaloneWrapper struct {
	model tea.Model
}

func Wrap(m tea.Model) StandaloneWrapper {
	return StandaloneWrapper{model: m}
}

func (m StandaloneWrapper) Init() tea.Cmd {
	return m.model.Init()
}

func (m StandaloneWrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(BackMsg); ok {
		return m, tea.Quit
	}

	newModel, cmd := m.model.Update(msg)
	m.model = newModel
	return m, cmd
}

func (m StandaloneWrapper) View() string {
	return m.model.View()
}
