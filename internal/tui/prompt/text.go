package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type textModel struct {
	title    string
	input    textinput.Model
	validate func(string) error
	errMsg   string
	done     bool
	aborted  bool
}

func newTextModel(title, defaultValue string, validate func(string) error) textModel {
	input := textinput.New()
	input.SetValue(defaultValue)
	input.CursorEnd()
	input.Focus()
	return textModel{title: title, input: input, validate: validate}
}

func (m textModel) value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			if m.validate != nil {
				if err := m.validate(m.input.Value()); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(m.title))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	if m.errMsg != "" {
		s.WriteString(errorStyle.Render(m.errMsg))
		s.WriteString("\n")
	}
	return s.String()
}
