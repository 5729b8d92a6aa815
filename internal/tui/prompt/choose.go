package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/wrk/pkg/service"
)

type chooseModel struct {
	title   string
	options []service.Option
	cursor  int
	done    bool
	aborted bool
}

func newChooseModel(title string, options []service.Option) chooseModel {
	return chooseModel{title: title, options: options}
}

func (m chooseModel) Init() tea.Cmd {
	return nil
}

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}

		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m chooseModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(m.title))
	s.WriteString("\n\n")

	for i, opt := range m.options {
		line := "  " + opt.Label
		if i == m.cursor {
			line = selectedStyle.Render("> " + opt.Label)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("\n↑/k up • ↓/j down • enter select • q quit"))
	return s.String()
}
