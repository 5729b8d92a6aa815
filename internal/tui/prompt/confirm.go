package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	prompt     string
	defaultYes bool
	answer     bool
	done       bool
	aborted    bool
}

func newConfirmModel(prompt string, defaultYes bool) confirmModel {
	return confirmModel{prompt: prompt, defaultYes: defaultYes}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.answer = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.answer = false
			m.done = true
			return m, tea.Quit
		case "enter":
			m.answer = m.defaultYes
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	hint := "y/N"
	if m.defaultYes {
		hint = "Y/n"
	}
	return fmt.Sprintf("%s %s ", titleStyle.Render(m.prompt), helpStyle.Render("("+hint+")"))
}
