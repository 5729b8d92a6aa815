// Package prompt implements the interactive collaborator on top of
// bubbletea: a selection menu, a validated text input, and a y/n confirm.
// All rendering goes to stderr so stdout stays clean for shell capture.
package prompt

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/mattsolo1/wrk/pkg/service"
)

// Prompt implements service.Prompter.
type Prompt struct{}

func New() *Prompt {
	return &Prompt{}
}

func ensureTerminal() error {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return fmt.Errorf("interactive prompt requires a terminal (hint: pass names explicitly, e.g. wrk <workspace> -p <project>)")
}

func run(m tea.Model) (tea.Model, error) {
	if err := ensureTerminal(); err != nil {
		return nil, err
	}
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	return p.Run()
}

// Choose shows a cursor menu and returns the selected option's value.
func (*Prompt) Choose(message string, options []service.Option) (string, error) {
	final, err := run(newChooseModel(message, options))
	if err != nil {
		return "", err
	}
	m := final.(chooseModel)
	if m.aborted {
		return "", service.ErrAborted
	}
	return m.options[m.cursor].Value, nil
}

// Text asks for a line of input, re-prompting until validate accepts it.
func (*Prompt) Text(message, defaultValue string, validate func(string) error) (string, error) {
	final, err := run(newTextModel(message, defaultValue, validate))
	if err != nil {
		return "", err
	}
	m := final.(textModel)
	if m.aborted {
		return "", service.ErrAborted
	}
	return m.value(), nil
}

// Confirm asks a yes/no question; enter picks the default.
func (*Prompt) Confirm(message string, defaultYes bool) (bool, error) {
	final, err := run(newConfirmModel(message, defaultYes))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, nil
	}
	return m.answer, nil
}
