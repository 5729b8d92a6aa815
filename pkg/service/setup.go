package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattsolo1/wrk/pkg/config"
	"github.com/mattsolo1/wrk/pkg/pathutil"
)

// FirstRun interactively collects the initial config and writes it to
// path. It runs whenever the config file is missing or unreadable.
func FirstRun(p Prompter, path string, out io.Writer) (*config.Config, error) {
	fmt.Fprintf(out, "No config found at %s, setting one up.\n", pathutil.Contract(path))

	root, err := p.Text("Workspace root directory", "~/workspace", validateNonEmpty)
	if err != nil {
		return nil, err
	}
	ide, err := p.Text("Editor command", config.DefaultIDE, validateNonEmpty)
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{
		Workspace: strings.TrimSpace(root),
		IDE:       strings.TrimSpace(ide),
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Wrote %s\n", pathutil.Contract(path))
	return cfg, nil
}

func validateNonEmpty(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("value must not be empty")
	}
	return nil
}
