package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/wrk/internal/tui/prompt"
	"github.com/mattsolo1/wrk/pkg/config"
	"github.com/mattsolo1/wrk/pkg/history"
	"github.com/mattsolo1/wrk/pkg/service"
)

// newService loads the config (falling back to interactive first-run
// setup when it is missing or unreadable) and wires the collaborators for
// one invocation. help, version, and --config-path never come through
// here, so they never touch the config file.
func newService(cmd *cobra.Command) (*service.Service, error) {
	path, err := config.Path()
	if err != nil {
		return nil, err
	}

	prompter := prompt.New()
	cfg, err := config.Load(path)
	if err != nil {
		logrus.Debugf("load config: %v", err)
		cfg, err = service.FirstRun(prompter, path, cmd.OutOrStdout())
		if err != nil {
			return nil, err
		}
	}

	svc := &service.Service{
		Config:     cfg,
		ConfigPath: path,
		Prompter:   prompter,
		Out:        cmd.OutOrStdout(),
	}

	if dataDir, err := config.DataDir(); err == nil {
		if rec, err := history.Open(dataDir); err == nil {
			svc.History = rec
		} else {
			logrus.Warnf("open history: %v", err)
		}
	}
	return svc, nil
}
