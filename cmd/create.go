package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mattsolo1/wrk/pkg/service"
)

func NewCreateCmd() *cobra.Command {
	var (
		ideOverride string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "create <workspace> [project]",
		Short: "Create a project directory and open it",
		Long: `Create a new project under a workspace and open it in the editor.
Without a project name an interactive prompt asks for one.

Examples:
  wrk create client myapp
  wrk create client                 # prompts for the name
  wrk create client myapp --dry-run`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			projName := ""
			if len(args) > 1 {
				projName = args[1]
			}
			return svc.CreateProject(args[0], projName, service.OpenOptions{DryRun: dryRun, IDE: ideOverride})
		},
	}

	cmd.Flags().StringVarP(&ideOverride, "ide", "i", "", "Editor command to use for this invocation")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be created without doing it")

	return cmd
}
