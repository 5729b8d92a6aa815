// Package cmd assembles the wrk command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/wrk/pkg/config"
	"github.com/mattsolo1/wrk/pkg/service"
	"github.com/mattsolo1/wrk/pkg/version"
)

// NewRootCmd builds the root command. The first positional that is not a
// reserved verb names a workspace to open; with no arguments the last
// opened project is reopened. The named subcommands shadow the shortcut,
// so a workspace cannot be literally called list, create, cd, or config.
func NewRootCmd() *cobra.Command {
	var (
		showConfigPath bool
		projectName    string
		ideOverride    string
		dryRun         bool
	)

	cmd := &cobra.Command{
		Use:   "wrk [workspace]",
		Short: "Open project directories in your editor",
		Long: `wrk opens project directories in a configured editor, organized under
named workspaces (directories suffixed -work under one root).

Examples:
  wrk                      # Reopen the last project
  wrk client               # Pick a project in workspace "client"
  wrk client -p myapp      # Open client/myapp directly
  wrk client -i code       # Open with a different editor
  wrk list                 # All workspaces with project counts
  wrk list client --json   # Projects of one workspace, as JSON
  wrk create client myapp  # Create a project and open it
  cd "$(wrk cd client myapp)"`,
		Version:       version.Get().String(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showConfigPath {
				path, err := config.Path()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			opts := service.OpenOptions{DryRun: dryRun, IDE: ideOverride, Project: projectName}
			if len(args) == 0 {
				return svc.OpenLast(opts)
			}
			return svc.OpenWorkspace(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&showConfigPath, "config-path", false, "Print the config file path and exit")
	cmd.Flags().StringVarP(&projectName, "project", "p", "", "Open this project directly instead of prompting")
	cmd.Flags().StringVarP(&ideOverride, "ide", "i", "", "Editor command to use for this invocation")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report intended actions without performing them")

	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewCreateCmd())
	cmd.AddCommand(NewCdCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
