package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewCdCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "cd <workspace> <project>",
		Short: "Print a project's absolute path",
		Long: `Resolve a project to its absolute path and print it, nothing else.
Meant for shell capture:

  cd "$(wrk cd client myapp)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			path, err := svc.ProjectDir(args[0], args[1])
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "Would print %s\n", path)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the resolved path without emitting it for capture")

	return cmd
}
