package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/wrk/pkg/timefmt"
	"github.com/mattsolo1/wrk/pkg/workspace"
)

func NewListCmd() *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:     "list [workspace]",
		Short:   "List workspaces or the projects of one workspace",
		Aliases: []string{"ls"},
		Long: `List all workspaces with their project counts, or the projects of a
single workspace sorted by most recent modification.

Examples:
  wrk list                 # client (3 projects)
  wrk list client          # myapp (yesterday)
  wrk list client --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				counts, err := workspace.Counts(svc.Config.Workspace)
				if err != nil {
					return err
				}
				if listJSON {
					return outputJSON(out, counts)
				}
				if len(counts) == 0 {
					fmt.Fprintln(out, "No workspaces found. Create one with: wrk <name>")
					return nil
				}
				for _, c := range counts {
					fmt.Fprintf(out, "%s (%d projects)\n", c.Name, c.Projects)
				}
				return nil
			}

			name := args[0]
			dir, err := workspace.Dir(svc.Config.Workspace, name)
			if err != nil {
				return err
			}
			projects, err := workspace.Projects(dir)
			if err != nil {
				return err
			}

			if listJSON {
				return outputJSON(out, struct {
					Workspace string              `json:"workspace"`
					Projects  []workspace.Project `json:"projects"`
				}{Workspace: name, Projects: projects})
			}

			if len(projects) == 0 {
				fmt.Fprintf(out, "No projects in %q\n", name)
				return nil
			}
			now := time.Now()
			for _, p := range projects {
				fmt.Fprintf(out, "%s (%s)\n", p.Name, timefmt.Relative(p.LastAccessed, now))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")

	return cmd
}

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
