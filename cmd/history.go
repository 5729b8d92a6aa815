package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/wrk/pkg/config"
	"github.com/mattsolo1/wrk/pkg/history"
	"github.com/mattsolo1/wrk/pkg/pathutil"
	"github.com/mattsolo1/wrk/pkg/timefmt"
)

func NewHistoryCmd() *cobra.Command {
	var (
		limit       int
		historyJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently opened projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := config.DataDir()
			if err != nil {
				return err
			}
			rec, err := history.Open(dataDir)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer rec.Close()

			entries, err := rec.Recent(limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if historyJSON {
				return outputJSON(out, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No history yet.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROJECT\tWORKSPACE\tOPENED\tPATH")
			now := time.Now()
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Project, e.Workspace, timefmt.Relative(e.OpenedAt, now), pathutil.Contract(e.Path))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")
	cmd.Flags().BoolVar(&historyJSON, "json", false, "Output in JSON format")

	return cmd
}
