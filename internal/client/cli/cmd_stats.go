package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newStatsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show local storage statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.mgr.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			fmt.Fprintf(out, "total:    %d\n", stats.TotalRecords)
			fmt.Fprintf(out, "pending:  %d\n", stats.PendingRecords)
			fmt.Fprintf(out, "approved: %d\n", stats.ApprovedRecords)
			fmt.Fprintf(out, "rejected: %d\n", stats.RejectedRecords)
			fmt.Fprintf(out, "unsynced: %d\n", stats.UnsyncedRecords)
			fmt.Fprintf(out, "photo storage ready: %t\n", stats.StorageExists)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}
