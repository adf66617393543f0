package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"siteproof/internal/client/models"
)

func (a *App) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <record-id> <pending|approved|rejected>",
		Short: "Set the review status of a record",
		Long: `Set the review status of a local record.
Changing the status marks the record as not synced so the next sync uploads
the new state.

Arguments:
  record-id   id printed by "mark" or "list", e.g. ATT_1705309200000_a1b2c3d4e
  status      one of pending, approved, rejected`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := models.Status(args[1])
			if !status.Valid() || status == models.StatusSyncing {
				return fmt.Errorf("unknown status %q", args[1])
			}

			if err := a.mgr.SetStatus(cmd.Context(), args[0], status, false); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "record %s set to %s\n", args[0], status)
			return nil
		},
	}

	return cmd
}
