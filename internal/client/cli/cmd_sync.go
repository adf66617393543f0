package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Upload unsynced records to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := a.sync.Ping(ctx); err != nil {
				return fmt.Errorf("server unreachable: %w", err)
			}

			n, err := a.sync.SyncPending(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "synced %d record(s)\n", n)
			return err
		},
	}

	return cmd
}
