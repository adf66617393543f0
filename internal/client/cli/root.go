package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "siteproof",
		Short: "Offline-first attendance proof store for construction sites",
		Long: `siteproof - offline-first attendance proof store

Captured attendance photos are copied into local storage and indexed in a
local database, so marking attendance works with no connectivity. The sync
command uploads pending records to the server when a connection is available.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// These mirror the flags the config package already consumed before
	// dispatch; registering them keeps cobra from rejecting the args.
	rootCmd.PersistentFlags().StringP("server-url", "a", a.cfg.ServerURL, "base URL of the sync server")
	rootCmd.PersistentFlags().StringP("data-dir", "d", a.cfg.DataDir, "local data directory")
	rootCmd.PersistentFlags().IntP("user-id", "u", a.cfg.UserID, "user id for synced records")
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to a JSON config file")

	rootCmd.AddCommand(
		a.newMarkCmd(),
		a.newListCmd(),
		a.newStatsCmd(),
		a.newStatusCmd(),
		a.newDeleteCmd(),
		a.newClearCmd(),
		a.newSyncCmd(),
	)

	return rootCmd
}
