package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"siteproof/internal/client/models"
)

func (a *App) newListCmd() *cobra.Command {
	var labourID string
	var unsynced bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []models.AttendanceProof
			var err error

			switch {
			case unsynced:
				records, err = a.mgr.GetUnsynced(cmd.Context())
			case labourID != "":
				records, err = a.mgr.GetByLabour(cmd.Context(), labourID)
			default:
				records, err = a.mgr.GetAll(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}

			if len(records) == 0 {
				fmt.Fprintln(out, "no records")
				return nil
			}
			for _, r := range records {
				synced := " "
				if r.SyncedToServer {
					synced = "*"
				}
				fmt.Fprintf(out, "%s  %-8s %s  %-10s %s (%s)\n",
					synced, r.Status, r.Timestamp.Format("2006-01-02 15:04"), r.LabourID, r.LabourName, r.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&labourID, "labour", "", "only records for this labour id")
	cmd.Flags().BoolVar(&unsynced, "unsynced", false, "only records not yet confirmed by the server")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}
