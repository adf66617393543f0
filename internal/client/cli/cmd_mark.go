package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"siteproof/internal/client/models"
)

func (a *App) newMarkCmd() *cobra.Command {
	var photoURI string
	var lat, lon float64
	var address string

	cmd := &cobra.Command{
		Use:   "mark <labour-id> <labour-name>",
		Short: "Mark attendance with a captured photo",
		Long: `Mark attendance for a labourer.
The photo is copied into local storage and the record is saved locally with
status "pending"; run "siteproof sync" to upload it.

Arguments:
  labour-id     worker identifier, e.g. LAB001
  labour-name   worker display name`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			capture := models.CapturedPhoto{
				PhotoURI: photoURI,
				Location: models.Location{
					Latitude:  lat,
					Longitude: lon,
					Address:   address,
				},
				Timestamp: time.Now(),
			}
			if err := capture.Validate(); err != nil {
				return err
			}

			rec, err := a.mgr.Create(cmd.Context(), args[0], args[1], capture)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "marked %s for %s (%s), photo at %s\n",
				rec.ID, rec.LabourName, rec.Status, rec.LocalPhotoPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&photoURI, "photo", "", "path or file:// URI of the captured photo")
	cmd.Flags().Float64Var(&lat, "lat", 0, "capture latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "capture longitude")
	cmd.Flags().StringVar(&address, "address", "", "human-readable capture location")
	_ = cmd.MarkFlagRequired("photo")

	return cmd
}
