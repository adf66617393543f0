package syncer

import (
	"fmt"
	"time"

	"siteproof/internal/client/models"
)

// wireAttendance is the remote REST contract for one attendance record
// (POST /api/attendance and its response body).
type wireAttendance struct {
	ID       int       `json:"id,omitempty"`
	UserID   int       `json:"userId"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Location string    `json:"location"`
	PhotoURL string    `json:"photoUrl"`
	IsSynced bool      `json:"isSynced"`
}

// toWire translates a local proof into the server's record shape. The server
// stores location as free text, so the address wins when present and the raw
// coordinates are sent otherwise.
func toWire(rec models.AttendanceProof, userID int, status models.Status) wireAttendance {
	loc := rec.Location.Address
	if loc == "" {
		loc = fmt.Sprintf("%.6f,%.6f", rec.Location.Latitude, rec.Location.Longitude)
	}
	return wireAttendance{
		UserID:   userID,
		Date:     rec.Timestamp,
		Status:   string(status),
		Location: loc,
		PhotoURL: rec.LocalPhotoPath,
		IsSynced: true,
	}
}
