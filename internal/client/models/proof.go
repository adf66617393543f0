// Package models defines client-side data models for locally stored
// attendance proofs.
package models

import "time"

// Status is the approval state of a proof record.
//
// A record is always created as "pending". An approval workflow moves it to
// "approved" or "rejected"; an upload collaborator may park it in "syncing"
// while a transfer is in flight. No state is terminal: a later sync may
// revise approved/rejected records.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusSyncing  Status = "syncing"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusSyncing:
		return true
	}
	return false
}

// Location is a GPS fix captured together with the photo. Address is
// best-effort reverse geocoding and may be empty.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// AttendanceProof is the durable unit of evidence for one attendance event.
//
// LocalPhotoPath is the ownership boundary: the record is complete only once
// that path holds the copied photo bytes. PhotoURI is the transient capture
// handle and may stop resolving after an app restart.
type AttendanceProof struct {
	ID             string            `json:"id"`
	LabourID       string            `json:"labourId"`
	LabourName     string            `json:"labourName"`
	PhotoURI       string            `json:"photoUri"`
	LocalPhotoPath string            `json:"localPhotoPath"`
	Location       Location          `json:"location"`
	Timestamp      time.Time         `json:"timestamp"`
	MarkedAt       time.Time         `json:"markedAt"`
	Status         Status            `json:"status"`
	SyncedToServer bool              `json:"syncedToServer"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// StorageStats is a point-in-time summary derived from the index plus a
// single existence probe of the photo directory.
type StorageStats struct {
	TotalRecords    int  `json:"totalRecords"`
	PendingRecords  int  `json:"pendingRecords"`
	ApprovedRecords int  `json:"approvedRecords"`
	RejectedRecords int  `json:"rejectedRecords"`
	UnsyncedRecords int  `json:"unsyncedRecords"`
	StorageExists   bool `json:"storageExists"`
}
