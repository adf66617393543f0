package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected, StatusSyncing} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}

func TestAttendanceProof_JSONFieldNames(t *testing.T) {
	ts := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	p := AttendanceProof{
		ID:             "ATT_1_abc",
		LabourID:       "LAB001",
		LabourName:     "Ramesh Patil",
		PhotoURI:       "file:///tmp/capture.jpg",
		LocalPhotoPath: "/data/photos/ATT_1_abc_1.jpg",
		Location:       Location{Latitude: 28.6139, Longitude: 77.2090, Address: "Delhi"},
		Timestamp:      ts,
		MarkedAt:       ts.Add(time.Minute),
		Status:         StatusPending,
		Metadata:       map[string]string{"appVersion": "1.0.0"},
	}

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, key := range []string{
		"id", "labourId", "labourName", "photoUri", "localPhotoPath",
		"location", "timestamp", "markedAt", "status", "syncedToServer", "metadata",
	} {
		assert.Contains(t, m, key)
	}

	loc, ok := m["location"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, loc, "latitude")
	assert.Contains(t, loc, "longitude")
	assert.Contains(t, loc, "address")

	// timestamps serialize as RFC 3339 strings
	assert.Equal(t, "2024-01-15T09:00:00Z", m["timestamp"])
}

func TestLocation_AddressOmittedWhenEmpty(t *testing.T) {
	b, err := json.Marshal(Location{Latitude: 1, Longitude: 2})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "address")
}

func TestCapturedPhoto_Validate(t *testing.T) {
	ok := CapturedPhoto{
		PhotoURI:  "file:///tmp/x.jpg",
		Location:  Location{Latitude: 28.6139, Longitude: 77.2090},
		Timestamp: time.Now(),
	}
	require.NoError(t, ok.Validate())

	missingURI := ok
	missingURI.PhotoURI = ""
	require.Error(t, missingURI.Validate())

	zeroTime := ok
	zeroTime.Timestamp = time.Time{}
	require.Error(t, zeroTime.Validate())

	badLat := ok
	badLat.Location.Latitude = 123.4
	require.Error(t, badLat.Validate())

	badLon := ok
	badLon.Location.Longitude = -181
	require.Error(t, badLon.Validate())
}
