package index

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteproof/internal/client/kv"
	"siteproof/internal/client/models"
	"siteproof/internal/common"

	_ "modernc.org/sqlite"
)

func setupIndex(t *testing.T) (*Index, kv.Repository) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE app_state (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	state := kv.NewSQLiteRepository(db)
	return New(state), state
}

func sampleRecords() []models.AttendanceProof {
	ts := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	return []models.AttendanceProof{
		{
			ID:             "ATT_2_b",
			LabourID:       "LAB002",
			LabourName:     "Suresh Yadav",
			PhotoURI:       "file:///cache/b.jpg",
			LocalPhotoPath: "/data/photos/ATT_2_b_2.jpg",
			Location:       models.Location{Latitude: 18.5204, Longitude: 73.8567, Address: "Pune"},
			Timestamp:      ts.Add(time.Hour),
			MarkedAt:       ts.Add(time.Hour + time.Minute),
			Status:         models.StatusApproved,
			SyncedToServer: true,
		},
		{
			ID:             "ATT_1_a",
			LabourID:       "LAB001",
			LabourName:     "Ramesh Patil",
			PhotoURI:       "file:///cache/a.jpg",
			LocalPhotoPath: "/data/photos/ATT_1_a_1.jpg",
			Location:       models.Location{Latitude: 28.6139, Longitude: 77.2090},
			Timestamp:      ts,
			MarkedAt:       ts.Add(time.Minute),
			Status:         models.StatusPending,
			Metadata:       map[string]string{"appVersion": "1.0.0"},
		},
	}
}

func TestLoadAll_EmptyStoreReturnsEmptySlice(t *testing.T) {
	idx, _ := setupIndex(t)

	records, err := idx.LoadAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestSaveAllLoadAll_RoundTripPreservesOrderAndFields(t *testing.T) {
	idx, _ := setupIndex(t)
	ctx := context.Background()

	want := sampleRecords()
	require.NoError(t, idx.SaveAll(ctx, want))

	got, err := idx.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// saving what was loaded is a no-op on content
	require.NoError(t, idx.SaveAll(ctx, got))
	again, err := idx.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, want, again)
}

func TestSaveAll_NilBecomesEmptyList(t *testing.T) {
	idx, _ := setupIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.SaveAll(ctx, nil))

	records, err := idx.LoadAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestLoadAll_CorruptBlobSurfacesError(t *testing.T) {
	idx, state := setupIndex(t)
	ctx := context.Background()

	require.NoError(t, state.Set(ctx, StorageKey, []byte(`{"not":"a list"`)))

	records, err := idx.LoadAll(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrIndexCorrupt), "corrupt blob must map to ErrIndexCorrupt, got: %v", err)
	assert.Nil(t, records)
}

func TestReset_ClearsBlob(t *testing.T) {
	idx, _ := setupIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.SaveAll(ctx, sampleRecords()))
	require.NoError(t, idx.Reset(ctx))

	records, err := idx.LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, records)

	// resetting an already-empty index is fine
	require.NoError(t, idx.Reset(ctx))
}
