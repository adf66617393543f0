// Package proofs implements the attendance proof manager, the only component
// allowed to create or destroy proof records. It coordinates the photo store
// and the record index so a record never points at a missing photo.
//
// Failure ordering is fixed: the photo is persisted first, the index entry is
// written second. A crash or error between the two leaves an orphaned photo
// file, never an index entry referencing nonexistent bytes. Orphans are a
// bounded inconsistency a later reconciliation sweep can collect.
package proofs

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"siteproof/internal/client/index"
	"siteproof/internal/client/models"
	"siteproof/internal/client/photostore"
	"siteproof/internal/logging"
)

// Manager serializes every index access, readers included, behind a mutex.
// The surrounding app is a single-user client, but a background sync task
// may mutate status while the UI creates a record; the lock closes that
// read-modify-write race.
type Manager struct {
	mu     sync.Mutex
	idx    *index.Index
	photos *photostore.Store
	log    logging.Logger

	// metadata is stamped onto every new record (e.g. app version). The core
	// never interprets it.
	metadata map[string]string
}

func NewManager(idx *index.Index, photos *photostore.Store, log logging.Logger, metadata map[string]string) *Manager {
	return &Manager{idx: idx, photos: photos, log: log, metadata: metadata}
}

// newProofID builds a unique record id from the current time plus a random
// suffix, so rapid successive calls still get distinct ids.
func newProofID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("ATT_%d_%s", time.Now().UnixMilli(), suffix)
}

// Create persists the captured photo, then prepends a new pending record to
// the index. The capture is expected to be validated at the boundary.
//
// If the photo copy fails, no record is created and the error wraps
// common.ErrStorage. If the index write fails after the copy succeeded, the
// photo stays behind as an orphan; losing a captured photo is worse than
// leaking one file.
func (m *Manager) Create(ctx context.Context, labourID, labourName string, capture models.CapturedPhoto) (*models.AttendanceProof, error) {
	id := newProofID()

	localPath, err := m.photos.Persist(ctx, capture.PhotoURI, id)
	if err != nil {
		return nil, err
	}

	record := models.AttendanceProof{
		ID:             id,
		LabourID:       labourID,
		LabourName:     labourName,
		PhotoURI:       capture.PhotoURI,
		LocalPhotoPath: localPath,
		Location:       capture.Location,
		Timestamp:      capture.Timestamp,
		MarkedAt:       time.Now().UTC(),
		Status:         models.StatusPending,
		SyncedToServer: false,
		Metadata:       cloneMetadata(m.metadata),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.idx.LoadAll(ctx)
	if err != nil {
		m.log.Warn(ctx, "index unavailable after photo copy, photo orphaned", "id", id, "path", localPath)
		return nil, err
	}

	records = append([]models.AttendanceProof{record}, records...)
	if err := m.idx.SaveAll(ctx, records); err != nil {
		m.log.Warn(ctx, "index write failed after photo copy, photo orphaned", "id", id, "path", localPath)
		return nil, err
	}

	m.log.Info(ctx, "attendance proof saved", "id", id, "labour_id", labourID)
	return &record, nil
}

// GetAll returns every record, newest first, straight from the index.
func (m *Manager) GetAll(ctx context.Context) ([]models.AttendanceProof, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.idx.LoadAll(ctx)
}

// GetByLabour filters GetAll by labour id, preserving order. A linear scan is
// fine at local record volumes.
func (m *Manager) GetByLabour(ctx context.Context, labourID string) ([]models.AttendanceProof, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.idx.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.AttendanceProof, 0, len(records))
	for _, r := range records {
		if r.LabourID == labourID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// GetUnsynced returns the records not yet confirmed by the remote system, in
// index order. It reads the latest state on every call; the sync collaborator
// polls it repeatedly.
func (m *Manager) GetUnsynced(ctx context.Context) ([]models.AttendanceProof, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.idx.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	unsynced := make([]models.AttendanceProof, 0, len(records))
	for _, r := range records {
		if !r.SyncedToServer {
			unsynced = append(unsynced, r)
		}
	}
	return unsynced, nil
}

// SetStatus replaces the status and syncedToServer fields of the record with
// the given id; every other field is immutable after creation. An absent id
// is a successful no-op: the remote side may acknowledge a record this device
// already purged.
func (m *Manager) SetStatus(ctx context.Context, id string, status models.Status, syncedToServer bool) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q", status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.idx.LoadAll(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range records {
		if records[i].ID == id {
			records[i].Status = status
			records[i].SyncedToServer = syncedToServer
			found = true
			break
		}
	}
	if !found {
		m.log.Debug(ctx, "status update for unknown record, nothing to do", "id", id)
		return nil
	}

	if err := m.idx.SaveAll(ctx, records); err != nil {
		return err
	}
	m.log.Info(ctx, "attendance status updated", "id", id, "status", string(status), "synced", syncedToServer)
	return nil
}

// Delete removes the record and its photo. Failing to delete the photo file
// is logged, not raised: the user must always be able to remove the entry,
// and a leftover file is just another orphan. An absent id is a no-op.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.idx.LoadAll(ctx)
	if err != nil {
		return err
	}

	pos := -1
	for i := range records {
		if records[i].ID == id {
			pos = i
			break
		}
	}
	if pos == -1 {
		return nil
	}

	if err := m.photos.Remove(ctx, records[pos].LocalPhotoPath); err != nil {
		m.log.Warn(ctx, "failed to delete photo file, leaving orphan", "id", id, "path", records[pos].LocalPhotoPath, "error", err)
	}

	records = append(records[:pos], records[pos+1:]...)
	if err := m.idx.SaveAll(ctx, records); err != nil {
		return err
	}
	m.log.Info(ctx, "attendance proof deleted", "id", id)
	return nil
}

// ClearAll purges the photo directory first, then resets the index. If the
// reset fails after the purge, the stale entries point at missing files,
// which later deletes already treat as orphaned; the reverse order could
// leave photos no record owns a claim to.
func (m *Manager) ClearAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.photos.PurgeAll(ctx); err != nil {
		return err
	}
	if err := m.idx.Reset(ctx); err != nil {
		return err
	}
	m.log.Info(ctx, "all attendance proofs cleared")
	return nil
}

// Stats derives a summary from the current index plus one existence probe of
// the photo directory. No mutation; safe at any call frequency.
func (m *Manager) Stats(ctx context.Context) (*models.StorageStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.idx.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.StorageStats{
		TotalRecords:  len(records),
		StorageExists: m.photos.Exists(),
	}
	for _, r := range records {
		switch r.Status {
		case models.StatusPending:
			stats.PendingRecords++
		case models.StatusApproved:
			stats.ApprovedRecords++
		case models.StatusRejected:
			stats.RejectedRecords++
		}
		if !r.SyncedToServer {
			stats.UnsyncedRecords++
		}
	}
	return stats, nil
}

func cloneMetadata(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
