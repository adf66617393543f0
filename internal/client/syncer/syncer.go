// Package syncer uploads unsynced attendance proofs to the remote server and
// writes acknowledgements back into the local store. It is the upload
// collaborator the proof manager's GetUnsynced/SetStatus contract exists for.
package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"siteproof/internal/client/models"
	"siteproof/internal/client/proofs"
	"siteproof/internal/logging"
)

type Syncer struct {
	mgr    *proofs.Manager
	api    *Client
	log    logging.Logger
	userID int

	maxRetries uint64
	baseDelay  time.Duration
}

func New(mgr *proofs.Manager, api *Client, log logging.Logger, userID int) *Syncer {
	return &Syncer{
		mgr:        mgr,
		api:        api,
		log:        log,
		userID:     userID,
		maxRetries: 3,
		baseDelay:  500 * time.Millisecond,
	}
}

// WithRetryDelay overrides the base delay of the upload retry backoff and
// returns s for chaining.
func (s *Syncer) WithRetryDelay(d time.Duration) *Syncer {
	if d > 0 {
		s.baseDelay = d
	}
	return s
}

// Ping reports whether the server is reachable and healthy.
func (s *Syncer) Ping(ctx context.Context) error {
	return s.api.Ping(ctx)
}

// SyncPending uploads every record GetUnsynced reports, one at a time, oldest
// state first wins nothing here so index order is kept. Each record is parked
// in "syncing" for the duration of its upload attempt. On success the record
// takes the server's status and syncedToServer=true; on failure it reverts to
// "pending" so a later run picks it up again.
//
// Returns the number of records confirmed by the server. A non-nil error
// means at least one upload failed; already-confirmed records stay confirmed.
func (s *Syncer) SyncPending(ctx context.Context) (int, error) {
	records, err := s.mgr.GetUnsynced(ctx)
	if err != nil {
		return 0, err
	}

	synced := 0
	failed := 0

	for _, rec := range records {
		prev := rec.Status
		if prev == models.StatusSyncing {
			// left over from an interrupted run
			prev = models.StatusPending
		}

		if err := s.mgr.SetStatus(ctx, rec.ID, models.StatusSyncing, false); err != nil {
			return synced, err
		}

		stored, err := s.upload(ctx, rec, prev)
		if err != nil {
			s.log.Warn(ctx, "upload failed, reverting to pending", "id", rec.ID, "error", err)
			if revertErr := s.mgr.SetStatus(ctx, rec.ID, models.StatusPending, false); revertErr != nil {
				return synced, revertErr
			}
			failed++
			continue
		}

		status := models.Status(stored.Status)
		if !status.Valid() || status == models.StatusSyncing {
			status = prev
		}
		if err := s.mgr.SetStatus(ctx, rec.ID, status, true); err != nil {
			return synced, err
		}
		synced++
	}

	if failed > 0 {
		return synced, fmt.Errorf("%d of %d uploads failed", failed, len(records))
	}
	return synced, nil
}

func (s *Syncer) upload(ctx context.Context, rec models.AttendanceProof, status models.Status) (*wireAttendance, error) {
	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.baseDelay))

	var stored *wireAttendance
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		stored, err = s.api.MarkAttendance(ctx, toWire(rec, s.userID, status))
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	return stored, err
}
