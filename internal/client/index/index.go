// Package index persists the ordered list of attendance proofs as one JSON
// blob under a single key-value entry.
//
// A single blob keeps every read and write trivially atomic at the store
// level, at the cost of touching the full list each time. Local record
// counts are small (tens to low hundreds, bounded by the surrounding app's
// retention), so this trade is deliberate; per-record keys would only buy
// finer-grained I/O we do not need.
package index

import (
	"context"
	"encoding/json"
	"fmt"

	"siteproof/internal/client/kv"
	"siteproof/internal/client/models"
	"siteproof/internal/common"
)

// StorageKey is the single key-value entry holding the serialized proof list.
const StorageKey = "attendance_records"

type Index struct {
	state kv.Repository
}

func New(state kv.Repository) *Index {
	return &Index{state: state}
}

// LoadAll deserializes the stored proof list, newest first. An absent blob
// yields an empty slice, never an error. A blob that exists but cannot be
// parsed yields an error wrapping common.ErrIndexCorrupt: silently treating
// it as empty would hide data loss from a user who believes their attendance
// was already recorded.
func (i *Index) LoadAll(ctx context.Context) ([]models.AttendanceProof, error) {
	data, err := i.state.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance index: %w", err)
	}
	if len(data) == 0 {
		return []models.AttendanceProof{}, nil
	}

	var records []models.AttendanceProof
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrIndexCorrupt, err)
	}
	return records, nil
}

// SaveAll serializes records and overwrites the stored blob. The underlying
// set is a single upsert, so readers never observe a partial write.
func (i *Index) SaveAll(ctx context.Context, records []models.AttendanceProof) error {
	if records == nil {
		records = []models.AttendanceProof{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize attendance index: %w", err)
	}
	if err := i.state.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to save attendance index: %w", err)
	}
	return nil
}

// Reset removes the stored blob entirely.
func (i *Index) Reset(ctx context.Context) error {
	if err := i.state.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to reset attendance index: %w", err)
	}
	return nil
}
