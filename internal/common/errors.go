// Package common defines sentinel errors shared across the client layers of
// siteproof. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrStorage marks photo blob failures: an unreadable source, an
	// unwritable photo directory, or a failed copy. A proof record must never
	// be indexed when its photo persist reported this error.
	ErrStorage = errors.New("photo storage error")

	// ErrIndexCorrupt marks an attendance index blob that exists but cannot
	// be deserialized. It is surfaced, never silently treated as empty, so
	// that local data loss is visible to the caller.
	ErrIndexCorrupt = errors.New("attendance index corrupt")
)
