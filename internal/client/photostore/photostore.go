// Package photostore owns the durable copy of attendance photos. It copies a
// transient camera capture into an application-managed directory so the bytes
// outlive the capture handle.
package photostore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"siteproof/internal/common"
	"siteproof/internal/filex"
	"siteproof/internal/logging"
)

type Store struct {
	dir string
	log logging.Logger
}

func New(dir string, log logging.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// Dir returns the photo directory path.
func (s *Store) Dir() string {
	return s.dir
}

// EnsureStorageReady idempotently creates the photo directory. It never fails
// the caller: on error the storage is assumed degraded, the problem is
// logged, and the next Persist surfaces the real failure.
func (s *Store) EnsureStorageReady(ctx context.Context) {
	if err := filex.EnsureDir(s.dir); err != nil {
		s.log.Error(ctx, "failed to initialize photo storage", "dir", s.dir, "error", err)
	}
}

// Persist copies the bytes behind photoURI into the photo directory under
// <ownerID>_<epoch-millis>.jpg and returns the new durable path. On failure
// the error wraps common.ErrStorage and no file is left behind; the caller
// must not create an index entry in that case.
func (s *Store) Persist(ctx context.Context, photoURI, ownerID string) (string, error) {
	s.EnsureStorageReady(ctx)

	fileName := fmt.Sprintf("%s_%d.jpg", ownerID, time.Now().UnixMilli())
	localPath := filepath.Join(s.dir, fileName)

	if err := filex.CopyFile(sourcePath(photoURI), localPath); err != nil {
		// drop a possibly partial destination file
		_ = os.Remove(localPath)
		return "", fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	s.log.Debug(ctx, "photo persisted", "path", localPath, "owner", ownerID)
	return localPath, nil
}

// Remove deletes the file at localPath. A missing file is not an error.
func (s *Store) Remove(ctx context.Context, localPath string) error {
	err := os.Remove(localPath)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("%w: %v", common.ErrStorage, err)
}

// PurgeAll deletes the entire photo directory. Used only by the bulk-clear
// operation.
func (s *Store) PurgeAll(ctx context.Context) error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}

// Exists reports whether the photo directory currently exists.
func (s *Store) Exists() bool {
	return filex.DirExists(s.dir)
}

// sourcePath maps a capture URI to a filesystem path. The capture
// collaborator hands over either a plain path or a file:// URI.
func sourcePath(photoURI string) string {
	return strings.TrimPrefix(photoURI, "file://")
}
