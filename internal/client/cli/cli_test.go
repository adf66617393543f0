package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteproof/internal/client/config"
)

func setupApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		ServerURL:      "http://127.0.0.1:0",
		DataDir:        filepath.Join(t.TempDir(), "data"),
		UserID:         1,
		SyncRetryDelay: time.Millisecond,
	}
	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := app.newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func capturePhoto(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "capture.jpg")
	require.NoError(t, os.WriteFile(src, []byte("jpeg"), 0o660))
	return src
}

func TestMarkThenList(t *testing.T) {
	app := setupApp(t)

	out, err := run(t, app, "mark", "LAB001", "Ramesh Patil",
		"--photo", capturePhoto(t), "--lat", "28.6139", "--lon", "77.2090")
	require.NoError(t, err)
	assert.Contains(t, out, "ATT_")
	assert.Contains(t, out, "pending")

	out, err = run(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "LAB001")
	assert.Contains(t, out, "Ramesh Patil")

	out, err = run(t, app, "list", "--labour", "LAB999")
	require.NoError(t, err)
	assert.Contains(t, out, "no records")
}

func TestMark_RejectsMissingPhoto(t *testing.T) {
	app := setupApp(t)

	_, err := run(t, app, "mark", "LAB001", "Ramesh Patil")
	require.Error(t, err)
}

func TestMark_RejectsBadCoordinates(t *testing.T) {
	app := setupApp(t)

	_, err := run(t, app, "mark", "LAB001", "Ramesh Patil",
		"--photo", capturePhoto(t), "--lat", "91", "--lon", "0")
	require.Error(t, err)

	out, err := run(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "total:    0")
}

func TestStatusAndStats(t *testing.T) {
	app := setupApp(t)

	_, err := run(t, app, "mark", "LAB001", "Ramesh Patil",
		"--photo", capturePhoto(t), "--lat", "28.6", "--lon", "77.2")
	require.NoError(t, err)

	records, err := app.mgr.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	out, err := run(t, app, "status", records[0].ID, "approved")
	require.NoError(t, err)
	assert.Contains(t, out, "approved")

	_, err = run(t, app, "status", records[0].ID, "syncing")
	require.Error(t, err, "syncing is reserved for the sync loop")

	out, err = run(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "approved: 1")
	assert.Contains(t, out, "pending:  0")
}

func TestDeleteAndClear(t *testing.T) {
	app := setupApp(t)

	_, err := run(t, app, "mark", "LAB001", "Ramesh Patil",
		"--photo", capturePhoto(t), "--lat", "28.6", "--lon", "77.2")
	require.NoError(t, err)
	_, err = run(t, app, "mark", "LAB002", "Suresh Kumar",
		"--photo", capturePhoto(t), "--lat", "28.6", "--lon", "77.2")
	require.NoError(t, err)

	records, err := app.mgr.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	_, err = run(t, app, "delete", records[0].ID)
	require.NoError(t, err)

	_, err = run(t, app, "clear")
	require.Error(t, err, "clear without --yes must refuse")

	_, err = run(t, app, "clear", "--yes")
	require.NoError(t, err)

	out, err := run(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "total:    0")
}

func TestSync_UnreachableServer(t *testing.T) {
	app := setupApp(t)

	_, err := run(t, app, "sync")
	require.Error(t, err)
}
