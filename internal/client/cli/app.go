// Package cli provides the Cobra-based command tree for the siteproof CLI.
package cli

import (
	"context"
	"fmt"

	"siteproof/internal/client/config"
	"siteproof/internal/client/index"
	"siteproof/internal/client/photostore"
	"siteproof/internal/client/proofs"
	"siteproof/internal/client/store"
	"siteproof/internal/client/syncer"
	"siteproof/internal/filex"
	"siteproof/internal/logging"
)

// App wires the local stores, the proof manager and the syncer together and
// owns their lifecycle.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	repos  *store.Repositories
	photos *photostore.Store
	mgr    *proofs.Manager
	sync   *syncer.Syncer
}

// NewApp opens the local database, runs migrations and builds the service
// graph. Call Close when done.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault()

	if err := filex.EnsureDir(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("preparing data dir: %w", err)
	}

	repos, err := store.InitDatabase(ctx, cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("initializing local store: %w", err)
	}

	photos := photostore.New(cfg.PhotoDir(), log)
	photos.EnsureStorageReady(ctx)

	idx := index.New(repos.State)
	mgr := proofs.NewManager(idx, photos, log, map[string]string{"source": "cli"})

	api := syncer.NewClient(cfg.ServerURL)
	sync := syncer.New(mgr, api, log, cfg.UserID).WithRetryDelay(cfg.SyncRetryDelay)

	return &App{
		cfg:    cfg,
		log:    log,
		repos:  repos,
		photos: photos,
		mgr:    mgr,
		sync:   sync,
	}, nil
}

// Close releases the underlying database handle.
func (a *App) Close() error {
	return a.repos.DB.Close()
}

// Run executes the command tree against os.Args.
func (a *App) Run(ctx context.Context) error {
	return a.newRootCmd().ExecuteContext(ctx)
}
