// Package app opens a workspace and wires the engine the CLI and the server
// share.
package app

import (
	"database/sql"
	"fmt"

	"docanalysis/internal/config"
	"docanalysis/internal/db"
	"docanalysis/internal/engine"
	"docanalysis/internal/migrate"
	"docanalysis/internal/objectstore"
)

// Workspace is an opened workspace directory.
type Workspace struct {
	Dir    string
	DB     *sql.DB
	Config *config.Config
	Engine engine.Engine
}

// Open loads docanalysis.yml from dir, falling back to the defaults when the
// file is missing, then opens and migrates the database and builds the
// configured object store.
func Open(dir string) (*Workspace, error) {
	cfg, err := config.LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return OpenWithConfig(dir, cfg)
}

// OpenWithConfig is Open with an already loaded config.
func OpenWithConfig(dir string, cfg *config.Config) (*Workspace, error) {
	if _, err := db.EnsureWorkspace(dir); err != nil {
		return nil, err
	}
	conn, err := db.Open(db.Config{Workspace: dir})
	if err != nil {
		return nil, err
	}
	if err := migrate.Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate %s: %w", db.Path(dir), err)
	}
	store, err := objectstore.New(cfg.ObjectStore, db.ObjectRoot(dir, cfg.ObjectStore.Root))
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &Workspace{
		Dir:    dir,
		DB:     conn,
		Config: cfg,
		Engine: engine.New(conn, cfg, store),
	}, nil
}

func (w *Workspace) Close() error {
	return w.DB.Close()
}
