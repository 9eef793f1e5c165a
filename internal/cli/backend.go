package cli

import (
	"fmt"

	"github.com/candicorner/inventory/internal/domain/inventory"
	"github.com/candicorner/inventory/internal/infrastructure/config"
	"github.com/candicorner/inventory/internal/infrastructure/persistence"
)

// openRepository builds the storage backend the configuration names.
// The returned cleanup func releases any underlying connection and is
// safe to call exactly once.
func openRepository(opts *RootOptions, f *OutputFormatter) (inventory.BraceletRepository, func(), error) {
	cfg, err := config.LoadFrom(opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	f.VerboseLog("using %s storage backend", cfg.Storage.Backend)

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		// One-shot commands see a fresh empty catalog each run; the
		// memory backend only makes sense for the long-lived server.
		f.VerboseLog("memory backend does not persist between invocations")
		return persistence.NewMemoryRepository(), func() {}, nil

	case config.BackendTextFile:
		repo, err := persistence.NewTextFileRepository(cfg.Storage.TextFile.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil

	case config.BackendSQLite, config.BackendPostgres:
		db, err := persistence.NewDatabase(&cfg.Storage, nil)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return persistence.NewGormBraceletRepository(db.DB), func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
