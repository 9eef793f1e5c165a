package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/candicorner/inventory/internal/infrastructure/config"
	"github.com/candicorner/inventory/internal/infrastructure/logger"
	"github.com/candicorner/inventory/internal/infrastructure/persistence"
)

func main() {
	// Parse flags
	var (
		configPath string
		logLevel   string
	)

	flag.StringVar(&configPath, "config", "", "Path to config file (default: search . and ./config)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = printUsage
	flag.Parse()

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	// Load configuration
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	switch cfg.Storage.Backend {
	case config.BackendSQLite, config.BackendPostgres:
	default:
		log.Fatal("Storage backend has no schema to migrate",
			zap.String("backend", cfg.Storage.Backend))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
	db, err := persistence.NewDatabase(&cfg.Storage, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	// Verify connection
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}

	if err := db.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Schema migrated successfully",
		zap.String("backend", cfg.Storage.Backend),
	)
}

func printUsage() {
	fmt.Println(`Inventory Schema Migration Tool

Applies the bracelet schema to the configured SQL storage backend
(sqlite or postgres). The server also migrates at startup; this tool
prepares a database ahead of deployment.

Usage:
  migrate [flags]

Flags:
  -config string        Path to config file (default: search . and ./config)
  -log-level string     Log level: debug, info, warn, error (default: info)

Environment Variables:
  INVENTORY_STORAGE_BACKEND, INVENTORY_STORAGE_SQLITE_PATH,
  INVENTORY_STORAGE_POSTGRES_HOST, INVENTORY_STORAGE_POSTGRES_PORT,
  INVENTORY_STORAGE_POSTGRES_USER, INVENTORY_STORAGE_POSTGRES_PASSWORD,
  INVENTORY_STORAGE_POSTGRES_DBNAME

Examples:
  # Migrate the sqlite database named in config.toml
  migrate

  # Migrate a specific environment's database
  migrate -config deploy/production.toml`)
}
