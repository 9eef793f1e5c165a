package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	invapp "github.com/candicorner/inventory/internal/application/inventory"
	"github.com/candicorner/inventory/internal/domain/inventory"
	"github.com/candicorner/inventory/internal/infrastructure/config"
	"github.com/candicorner/inventory/internal/infrastructure/logger"
	"github.com/candicorner/inventory/internal/infrastructure/persistence"
	"github.com/candicorner/inventory/internal/interfaces/http/handler"
	"github.com/candicorner/inventory/internal/interfaces/http/middleware"
	"github.com/candicorner/inventory/internal/interfaces/http/router"
)

// version is stamped at build time via -ldflags
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting inventory server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("backend", cfg.Storage.Backend),
	)

	repo, pinger, closeStorage, err := openStorage(cfg, log)
	if err != nil {
		log.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closeStorage()

	// Initialize application services
	inventoryService := invapp.NewInventoryService(repo)
	bulkLoader := invapp.NewBulkLoader(repo)

	// Initialize HTTP handlers
	braceletHandler := handler.NewBraceletHandler(inventoryService, bulkLoader)
	systemHandler := handler.NewSystemHandler(version, pinger)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. CORS - Handle cross-origin requests
	// 5. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))

	// Setup API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(braceletHandler).
		Register(systemHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// openStorage builds the repository for the configured backend and
// returns it with an optional health-check pinger and a close func.
// SQL backends double as the pinger; memory and text file have no
// connection to probe.
func openStorage(cfg *config.Config, log *zap.Logger) (inventory.BraceletRepository, handler.StoragePinger, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		log.Warn("Memory storage selected, data will not survive restarts")
		return persistence.NewMemoryRepository(), nil, noop, nil

	case config.BackendTextFile:
		repo, err := persistence.NewTextFileRepository(cfg.Storage.TextFile.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("Text file storage ready", zap.String("path", cfg.Storage.TextFile.Path))
		return repo, nil, noop, nil

	case config.BackendSQLite, config.BackendPostgres:
		// GORM logger backed by zap
		gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
		db, err := persistence.NewDatabase(&cfg.Storage, gormLog)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		log.Info("Database connected successfully")
		closer := func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}
		return persistence.NewGormBraceletRepository(db.DB), db, closer, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
