package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/api"
	migrations "github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/db"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/config"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/db"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/media/local"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/store/jsonfile"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/store/sqlite"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	log.Printf("Starting workshop server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	ms, err := local.New(cfg.MediaDir)
	if err != nil {
		log.Fatalf("Failed to prepare media directory: %v", err)
	}

	handler := api.SetupRoutes(cfg, version, buildTime, st, ms)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := st.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}

	log.Println("Server exited")
}

// openStore builds the persistence backend selected by configuration.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendJSONFile:
		return jsonfile.New(cfg.StoragePath, logger)
	default:
		conn, err := db.New(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, conn, migrations.Migrations); err != nil {
			conn.Close()
			return nil, err
		}
		return sqlite.New(conn, logger), nil
	}
}
