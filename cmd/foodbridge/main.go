package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodbridge/internal/config"
	"foodbridge/internal/database"
	"foodbridge/internal/directory"
	"foodbridge/internal/handlers"
	"foodbridge/internal/logger"
	"foodbridge/internal/metrics"
	"foodbridge/internal/version"
)

func main() {
	// Command line flags
	port := flag.String("port", "", "Port to bind to (overrides PORT env var)")
	ip := flag.String("ip", "", "IP address to bind to (overrides IP env var)")
	source := flag.String("directory-source", "", "NGO directory source: builtin, file, url or database (overrides DIRECTORY_SOURCE env var)")
	path := flag.String("directory-path", "", "Directory file for the file source (overrides DIRECTORY_PATH env var)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Set environment variables from flags
	if *port != "" {
		os.Setenv("PORT", *port)
	}
	if *ip != "" {
		os.Setenv("IP", *ip)
	}
	if *source != "" {
		os.Setenv("DIRECTORY_SOURCE", *source)
	}
	if *path != "" {
		os.Setenv("DIRECTORY_PATH", *path)
	}
	if *debug {
		os.Setenv("DEBUG", "true")
	}

	cfg := config.Load()

	// Initialize logger
	logger.Configure(os.Stdout, cfg.Debug, cfg.LogJSON)

	logger.Info("Starting FoodBridge", "version", version.GetVersion(), "directory_source", cfg.DirectorySource)

	// The database is only needed when the directory lives there
	var db *sql.DB
	if cfg.UsesDatabase() {
		var err error
		db, err = database.InitDB(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.MigrateWithPath(db, cfg.DatabaseType, cfg.MigrationsPath); err != nil {
			logger.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	// Reference data is loaded once and never reloaded
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.DirectoryFetchTimeout*4)
	dir, err := directory.Load(loadCtx, cfg, db)
	cancelLoad()
	if err != nil {
		logger.Error("Failed to load NGO directory", "error", err)
		os.Exit(1)
	}
	if len(dir.NGOs) == 0 {
		logger.Warn("NGO directory is empty, every donation will be unmatched")
	}

	var mt *metrics.Metrics
	if cfg.EnableMetrics {
		mt = metrics.New()
	}

	router := handlers.NewRouter(cfg, dir, mt)

	// Create server
	addr := cfg.BindIP + ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Logger().Handler(), slog.LevelError),
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server gracefully stopped")
}
