package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/zip-finder/cliparse"
	"github.com/danielhkuo/zip-finder/db"
	"github.com/danielhkuo/zip-finder/logging"
	"github.com/danielhkuo/zip-finder/metrics"
	"github.com/danielhkuo/zip-finder/router"
	"github.com/danielhkuo/zip-finder/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		slog.Error("logger setup failed", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the reference store once; every request shares it
	zips, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("reference store unavailable", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("Reference store ready", "type", cfg.DatabaseType, "table", cfg.Table)

	// Create router
	mux := router.NewRouter(zips, cfg, metrics.New(metrics.NewRegistry()))

	// Create server
	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "api_base", cfg.APIBaseURL)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore builds the configured ZipStore and returns a func that releases it.
func openStore(ctx context.Context, cfg cliparse.Config) (store.ZipStore, func(), error) {
	if cfg.DatabaseType == cliparse.DatabasePostgREST {
		return store.NewPostgRESTStore(cfg.DatabaseURL, cfg.DatabaseKey, cfg.Table, cfg.UITimeout), func() {}, nil
	}

	driver := db.DriverSQLite
	if cfg.DatabaseType == cliparse.DatabasePostgres {
		driver = db.DriverPostgres
	}

	conn, err := db.Open(ctx, driver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	closeConn := func() { closeDB(conn) }

	if cfg.InitSchema {
		if err := db.CreateSchema(conn, cfg.Table); err != nil {
			closeConn()
			return nil, nil, err
		}
		slog.Info("Database schema ready", "table", cfg.Table)
	}

	zips, err := store.NewSQLStore(conn, driver, cfg.Table)
	if err != nil {
		closeConn()
		return nil, nil, err
	}

	return zips, closeConn, nil
}

func closeDB(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		slog.Error("database close failed", "error", err)
	}
}
