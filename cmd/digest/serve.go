package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/localstore"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/server"
	"github.com/nguyentantai21042004/transcript-digest/internal/watcher"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "YouTube Transcript Digest")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Google Docs method: %s", cfg.Google.Method)
	log.Info(ctx, "Downloads: %s", cfg.Paths.Downloads)

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	store := localstore.New(cfg.Paths.Downloads)
	w := startCatalog(ctx, cfg.Paths.Downloads, store, log)
	if w != nil {
		defer w.Stop()
	}

	proc := buildProcessor(ctx, cfg, store, log)
	srv, err := server.New(cfg, proc, store, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Listen(cfg.Server.Addr)
	}()

	log.Info(ctx, "Ready on %s. Press Ctrl+C to stop", cfg.Server.Addr)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Server shutdown: %v", err)
	}
	cancel()

	log.Info(ctx, "Server stopped")
	return nil
}

// startCatalog indexes the download directory and keeps the index current
// with a file watcher. Without a watcher the store reads the directory on
// every listing.
func startCatalog(ctx context.Context, dir string, store *localstore.Store, log logger.Logger) watcher.Watcher {
	catalog := localstore.NewCatalog()

	handler := func(_ context.Context, ev watcher.Event) error {
		catalog.Apply(ev.Path, ev.Removed)
		return nil
	}
	w, err := watcher.New(dir, handler, log)
	if err != nil {
		log.Warn(ctx, "Download watcher disabled: %v", err)
		return nil
	}
	if err := catalog.Rescan(dir); err != nil {
		log.Warn(ctx, "Download watcher disabled: %v", err)
		w.Stop()
		return nil
	}
	store.UseCatalog(catalog)

	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			log.Error(ctx, "Watcher error: %v", err)
		}
	}()
	return w
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.Paths.Downloads, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", cfg.Paths.Downloads, err)
	}
	return nil
}
