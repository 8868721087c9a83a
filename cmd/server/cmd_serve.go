package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "contactrouter/internal/adapters/http"
	"contactrouter/internal/services/directory"
	"contactrouter/internal/services/routing"
	"contactrouter/internal/workers/preload"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the routing API on the configured listen address.

Reference data is preloaded in the background and loaded on first use
when the preload has not finished.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := setup()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeSource, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	var preloaded <-chan struct{}
	if cfg.PreloadInterval > 0 {
		preloaded = preload.Run(ctx, st, cfg.PreloadInterval)
	}

	api := httpadapter.New(routing.New(st), directory.New(st), st)
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	slog.Info("listening", "addr", cfg.ListenAddr, "source", cfg.ReferenceSource, "version", version)

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	stop()
	if preloaded != nil {
		<-preloaded
	}
	return nil
}
