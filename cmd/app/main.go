package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/MisinfoX_Go/internal/bootstrap"
	"github.com/osse101/MisinfoX_Go/internal/config"
	"github.com/osse101/MisinfoX_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := bootstrap.BuildPipeline(ctx, cfg)

	srv := server.NewServer(server.Config{
		Addr:        cfg.Addr(),
		APIKey:      cfg.APIKey,
		WebhookPath: cfg.WebhookPath,
		Readiness:   pipeline.Readiness,
	}, pipeline.Router, pipeline.Signatures)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := bootstrap.GracefulShutdown(shutdownCtx, srv); err != nil {
		os.Exit(1)
	}
}
