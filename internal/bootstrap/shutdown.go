package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a component that drains in-flight work on shutdown.
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the HTTP server, letting in-flight webhook requests
// finish their pipeline within ctx's deadline.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, srv Stopper) error {
	slog.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
		return err
	}

	slog.Info(LogMsgServerStopped)
	return nil
}
