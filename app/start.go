package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Start serves the API on the configured address until ctx is done, then
// shuts the server down gracefully.
func (app *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.Config.HTTP.Addr,
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := app.LogEvents(ctx); err != nil {
		app.Logger.WarnContext(ctx, "Event log disabled", slog.Any("error", err))
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.InfoContext(ctx, "Starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("ListenAndServe: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	return app.WaitForShutdown(srv)
}
