package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/golf-tracker/app/eventbus"
)

const shutdownTimeout = 10 * time.Second

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// WaitForShutdown stops the server, waiting at most shutdownTimeout for
// in-flight requests.
func (app *App) WaitForShutdown(srv shutdowner) error {
	app.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// LogEvents subscribes to the change feed and logs every event at debug
// level until ctx is done.
func (app *App) LogEvents(ctx context.Context) error {
	for _, topic := range eventbus.Topics {
		messages, err := app.EventBus.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go func(topic string) {
			for msg := range messages {
				app.Logger.DebugContext(ctx, "Event",
					slog.String("topic", topic),
					slog.String("message_id", msg.UUID),
					slog.String("payload", string(msg.Payload)),
				)
				msg.Ack()
			}
		}(topic)
	}
	return nil
}
