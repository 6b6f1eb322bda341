// Package app wires configuration, storage, the event feed and the services
// into a runnable HTTP application.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/golf-tracker/app/eventbus"
	"github.com/Black-And-White-Club/golf-tracker/app/kvstore"
	leaderboardservice "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/application"
	playerservice "github.com/Black-And-White-Club/golf-tracker/app/modules/player/application"
	roundservice "github.com/Black-And-White-Club/golf-tracker/app/modules/round/application"
	"github.com/Black-And-White-Club/golf-tracker/app/observability"
	"github.com/Black-And-White-Club/golf-tracker/app/state"
	"github.com/Black-And-White-Club/golf-tracker/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// App holds the wired application.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	Logger        *slog.Logger

	KV       kvstore.Store
	EventBus *eventbus.EventBus
	Store    *state.Store

	PlayerService      *playerservice.PlayerService
	RoundService       *roundservice.RoundService
	LeaderboardService *leaderboardservice.LeaderboardService
}

// OpenDB opens a bun handle on a Postgres DSN.
func OpenDB(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// OpenKV opens the key/value store selected by the storage driver.
func OpenKV(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return kvstore.NewMemory(), nil
	case config.DriverBolt:
		return kvstore.NewBolt(cfg.Storage.BoltPath)
	case config.DriverPostgres:
		db := OpenDB(cfg.Postgres.DSN)
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to reach postgres: %w", err)
		}
		return kvstore.NewPostgres(db), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// NewApp initializes the application from cfg and loads the stored state.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	obs := observability.New(observability.Config{
		LogLevel:       cfg.Observability.LogLevel,
		LogFormat:      cfg.Observability.LogFormat,
		MetricsEnabled: cfg.Observability.MetricsEnabled,
		Environment:    cfg.Observability.Environment,
	})
	logger := obs.Logger

	kv, err := OpenKV(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	logger.InfoContext(ctx, "Storage opened", slog.String("driver", cfg.Storage.Driver))

	var bus *eventbus.EventBus
	if cfg.NATS.URL != "" {
		bus, err = eventbus.NewNATS(cfg.NATS.URL, logger)
		if err != nil {
			_ = kv.Close()
			return nil, fmt.Errorf("failed to create event bus: %w", err)
		}
		logger.InfoContext(ctx, "Publishing events to NATS", slog.String("url", cfg.NATS.URL))
	} else {
		bus = eventbus.NewInProcess(logger)
	}

	store := state.NewStore(kv, bus, logger)
	if err := store.Load(ctx); err != nil {
		_ = bus.Close()
		_ = kv.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	snap := store.Snapshot()
	logger.InfoContext(ctx, "State loaded",
		slog.Int("players", snap.Players.Len()),
		slog.Int("rounds", snap.Rounds.Len()),
	)

	return &App{
		Config:             cfg,
		Observability:      obs,
		Logger:             logger,
		KV:                 kv,
		EventBus:           bus,
		Store:              store,
		PlayerService:      playerservice.NewPlayerService(store, obs),
		RoundService:       roundservice.NewRoundService(store, obs),
		LeaderboardService: leaderboardservice.NewLeaderboardService(store, obs),
	}, nil
}

// Close releases the event bus and the storage.
func (app *App) Close() error {
	return errors.Join(app.EventBus.Close(), app.KV.Close())
}
