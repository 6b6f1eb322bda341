//go:build integration

package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/nats"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/Black-And-White-Club/golf-tracker/app"
	kvmigrations "github.com/Black-And-White-Club/golf-tracker/app/kvstore/migrations"
	"github.com/Black-And-White-Club/golf-tracker/config"
	"github.com/Black-And-White-Club/golf-tracker/integration_tests/containers"
)

// TestEnvironment holds the containers shared by an integration package.
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	NatsContainer *nats.NATSContainer
	DSN           string
	NatsURL       string
	DB            *bun.DB
}

// NewTestEnvironment starts Postgres and NATS and migrates the schema.
func NewTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(ctx)
	env := &TestEnvironment{Ctx: ctx, CancelContext: cancel}

	pg, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}
	env.PgContainer, env.DSN = pg, dsn

	nc, natsURL, err := containers.SetupNatsContainer(ctx)
	if err != nil {
		env.Cleanup()
		return nil, fmt.Errorf("failed to setup nats container: %w", err)
	}
	env.NatsContainer, env.NatsURL = nc, natsURL

	env.DB = app.OpenDB(dsn)
	if err := env.Migrate(ctx); err != nil {
		env.Cleanup()
		return nil, err
	}
	return env, nil
}

// Migrate applies every pending migration.
func (env *TestEnvironment) Migrate(ctx context.Context) error {
	migrator := migrate.NewMigrator(env.DB, kvmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// ResetDB empties the documents table between tests.
func (env *TestEnvironment) ResetDB(t *testing.T) {
	t.Helper()
	if _, err := env.DB.NewTruncateTable().Table("golf").Exec(env.Ctx); err != nil {
		t.Fatalf("failed to truncate golf table: %v", err)
	}
}

// Config returns an application config pointed at the containers.
func (env *TestEnvironment) Config() *config.Config {
	return &config.Config{
		Storage:  config.StorageConfig{Driver: config.DriverPostgres},
		Postgres: config.PostgresConfig{DSN: env.DSN},
		NATS:     config.NATSConfig{URL: env.NatsURL},
		HTTP:     config.HTTPConfig{Addr: ":0"},
		Observability: config.ObservabilityConfig{
			LogLevel:    "warn",
			LogFormat:   "text",
			Environment: "test",
		},
	}
}

// Cleanup terminates the containers and closes the database handle.
func (env *TestEnvironment) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if env.DB != nil {
		_ = env.DB.Close()
	}
	if env.NatsContainer != nil {
		_ = env.NatsContainer.Terminate(ctx)
	}
	if env.PgContainer != nil {
		_ = env.PgContainer.Terminate(ctx)
	}
	env.CancelContext()
}
