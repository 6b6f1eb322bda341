package main

import (
	"fmt"

	"github.com/Black-And-White-Club/golf-tracker/app"
	kvmigrations "github.com/Black-And-White-Club/golf-tracker/app/kvstore/migrations"
	"github.com/Black-And-White-Club/golf-tracker/config"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"
)

// withMigrator opens the configured Postgres database for the migrate
// subcommands.
func withMigrator(c *cli.Context, fn func(m *migrate.Migrator) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("migrations need a postgres DSN; set DATABASE_URL or postgres.dsn (storage driver is %q)", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver != config.DriverPostgres {
		fmt.Printf("Note: storage driver is %q, migrating postgres anyway\n", cfg.Storage.Driver)
	}

	db := app.OpenDB(cfg.Postgres.DSN)
	defer db.Close()
	return fn(migrate.NewMigrator(db, kvmigrations.Migrations))
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations for the postgres storage driver",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrator) error {
						fmt.Println("Initializing migrations")
						return m.Init(c.Context)
					})
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrator) error {
						if err := m.Lock(c.Context); err != nil {
							return err
						}
						defer m.Unlock(c.Context) //nolint:errcheck

						group, err := m.Migrate(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Println("No new migrations to run")
						} else {
							fmt.Printf("Migrated to %s\n", group)
						}
						return nil
					})
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrator) error {
						if err := m.Lock(c.Context); err != nil {
							return err
						}
						defer m.Unlock(c.Context) //nolint:errcheck

						group, err := m.Rollback(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Println("No groups to roll back")
						} else {
							fmt.Printf("Rolled back %s\n", group)
						}
						return nil
					})
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrator) error {
						ms, err := m.MigrationsWithStatus(c.Context)
						if err != nil {
							return err
						}
						fmt.Printf("Migrations: %s\n", ms)
						fmt.Printf("  Applied: %s\n", ms.Applied())
						fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
						return nil
					})
				},
			},
		},
	}
}
