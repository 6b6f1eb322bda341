package kvmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating golf documents table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS golf (
				key TEXT PRIMARY KEY,
				value JSONB NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create golf table: %w", err)
		}

		fmt.Println("Golf documents table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping golf documents table...")

		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS golf;`)
		if err != nil {
			return fmt.Errorf("failed to drop golf table: %w", err)
		}

		fmt.Println("Golf documents table dropped successfully!")
		return nil
	})
}
