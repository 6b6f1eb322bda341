package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Document is one row of the golf table.
type Document struct {
	bun.BaseModel `bun:"table:golf,alias:g"`

	Key       string    `bun:"key,pk"`
	Value     []byte    `bun:"value,type:jsonb,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Postgres stores documents in the golf table. The schema is created by the
// migrations in kvstore/migrations.
type Postgres struct {
	db *bun.DB
}

func NewPostgres(db *bun.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	doc := new(Document)
	err := p.db.NewSelect().
		Model(doc).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", key, err)
	}
	return doc.Value, nil
}

func (p *Postgres) PutMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]Document, 0, len(entries))
	for k, v := range entries {
		docs = append(docs, Document{Key: k, Value: v, UpdatedAt: now})
	}
	return p.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(&docs).
			On("CONFLICT (key) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert documents: %w", err)
		}
		return nil
	})
}

// Close closes the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
