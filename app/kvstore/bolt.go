package kvstore

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Bolt stores documents in a single bbolt bucket on local disk.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt opens (creating if needed) the database file at path.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", path, err)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(Bucket))
		return err
	}); err != nil {
		_ = instance.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", Bucket, err)
	}

	return &Bolt{storage: instance}, nil
}

func (b *Bolt) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := b.storage.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(Bucket)).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// v is only valid inside the transaction.
		out = bytes.Clone(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Bolt) PutMany(_ context.Context, entries map[string][]byte) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(Bucket))
		for k, v := range entries {
			if err := bucket.Put([]byte(k), v); err != nil {
				return fmt.Errorf("failed to put %s: %w", k, err)
			}
		}
		return nil
	})
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}
