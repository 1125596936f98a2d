package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Badger — локальное встроенное хранилище (каталог на диске).
type Badger struct {
	db     *badger.DB
	prefix string
}

func OpenBadger(dir, prefix string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Badger{db: db, prefix: prefix}, nil
}

func (b *Badger) Load(_ context.Context, key string) ([]byte, bool, error) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(b.prefix + key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (b *Badger) Save(_ context.Context, key string, payload []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(b.prefix+key), payload)
	})
}

func (b *Badger) Delete(_ context.Context, key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(b.prefix + key))
	})
}

func (b *Badger) Close() error { return b.db.Close() }
