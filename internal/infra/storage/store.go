package storage

import (
	"context"
	"errors"
)

var ErrUnknownDriver = errors.New("storage: unknown driver")

// Store — хранилище снапшотов ключ/значение. Каждый ключ перезаписывается целиком.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
