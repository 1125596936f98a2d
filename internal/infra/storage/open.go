package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Spok95/yard-terminal/internal/config"
	"github.com/Spok95/yard-terminal/internal/infra/db"
)

// Open выбирает реализацию по storage.driver.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (Store, func(), error) {
	prefix := cfg.Storage.KeyPrefix
	switch cfg.Storage.Driver {
	case "memory":
		return NewMemory(), func() {}, nil

	case "badger", "":
		s, err := OpenBadger(cfg.Storage.Badger.Dir, prefix)
		if err != nil {
			return nil, nil, err
		}
		log.Info("badger store opened", "dir", cfg.Storage.Badger.Dir)
		return s, func() { _ = s.Close() }, nil

	case "postgres":
		dsn := cfg.Storage.Postgres.DSN
		if err := db.Migrate(dsn, cfg.Storage.Postgres.Migrations, log); err != nil {
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		pool, err := db.Connect(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		log.Info("db connected")
		return NewPostgres(pool, prefix), pool.Close, nil

	case "redis":
		r := cfg.Storage.Redis
		s, err := OpenRedis(ctx, r.Addr, r.Password, r.DB, prefix)
		if err != nil {
			return nil, nil, err
		}
		log.Info("redis store connected", "addr", r.Addr)
		return s, func() { _ = s.Close() }, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
}
