package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres хранит снапшоты в таблице snapshots (см. migrations).
type Postgres struct {
	pool   *pgxpool.Pool
	prefix string
}

func NewPostgres(pool *pgxpool.Pool, prefix string) *Postgres {
	return &Postgres{pool: pool, prefix: prefix}
}

func (p *Postgres) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx, `SELECT payload FROM snapshots WHERE key = $1`, p.prefix+key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (p *Postgres) Save(ctx context.Context, key string, payload []byte) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES ($1,$2,now())
		ON CONFLICT (key) DO UPDATE SET
		  payload=$2, updated_at=now()
	`, p.prefix+key, payload)
	return err
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM snapshots WHERE key = $1`, p.prefix+key)
	return err
}

// пул закрывает владелец (main)
func (p *Postgres) Close() error { return nil }
