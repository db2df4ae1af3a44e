package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists each collection as a single jsonb row. It keeps
// the same whole-collection overwrite contract as the file store, so the
// two are interchangeable behind Store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	const ddl = `
CREATE TABLE IF NOT EXISTS record_collections (
	name TEXT PRIMARY KEY,
	data JSONB NOT NULL
)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init record_collections: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (p *PostgresStore) Close() { p.pool.Close() }

func (p *PostgresStore) Load(ctx context.Context, collection string, dest any) error {
	const q = `SELECT data FROM record_collections WHERE name = $1`
	var data []byte
	err := p.pool.QueryRow(ctx, q, collection).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func (p *PostgresStore) Save(ctx context.Context, collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	const q = `
INSERT INTO record_collections (name, data)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data`
	if _, err := p.pool.Exec(ctx, q, collection, data); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}
