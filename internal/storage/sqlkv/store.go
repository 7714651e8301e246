package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/demomarket/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store implements storage.KV over the kv table.
type Store struct {
	db      *sql.DB
	q       DBTX
	dialect Dialect
}

// New returns a Store over an already migrated db.
func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, q: db, dialect: d}
}

// Open connects with d's driver, applies migrations and returns the Store.
func Open(ctx context.Context, d Dialect, dsn string) (*Store, error) {
	db, err := sql.Open(d.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", d.Name, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", d.Name, err)
	}
	if err := RunMigrations(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	return New(db, d), nil
}

// DB exposes the underlying pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the pool. Stores handed out by InTx have nothing to close.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.q.QueryRowContext(ctx, s.dialect.getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.q.ExecContext(ctx, s.dialect.setQuery, key, value); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.q.ExecContext(ctx, s.dialect.deleteQuery, key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

// InTx runs fn against a Store bound to a new transaction. Called on a
// Store that is already transactional, fn joins the running transaction.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, kv storage.KV) error) error {
	if s.db == nil {
		return fn(ctx, s)
	}
	return withTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, &Store{q: tx, dialect: s.dialect})
	})
}
