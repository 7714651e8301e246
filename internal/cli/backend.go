package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/demomarket/internal/common"
	"github.com/dmitrijs2005/demomarket/internal/config"
	"github.com/dmitrijs2005/demomarket/internal/storage"
	"github.com/dmitrijs2005/demomarket/internal/storage/memory"
	"github.com/dmitrijs2005/demomarket/internal/storage/rediskv"
	"github.com/dmitrijs2005/demomarket/internal/storage/sqlkv"
)

// openStore builds the backend selected by c.Storage. The returned closer
// is nil for backends that hold no resources.
func openStore(ctx context.Context, c *config.Config) (storage.KV, io.Closer, error) {
	switch c.Storage {
	case config.StorageMemory:
		return memory.New(), nil, nil

	case config.StorageSQLite:
		if err := ensureParentDir(c.SQLitePath); err != nil {
			return nil, nil, err
		}
		s, err := sqlkv.Open(ctx, sqlkv.SQLite, c.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case config.StoragePostgres:
		s, err := sqlkv.Open(ctx, sqlkv.Postgres, c.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case config.StorageRedis:
		s, err := rediskv.Open(ctx, rediskv.Options{
			Addr:        c.RedisAddr,
			Password:    c.RedisPassword,
			DB:          c.RedisDB,
			DialTimeout: c.RedisDialTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", common.ErrorUnknownStorage, c.Storage)
	}
}

// ensureParentDir creates the directory that will hold the SQLite file.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
