package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/demomarket/internal/logging"
	"github.com/dmitrijs2005/demomarket/internal/storage"
	"github.com/dmitrijs2005/demomarket/internal/storage/memory"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func newTestStore(t *testing.T) (*storage.Adapter, *memory.Store) {
	t.Helper()
	kv := memory.New()
	return storage.NewAdapter(kv, logging.Discard()), kv
}

// deterministic replaces the clock and id generator of b.
func deterministic(b *base) {
	n := 0
	b.now = func() time.Time { return fixedNow }
	b.newID = func(prefix string) string {
		n++
		return fmt.Sprintf("%s_%d", prefix, n)
	}
}

func rawValue(t *testing.T, kv *memory.Store, key string) []byte {
	t.Helper()
	v, err := kv.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}
