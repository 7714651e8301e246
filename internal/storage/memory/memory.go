// Package memory is a map-backed storage.KV used by tests and by the
// "memory" storage mode. Nothing survives the process.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/dmitrijs2005/demomarket/internal/storage"
)

type Store struct {
	mu   sync.Mutex
	data map[string][]byte
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Snapshot returns a copy of the stored keys and values.
func (s *Store) Snapshot() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.data)
}

// InTx snapshots the map, runs fn against s and restores the snapshot if fn
// fails or panics. Panics are rethrown.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, kv storage.KV) error) (err error) {
	before := s.Snapshot()

	defer func() {
		if p := recover(); p != nil {
			s.restore(before)
			panic(p)
		}
		if err != nil {
			s.restore(before)
		}
	}()

	return fn(ctx, s)
}

func (s *Store) restore(snapshot map[string][]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = snapshot
}
