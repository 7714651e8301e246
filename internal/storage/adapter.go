package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/demomarket/internal/logging"
)

// Adapter reads and writes JSON values through a KV.
type Adapter struct {
	kv     KV
	logger logging.Logger
}

// NewAdapter wraps kv. logger receives a warning whenever a stored value
// cannot be decoded.
func NewAdapter(kv KV, logger logging.Logger) *Adapter {
	return &Adapter{kv: kv, logger: logger}
}

// Read decodes the value stored under key into v and reports whether one was
// found. A value that is not valid JSON for v counts as absent: it is logged
// and (false, nil) is returned. Backend errors are returned as is.
func (a *Adapter) Read(ctx context.Context, key string, v any) (bool, error) {
	data, err := a.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		a.logger.Warn(ctx, "ignoring malformed stored value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// Write encodes v as JSON and overwrites key.
func (a *Adapter) Write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := a.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Remove deletes key.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	if err := a.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// InTx runs fn with an Adapter bound to a backend transaction when the
// backend implements TxRunner. Otherwise fn runs directly against a and
// writes made before a failure stay in place.
func (a *Adapter) InTx(ctx context.Context, fn func(ctx context.Context, tx *Adapter) error) error {
	runner, ok := a.kv.(TxRunner)
	if !ok {
		return fn(ctx, a)
	}
	return runner.InTx(ctx, func(ctx context.Context, kv KV) error {
		return fn(ctx, &Adapter{kv: kv, logger: a.logger})
	})
}
