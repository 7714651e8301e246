package storage_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/demomarket/internal/logging"
	"github.com/dmitrijs2005/demomarket/internal/storage"
	"github.com/dmitrijs2005/demomarket/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

// failingKV fails every call with err.
type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingKV) Set(context.Context, string, []byte) error   { return f.err }
func (f failingKV) Delete(context.Context, string) error        { return f.err }

func TestAdapter_WriteThenRead(t *testing.T) {
	ctx := context.Background()
	a := storage.NewAdapter(memory.New(), logging.Discard())

	require.NoError(t, a.Write(ctx, "k", []item{{"a", 1}, {"b", 2}}))

	var got []item
	found, err := a.Read(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []item{{"a", 1}, {"b", 2}}, got)
}

func TestAdapter_ReadAbsent(t *testing.T) {
	a := storage.NewAdapter(memory.New(), logging.Discard())

	var got []item
	found, err := a.Read(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestAdapter_ReadMalformedIsAbsent(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, kv.Set(ctx, "k", []byte("{not json")))

	var buf bytes.Buffer
	a := storage.NewAdapter(kv, logging.NewTextLogger(&buf, "warn"))

	var got []item
	found, err := a.Read(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Contains(t, buf.String(), "ignoring malformed stored value")
	assert.Contains(t, buf.String(), "key=k")
}

func TestAdapter_ReadWrongShapeIsAbsent(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, kv.Set(ctx, "k", []byte(`{"name":"x"}`)))
	a := storage.NewAdapter(kv, logging.Discard())

	var got []item
	found, err := a.Read(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdapter_BackendErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")
	a := storage.NewAdapter(failingKV{err: boom}, logging.Discard())

	_, err := a.Read(ctx, "k", &[]item{})
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, a.Write(ctx, "k", 1), boom)
	require.ErrorIs(t, a.Remove(ctx, "k"), boom)
}

func TestAdapter_Remove(t *testing.T) {
	ctx := context.Background()
	a := storage.NewAdapter(memory.New(), logging.Discard())

	require.NoError(t, a.Write(ctx, "k", 1))
	require.NoError(t, a.Remove(ctx, "k"))
	require.NoError(t, a.Remove(ctx, "k"))

	var n int
	found, err := a.Read(ctx, "k", &n)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdapter_InTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	a := storage.NewAdapter(memory.New(), logging.Discard())
	require.NoError(t, a.Write(ctx, "k", 1))

	err := a.InTx(ctx, func(ctx context.Context, tx *storage.Adapter) error {
		require.NoError(t, tx.Write(ctx, "k", 2))
		require.NoError(t, tx.Write(ctx, "other", 3))
		return errors.New("abort")
	})
	require.Error(t, err)

	var n int
	_, err = a.Read(ctx, "k", &n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	found, err := a.Read(ctx, "other", &n)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdapter_InTx_WithoutRunnerRunsDirectly(t *testing.T) {
	ctx := context.Background()
	kv := plainKV{memory.New()}
	a := storage.NewAdapter(kv, logging.Discard())

	err := a.InTx(ctx, func(ctx context.Context, tx *storage.Adapter) error {
		require.NoError(t, tx.Write(ctx, "k", 5))
		return errors.New("abort")
	})
	require.Error(t, err)

	// без транзакций запись остаётся
	var n int
	found, err := a.Read(ctx, "k", &n)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 5, n)
}

// plainKV hides the TxRunner capability of the wrapped store.
type plainKV struct{ kv storage.KV }

func (p plainKV) Get(ctx context.Context, k string) ([]byte, error) { return p.kv.Get(ctx, k) }
func (p plainKV) Set(ctx context.Context, k string, v []byte) error { return p.kv.Set(ctx, k, v) }
func (p plainKV) Delete(ctx context.Context, k string) error        { return p.kv.Delete(ctx, k) }
