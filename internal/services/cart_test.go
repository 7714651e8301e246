package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/demomarket/internal/models"
	"github.com/dmitrijs2005/demomarket/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T) CartService {
	t.Helper()
	store, _ := newTestStore(t)
	return NewCartService(store)
}

func TestCart_AddAccumulates(t *testing.T) {
	c := newCart(t)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "p1", 2))
	require.NoError(t, c.Add(ctx, "p1", 3))

	items, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{ProductID: "p1", Qty: 5}}, items)
}

func TestCart_AddKeepsOrder(t *testing.T) {
	c := newCart(t)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "p1", 1))
	require.NoError(t, c.Add(ctx, "p2", 1))
	require.NoError(t, c.Add(ctx, "p1", 1))

	items, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{ProductID: "p1", Qty: 2}, {ProductID: "p2", Qty: 1}}, items)
}

func TestCart_AddNonPositive(t *testing.T) {
	c := newCart(t)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "p1", 0))
	require.NoError(t, c.Add(ctx, "p2", -3))

	items, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, c.Add(ctx, "p1", 2))
	require.NoError(t, c.Add(ctx, "p1", -2))

	items, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCart_SetQty(t *testing.T) {
	tests := []struct {
		name string
		id   string
		qty  int
		want []models.CartItem
	}{
		{"replace", "p1", 7, []models.CartItem{{ProductID: "p1", Qty: 7}, {ProductID: "p2", Qty: 1}}},
		{"zero removes", "p1", 0, []models.CartItem{{ProductID: "p2", Qty: 1}}},
		{"negative removes", "p2", -1, []models.CartItem{{ProductID: "p1", Qty: 2}}},
		{"unknown is no-op", "p9", 4, []models.CartItem{{ProductID: "p1", Qty: 2}, {ProductID: "p2", Qty: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCart(t)
			ctx := context.Background()
			require.NoError(t, c.Add(ctx, "p1", 2))
			require.NoError(t, c.Add(ctx, "p2", 1))

			require.NoError(t, c.SetQty(ctx, tt.id, tt.qty))

			items, err := c.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, items)
		})
	}
}

func TestCart_Clear(t *testing.T) {
	store, kv := newTestStore(t)
	c := NewCartService(store)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "p1", 1))
	require.NoError(t, c.Clear(ctx))
	require.NoError(t, c.Clear(ctx))

	assert.Nil(t, rawValue(t, kv, storage.KeyCart))

	items, err := c.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
