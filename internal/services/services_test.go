package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/demomarket/internal/logging"
	"github.com/dmitrijs2005/demomarket/internal/models"
	"github.com/dmitrijs2005/demomarket/internal/passwd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarket_Checkout walks the whole flow the REPL drives.
func TestMarket_Checkout(t *testing.T) {
	store, _ := newTestStore(t)
	m := NewMarket(store, passwd.SHA256{}, logging.Discard())
	ctx := context.Background()

	require.NoError(t, m.Catalog.SeedIfEmpty(ctx))

	_, err := m.Identity.Signup(ctx, "Alice", "a@x.io", []byte("pw"))
	require.NoError(t, err)
	me, err := m.Identity.Login(ctx, "a@x.io", []byte("pw"))
	require.NoError(t, err)

	mine, err := m.Catalog.Add(ctx, models.ProductInput{Title: "Mine", Price: "2", SellerID: me.ID})
	require.NoError(t, err)

	products, err := m.Catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)

	require.NoError(t, m.Cart.Add(ctx, mine.ID, 1))
	require.NoError(t, m.Cart.Add(ctx, products[1].ID, 2))
	require.NoError(t, m.Cart.Add(ctx, mine.ID, 1))

	cart, err := m.Cart.List(ctx)
	require.NoError(t, err)
	q := NewQuote(cart, products)
	assert.InDelta(t, 2*2+2*products[1].Price, q.Total, 1e-9)

	order, err := m.Orders.PlaceOrder(ctx, me.ID, q.Items(), q.Total)
	require.NoError(t, err)
	assert.Equal(t, me.ID, order.BuyerID)

	cart, err = m.Cart.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	require.NoError(t, m.Identity.Logout(ctx))
	cur, err := m.Identity.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	products, err = m.Catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4, "logout keeps the catalog")
}
