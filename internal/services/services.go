// Package services implements the marketplace operations: identity and
// session, catalog, cart and orders.
//
// Every operation reads a whole collection through storage.Adapter,
// changes it in memory and writes the whole collection back. The services
// hold no state of their own; two Market values over the same store see
// the same data.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/demomarket/internal/common"
	"github.com/dmitrijs2005/demomarket/internal/logging"
	"github.com/dmitrijs2005/demomarket/internal/passwd"
	"github.com/dmitrijs2005/demomarket/internal/storage"
)

// Market bundles the services over one store.
type Market struct {
	Identity IdentityService
	Catalog  CatalogService
	Cart     CartService
	Orders   OrderService
}

// NewMarket wires all services to store.
func NewMarket(store *storage.Adapter, hasher passwd.Hasher, logger logging.Logger) *Market {
	return &Market{
		Identity: NewIdentityService(store, hasher, logger),
		Catalog:  NewCatalogService(store, logger),
		Cart:     NewCartService(store),
		Orders:   NewOrderService(store, logger),
	}
}

// base carries what every service needs. now and newID are swapped in tests.
type base struct {
	store *storage.Adapter
	now   func() time.Time
	newID func(prefix string) string
}

func newBase(store *storage.Adapter) base {
	return base{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: common.NewID,
	}
}

// readList loads the collection under key. Absent or unreadable data gives
// an empty, non-nil slice.
func readList[T any](ctx context.Context, store *storage.Adapter, key string) ([]T, error) {
	var items []T
	found, err := store.Read(ctx, key, &items)
	if err != nil {
		return nil, err
	}
	if !found || items == nil {
		return []T{}, nil
	}
	return items, nil
}
