package services

import (
	"context"

	"github.com/dmitrijs2005/demomarket/internal/logging"
	"github.com/dmitrijs2005/demomarket/internal/models"
	"github.com/dmitrijs2005/demomarket/internal/storage"
)

// OrderService records checkouts.
//
// PlaceOrder trusts its caller: items and total are stored as given, with
// no check against the cart or catalog prices, and no stock is reserved.
type OrderService interface {
	PlaceOrder(ctx context.Context, buyerID string, items []models.CartItem, total float64) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
}

type orderService struct {
	base
	logger logging.Logger
}

func NewOrderService(store *storage.Adapter, logger logging.Logger) OrderService {
	return &orderService{base: newBase(store), logger: logger.With("service", "orders")}
}

// PlaceOrder puts a new order at the front of the history and clears the
// cart. Both writes share a transaction when the backend supports one.
func (s *orderService) PlaceOrder(ctx context.Context, buyerID string, items []models.CartItem, total float64) (*models.Order, error) {
	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	order := models.Order{
		ID:        s.newID("ord"),
		BuyerID:   buyerID,
		Items:     snapshot,
		Total:     total,
		CreatedAt: s.now(),
	}

	err := s.store.InTx(ctx, func(ctx context.Context, tx *storage.Adapter) error {
		orders, err := readList[models.Order](ctx, tx, storage.KeyOrders)
		if err != nil {
			return err
		}
		orders = append([]models.Order{order}, orders...)

		if err := tx.Write(ctx, storage.KeyOrders, orders); err != nil {
			return err
		}
		return tx.Remove(ctx, storage.KeyCart)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "order placed", "order_id", order.ID, "buyer_id", buyerID, "lines", len(snapshot), "total", total)
	return &order, nil
}

// List returns the order history, newest first.
func (s *orderService) List(ctx context.Context) ([]models.Order, error) {
	return readList[models.Order](ctx, s.store, storage.KeyOrders)
}
