package services

import (
	"context"

	"github.com/dmitrijs2005/demomarket/internal/models"
	"github.com/dmitrijs2005/demomarket/internal/storage"
)

// CartService manages the single cart. There is at most one line per
// product and no stored line has a quantity below one.
type CartService interface {
	List(ctx context.Context) ([]models.CartItem, error)
	Add(ctx context.Context, productID string, qty int) error
	SetQty(ctx context.Context, productID string, qty int) error
	Clear(ctx context.Context) error
}

type cartService struct {
	base
}

func NewCartService(store *storage.Adapter) CartService {
	return &cartService{base: newBase(store)}
}

func (s *cartService) List(ctx context.Context) ([]models.CartItem, error) {
	return readList[models.CartItem](ctx, s.store, storage.KeyCart)
}

// Add increases the quantity of an existing line by qty or appends a new
// line. A line whose quantity ends up below one is dropped.
func (s *cartService) Add(ctx context.Context, productID string, qty int) error {
	cart, err := s.List(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Qty += qty
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, models.CartItem{ProductID: productID, Qty: qty})
	}

	return s.store.Write(ctx, storage.KeyCart, positiveOnly(cart))
}

// SetQty replaces the quantity of the matching line; qty <= 0 removes it.
// An unknown product id leaves the cart as it is.
func (s *cartService) SetQty(ctx context.Context, productID string, qty int) error {
	cart, err := s.List(ctx)
	if err != nil {
		return err
	}

	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Qty = qty
		}
	}

	return s.store.Write(ctx, storage.KeyCart, positiveOnly(cart))
}

func (s *cartService) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, storage.KeyCart)
}

func positiveOnly(cart []models.CartItem) []models.CartItem {
	kept := cart[:0]
	for _, it := range cart {
		if it.Qty > 0 {
			kept = append(kept, it)
		}
	}
	return kept
}
