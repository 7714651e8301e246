package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/demomarket/internal/models"
	"github.com/dmitrijs2005/demomarket/internal/services"
)

// Cart prints the cart priced against the current catalog.
func (a *App) Cart(ctx context.Context) error {
	q, err := a.quote(ctx)
	if err != nil {
		return err
	}
	if len(q.Lines) == 0 && len(q.Missing) == 0 {
		a.printf("Cart is empty\n")
		return nil
	}
	for _, l := range q.Lines {
		a.printf("%s  %-40s x%-3d %10s\n", l.Product.ID, l.Product.Title, l.Qty, models.FormatMoney(l.Subtotal))
	}
	for _, id := range q.Missing {
		a.printf("%s  (no longer available)\n", id)
	}
	a.printf("Total: %s\n", models.FormatMoney(q.Total))
	return nil
}

// AddToCart adds qty (default 1) of a product. The product id is not
// checked against the catalog; unknown ids show up as unavailable.
func (a *App) AddToCart(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	qty := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return errUsage
		}
		qty = n
	}
	if err := a.market.Cart.Add(ctx, args[0], qty); err != nil {
		return err
	}
	a.printf("Cart updated\n")
	return nil
}

// SetQty replaces the quantity of a cart line. Zero or less removes it.
func (a *App) SetQty(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return errUsage
	}
	if err := a.market.Cart.SetQty(ctx, args[0], qty); err != nil {
		return err
	}
	a.printf("Cart updated\n")
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	if err := a.market.Cart.Clear(ctx); err != nil {
		return err
	}
	a.printf("Cart cleared\n")
	return nil
}

// Checkout prices the cart and places an order for the lines that still
// resolve. Unavailable lines are dropped from the order and reported.
func (a *App) Checkout(ctx context.Context) error {
	buyerID, err := a.requireUser()
	if err != nil {
		return err
	}

	q, err := a.quote(ctx)
	if err != nil {
		return err
	}
	if len(q.Lines) == 0 {
		a.printf("Nothing to check out\n")
		return nil
	}
	for _, id := range q.Missing {
		a.printf("Skipping %s: no longer available\n", id)
	}

	order, err := a.market.Orders.PlaceOrder(ctx, buyerID, q.Items(), q.Total)
	if err != nil {
		return err
	}
	a.logger.Debug(ctx, "checkout done", "order", order.ID, "lines", len(order.Items))
	a.printf("Order %s placed, total %s\n", order.ID, models.FormatMoney(order.Total))
	return nil
}

// Orders prints the current user's order history, newest first.
func (a *App) Orders(ctx context.Context) error {
	buyerID, err := a.requireUser()
	if err != nil {
		return err
	}
	orders, err := a.market.Orders.List(ctx)
	if err != nil {
		return err
	}

	n := 0
	for _, o := range orders {
		if o.BuyerID != buyerID {
			continue
		}
		n++
		a.printf("%s  %s  %d item(s)  %s\n", o.ID, o.CreatedAt.Format("2006-01-02 15:04"), len(o.Items), models.FormatMoney(o.Total))
	}
	if n == 0 {
		a.printf("No orders yet\n")
	}
	return nil
}

func (a *App) quote(ctx context.Context) (services.Quote, error) {
	items, err := a.market.Cart.List(ctx)
	if err != nil {
		return services.Quote{}, err
	}
	products, err := a.market.Catalog.List(ctx)
	if err != nil {
		return services.Quote{}, err
	}
	return services.NewQuote(items, products), nil
}
