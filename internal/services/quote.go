package services

import "github.com/dmitrijs2005/demomarket/internal/models"

// QuoteLine is a cart line resolved against the catalog.
type QuoteLine struct {
	Product  models.Product
	Qty      int
	Subtotal float64
}

// Quote prices a cart. Lines whose product no longer exists are listed in
// Missing and left out of Lines and Total.
type Quote struct {
	Lines   []QuoteLine
	Missing []string
	Total   float64
}

// NewQuote resolves every cart item against products.
func NewQuote(items []models.CartItem, products []models.Product) Quote {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	q := Quote{Lines: []QuoteLine{}}
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			q.Missing = append(q.Missing, it.ProductID)
			continue
		}
		sub := p.Price * float64(it.Qty)
		q.Lines = append(q.Lines, QuoteLine{Product: p, Qty: it.Qty, Subtotal: sub})
		q.Total += sub
	}
	return q
}

// Items returns the resolved lines as cart items, ready for PlaceOrder.
func (q Quote) Items() []models.CartItem {
	items := make([]models.CartItem, 0, len(q.Lines))
	for _, l := range q.Lines {
		items = append(items, models.CartItem{ProductID: l.Product.ID, Qty: l.Qty})
	}
	return items
}
