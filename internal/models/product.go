package models

import "time"

// SystemSeller is the seller id of products created by catalog seeding.
const SystemSeller = "system"

// Product is a catalog listing.
type Product struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Desc      string    `json:"desc"`
	Image     string    `json:"image"`
	SellerID  string    `json:"sellerId"`
	CreatedAt time.Time `json:"created"`
}

// ProductInput carries the fields for a new listing. Price is textual, as
// typed by the user, and is coerced to a number when the product is added.
type ProductInput struct {
	Title    string
	Price    string
	Desc     string
	Image    string
	SellerID string
}

// ProductPatch is a partial update. Nil fields keep their current value.
type ProductPatch struct {
	Title    *string
	Price    *float64
	Desc     *string
	Image    *string
	SellerID *string
}

// Apply merges the non-nil fields of p into a copy of prod and returns it.
func (p ProductPatch) Apply(prod Product) Product {
	if p.Title != nil {
		prod.Title = *p.Title
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Desc != nil {
		prod.Desc = *p.Desc
	}
	if p.Image != nil {
		prod.Image = *p.Image
	}
	if p.SellerID != nil {
		prod.SellerID = *p.SellerID
	}
	return prod
}
