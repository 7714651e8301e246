package models

import (
	"fmt"
	"time"
)

// CartItem is one cart line. Qty is always positive once stored.
type CartItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Order is an immutable checkout record. Items is a copy of the cart taken
// at checkout time; Total is whatever the caller computed.
type Order struct {
	ID        string     `json:"id"`
	BuyerID   string     `json:"buyerId"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created"`
}

// FormatMoney renders n as dollars with two decimals, e.g. "$9.99".
func FormatMoney(n float64) string {
	return fmt.Sprintf("$%.2f", n)
}
