// Package models defines the records persisted by demomarket: users, the
// active session, products, cart line items and orders.
//
// Records refer to each other by id only (SellerID, BuyerID, ProductID,
// Session.UserID). Nothing enforces those references; resolving one that no
// longer exists is an expected outcome handled by the services.
package models
